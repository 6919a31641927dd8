package postgres

import (
	"context"
	"time"

	"parkspot/internal/domain/otp"
	"parkspot/internal/domain/user"
	"parkspot/internal/infra"
)

type userRepo struct {
	db DBTX
}

func (r *userRepo) Create(ctx context.Context, u *user.User) (int64, error) {
	const q = `
		INSERT INTO users (phone, name, is_admin, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q, u.Phone(), u.Name(), u.IsAdmin(), u.CreatedAt()).Scan(&id)
	if err != nil {
		return 0, wrapQueryErr(err, "user not found")
	}
	return id, nil
}

func (r *userRepo) FindByID(ctx context.Context, id int64) (*user.User, error) {
	const q = `
		SELECT id, phone, name, is_admin, created_at
		FROM users
		WHERE id = $1`

	return scanUser(r.db.QueryRow(ctx, q, id))
}

func (r *userRepo) FindByPhone(ctx context.Context, phone string) (*user.User, error) {
	const q = `
		SELECT id, phone, name, is_admin, created_at
		FROM users
		WHERE phone = $1`

	return scanUser(r.db.QueryRow(ctx, q, phone))
}

func (r *userRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, wrapQueryErr(err, "user count failed")
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*user.User, error) {
	var (
		id        int64
		phone     string
		name      string
		isAdmin   bool
		createdAt time.Time
	)
	if err := row.Scan(&id, &phone, &name, &isAdmin, &createdAt); err != nil {
		return nil, wrapQueryErr(err, "user not found")
	}
	return user.Reconstruct(id, phone, name, isAdmin, createdAt), nil
}

type codeRepo struct {
	db DBTX
}

func (r *codeRepo) Create(ctx context.Context, c *otp.OneTimeCode) (int64, error) {
	const q = `
		INSERT INTO otp_codes (phone, code_hash, expires_at, verified, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q, c.Phone(), c.CodeHash(), c.ExpiresAt(), c.Verified(), c.CreatedAt()).Scan(&id)
	if err != nil {
		return 0, wrapQueryErr(err, "code not found")
	}
	return id, nil
}

func (r *codeRepo) FindUsableByPhone(ctx context.Context, phone string, now time.Time) ([]*otp.OneTimeCode, error) {
	const q = `
		SELECT id, phone, code_hash, expires_at, verified, created_at
		FROM otp_codes
		WHERE phone = $1 AND verified = FALSE AND expires_at > $2
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, phone, now)
	if err != nil {
		return nil, wrapQueryErr(err, "code not found")
	}
	defer rows.Close()

	var codes []*otp.OneTimeCode
	for rows.Next() {
		var (
			id        int64
			ph        string
			hash      string
			expiresAt time.Time
			verified  bool
			createdAt time.Time
		)
		if err := rows.Scan(&id, &ph, &hash, &expiresAt, &verified, &createdAt); err != nil {
			return nil, wrapQueryErr(err, "code not found")
		}
		codes = append(codes, otp.Reconstruct(id, ph, hash, expiresAt, verified, createdAt))
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr(err, "code not found")
	}
	return codes, nil
}

func (r *codeRepo) MarkVerified(ctx context.Context, id int64, now time.Time) error {
	const q = `
		UPDATE otp_codes
		SET verified = TRUE
		WHERE id = $1 AND verified = FALSE AND expires_at > $2`

	tag, err := r.db.Exec(ctx, q, id, now)
	if err != nil {
		return wrapQueryErr(err, "code not found")
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindConflict, "code no longer usable")
	}
	return nil
}
