package memstore

import (
	"context"
	"sort"
	"time"

	"parkspot/internal/domain/otp"
	"parkspot/internal/domain/user"
	"parkspot/internal/infra"
)

type userRepo struct {
	store *Store
}

func (r *userRepo) Create(_ context.Context, u *user.User) (int64, error) {
	for _, existing := range r.store.users {
		if existing.Phone() == u.Phone() {
			return 0, infra.NewRepoErr(infra.KindDuplicateKey, "phone already registered")
		}
	}

	id := r.store.nextUserID
	r.store.nextUserID++
	r.store.users[id] = u.WithID(id)
	return id, nil
}

func (r *userRepo) FindByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := r.store.users[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	clone := *u
	return &clone, nil
}

func (r *userRepo) FindByPhone(_ context.Context, phone string) (*user.User, error) {
	for _, u := range r.store.users {
		if u.Phone() == phone {
			clone := *u
			return &clone, nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "user not found")
}

func (r *userRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.store.users)), nil
}

type codeRepo struct {
	store *Store
}

func (r *codeRepo) Create(_ context.Context, c *otp.OneTimeCode) (int64, error) {
	id := r.store.nextCodeID
	r.store.nextCodeID++
	r.store.codes[id] = c.WithID(id)
	return id, nil
}

func (r *codeRepo) FindUsableByPhone(_ context.Context, phone string, now time.Time) ([]*otp.OneTimeCode, error) {
	var result []*otp.OneTimeCode
	for _, c := range r.store.codes {
		if c.Phone() == phone && c.Usable(now) {
			clone := *c
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt().After(result[j].CreatedAt())
	})
	return result, nil
}

func (r *codeRepo) MarkVerified(_ context.Context, id int64, now time.Time) error {
	c, ok := r.store.codes[id]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "code not found")
	}
	if err := c.Verify(now); err != nil {
		// Usability was checked under the same lock; only double
		// verification can land here.
		return infra.WrapRepoErr(infra.KindConflict, "code no longer usable", err)
	}
	return nil
}
