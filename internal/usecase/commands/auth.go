package commands

import (
	"context"
	"log/slog"
	"time"

	"parkspot/internal/domain/otp"
	"parkspot/internal/domain/user"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/config"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/pkg/jwt"
	"parkspot/internal/pkg/passcode"
	"parkspot/internal/usecase/shared"
)

var (
	ErrInvalidPhone         = errs.New("invalid phone number")
	ErrInvalidCode          = errs.New("invalid or expired code")
	ErrCodeGeneration       = errs.New("code generation failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrStoreOperationFailed = errs.New("store operation failed")
)

type RequestCodeResult struct {
	ExpiresAt time.Time
}

type VerifyCodeResult struct {
	UserID      int64
	Phone       string
	Name        string
	IsAdmin     bool
	AccessToken string
}

type AuthCommands interface {
	RequestCode(ctx context.Context, phone string) (*RequestCodeResult, error)
	VerifyCode(ctx context.Context, phone, code, name string) (*VerifyCodeResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
	cfg        config.OTPConfig
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock, cfg config.OTPConfig) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
		cfg:        cfg,
	}
}

// RequestCode issues a fresh one-time code for the phone. Outstanding codes
// stay usable until they expire or get consumed. Delivery is stubbed: the
// code is logged when echoing is enabled and otherwise discarded.
func (a *authCommandsImpl) RequestCode(ctx context.Context, phone string) (*RequestCodeResult, error) {
	if !user.ValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	code, err := passcode.Generate()
	if err != nil {
		return nil, errs.Mark(err, ErrCodeGeneration)
	}
	codeHash, err := passcode.Hash(code)
	if err != nil {
		return nil, errs.Mark(err, ErrCodeGeneration)
	}

	now := a.clock.Now()
	record := otp.NewOneTimeCode(phone, codeHash, a.cfg.TTL, now)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Codes().Create(ctx, record)
		return createErr
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	if a.cfg.EchoCodes {
		slog.Info("verification code issued", "phone", phone, "code", code)
	}

	return &RequestCodeResult{ExpiresAt: record.ExpiresAt()}, nil
}

// VerifyCode consumes a matching usable code and logs the user in,
// creating the account on first verification. The first account ever
// created gets the admin flag.
func (a *authCommandsImpl) VerifyCode(ctx context.Context, phone, code, name string) (*VerifyCodeResult, error) {
	if !user.ValidPhone(phone) {
		return nil, ErrInvalidPhone
	}
	if len(code) != passcode.CodeLength {
		return nil, ErrInvalidCode
	}

	var result *VerifyCodeResult

	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := a.clock.Now()

		candidates, err := tx.Codes().FindUsableByPhone(ctx, phone, now)
		if err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}

		var matched *otp.OneTimeCode
		for _, c := range candidates {
			if passcode.Compare(c.CodeHash(), code) == nil {
				matched = c
				break
			}
		}
		if matched == nil {
			return ErrInvalidCode
		}

		if err := tx.Codes().MarkVerified(ctx, matched.ID(), now); err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}

		account, err := tx.Users().FindByPhone(ctx, phone)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrStoreOperationFailed)
			}
			account, err = a.registerUser(ctx, tx, phone, name, now)
			if err != nil {
				return err
			}
		}

		result = &VerifyCodeResult{
			UserID:  account.ID(),
			Phone:   account.Phone(),
			Name:    account.Name(),
			IsAdmin: account.IsAdmin(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(result.UserID, result.IsAdmin)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	result.AccessToken = token

	return result, nil
}

func (a *authCommandsImpl) registerUser(ctx context.Context, tx shared.Tx, phone, name string, now time.Time) (*user.User, error) {
	count, err := tx.Users().Count(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	// First verified user bootstraps the admin account.
	account, err := user.NewUser(phone, name, count == 0, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPhone)
	}

	id, err := tx.Users().Create(ctx, account)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	return account.WithID(id), nil
}
