package queries

import (
	"context"

	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/shared"
)

var ErrUserNotFound = errs.New("user not found")

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID int64) (*UserView, error)
}

type userQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewUserQueries(uow shared.UnitOfWork) UserQueries {
	return &userQueriesImpl{uow: uow}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID int64) (*UserView, error) {
	var view *UserView

	err := q.uow.WithinRead(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		view = &UserView{
			ID:        u.ID(),
			Phone:     u.Phone(),
			Name:      u.Name(),
			IsAdmin:   u.IsAdmin(),
			CreatedAt: u.CreatedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
