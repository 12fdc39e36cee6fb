package query

import (
	"context"

	"github.com/eaglebank/ledger/internal/repository"
	"github.com/eaglebank/ledger/shared/cqrs"
	"github.com/eaglebank/ledger/shared/models"
)

type UserQueryService struct {
	users *repository.UserRepository
}

func NewUserQueryService(users *repository.UserRepository) *UserQueryService {
	return &UserQueryService{users: users}
}

func (s *UserQueryService) GetUser(ctx context.Context, q cqrs.GetUserQuery) (*models.User, error) {
	return s.users.GetByID(ctx, q.UserID)
}
