package repository

import (
	"context"

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/entity"
)

// UserRepository puerto de persistencia de usuarios del staff.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
