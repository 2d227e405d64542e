package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/healthtrack-backend/internal/domain"
	pkgerrors "github.com/yungbote/healthtrack-backend/internal/pkg/errors"
	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
)

type UserRepo interface {
	Create(ctx context.Context, tx *gorm.DB, users []*domain.User) ([]*domain.User, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, tx *gorm.DB, user *domain.User) (*domain.User, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, users []*domain.User) ([]*domain.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	if len(users) == 0 {
		return []*domain.User{}, nil
	}
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
	}
	if err := transaction.WithContext(ctx).Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (ur *userRepo) GetByID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*domain.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var result domain.User
	if err := transaction.WithContext(ctx).
		Where("id = ?", userID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (ur *userRepo) Update(ctx context.Context, tx *gorm.DB, user *domain.User) (*domain.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	if err := transaction.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
