package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/healthtrack-backend/internal/data/repos"
	"github.com/yungbote/healthtrack-backend/internal/domain"
	pkgerrors "github.com/yungbote/healthtrack-backend/internal/pkg/errors"
	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
)

// ProfileView mirrors the profile card: numeric fields render as strings and
// list fields are never null.
type ProfileView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Age         string    `json:"age,omitempty"`
	Gender      string    `json:"gender"`
	Height      string    `json:"height,omitempty"`
	Weight      string    `json:"weight,omitempty"`
	Conditions  []string  `json:"conditions"`
	Medications []string  `json:"medications"`
}

// ProfileUpdate carries the PATCH semantics: nil means "leave unchanged".
type ProfileUpdate struct {
	Name        *string
	Email       *string
	Age         *int
	Gender      *string
	Height      *int
	Weight      *int
	Conditions  []string
	Medications []string
}

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*ProfileView, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
	return &userService{
		db:       db,
		log:      log.With("service", "UserService"),
		userRepo: userRepo,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	user, err := s.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	return profileView(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*ProfileView, error) {
	user, err := s.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.Email != nil {
		email := strings.TrimSpace(*update.Email)
		if email == "" || !strings.Contains(email, "@") {
			return nil, fmt.Errorf("%w: invalid email", pkgerrors.ErrInvalidArgument)
		}
		user.Email = email
	}
	if update.Age != nil {
		if *update.Age < 0 || *update.Age > 150 {
			return nil, fmt.Errorf("%w: age out of range", pkgerrors.ErrInvalidArgument)
		}
		user.Age = update.Age
	}
	if update.Gender != nil {
		user.Gender = strings.TrimSpace(*update.Gender)
	}
	if update.Height != nil {
		user.Height = update.Height
	}
	if update.Weight != nil {
		user.Weight = update.Weight
	}
	if update.Conditions != nil {
		raw, err := json.Marshal(update.Conditions)
		if err != nil {
			return nil, fmt.Errorf("encode conditions: %w", err)
		}
		user.Conditions = datatypes.JSON(raw)
	}
	if update.Medications != nil {
		raw, err := json.Marshal(update.Medications)
		if err != nil {
			return nil, fmt.Errorf("encode medications: %w", err)
		}
		user.Medications = datatypes.JSON(raw)
	}

	updated, err := s.userRepo.Update(ctx, nil, user)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return profileView(updated), nil
}

func profileView(user *domain.User) *ProfileView {
	view := &ProfileView{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Gender:      user.Gender,
		Conditions:  decodeStringList(user.Conditions),
		Medications: decodeStringList(user.Medications),
	}
	if user.Age != nil {
		view.Age = fmt.Sprintf("%d", *user.Age)
	}
	if user.Height != nil {
		view.Height = fmt.Sprintf("%d", *user.Height)
	}
	if user.Weight != nil {
		view.Weight = fmt.Sprintf("%d", *user.Weight)
	}
	return view
}

func decodeStringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}
