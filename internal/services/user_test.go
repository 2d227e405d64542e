package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/healthtrack-backend/internal/domain"
	pkgerrors "github.com/yungbote/healthtrack-backend/internal/pkg/errors"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[uuid.UUID]*domain.User{}}
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, tx *gorm.DB, users []*domain.User) ([]*domain.User, error) {
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		f.users[u.ID] = u
	}
	return users, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*domain.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, pkgerrors.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, tx *gorm.DB, user *domain.User) (*domain.User, error) {
	f.users[user.ID] = user
	return user, nil
}

func TestGetProfileFormatsFields(t *testing.T) {
	age := 42
	height := 180
	user := &domain.User{
		ID:         uuid.New(),
		Name:       "A B",
		Email:      "ab@example.com",
		Age:        &age,
		Height:     &height,
		Conditions: datatypes.JSON([]byte(`["Type 2 Diabetes"]`)),
	}
	svc := NewUserService(nil, testLogger(t), newFakeUserRepo(user))

	got, err := svc.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, "42", got.Age)
	require.Equal(t, "180", got.Height)
	require.Empty(t, got.Weight)
	require.Equal(t, []string{"Type 2 Diabetes"}, got.Conditions)
	require.Equal(t, []string{}, got.Medications, "list fields must never be nil")
}

func TestGetProfileMissingUser(t *testing.T) {
	svc := NewUserService(nil, testLogger(t), newFakeUserRepo())

	_, err := svc.GetProfile(context.Background(), uuid.New())
	require.ErrorIs(t, err, pkgerrors.ErrNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	age := 42
	user := &domain.User{ID: uuid.New(), Name: "A B", Email: "ab@example.com", Age: &age}
	repo := newFakeUserRepo(user)
	svc := NewUserService(nil, testLogger(t), repo)

	newName := "A B Updated"
	newWeight := 82
	got, err := svc.UpdateProfile(context.Background(), user.ID, ProfileUpdate{
		Name:        &newName,
		Weight:      &newWeight,
		Medications: []string{"Metformin"},
	})
	require.NoError(t, err)

	require.Equal(t, "A B Updated", got.Name)
	require.Equal(t, "82", got.Weight)
	require.Equal(t, []string{"Metformin"}, got.Medications)
	// Untouched fields survive the patch.
	require.Equal(t, "ab@example.com", got.Email)
	require.Equal(t, "42", got.Age)
}

func TestUpdateProfileRejectsBadEmail(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Email: "ok@example.com"}
	svc := NewUserService(nil, testLogger(t), newFakeUserRepo(user))

	bad := "not-an-email"
	_, err := svc.UpdateProfile(context.Background(), user.ID, ProfileUpdate{Email: &bad})
	require.ErrorIs(t, err, pkgerrors.ErrInvalidArgument)
}
