package repos

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/healthtrack-backend/internal/data/repos/testutil"
	"github.com/yungbote/healthtrack-backend/internal/domain"
	pkgerrors "github.com/yungbote/healthtrack-backend/internal/pkg/errors"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()

	age := 42
	created, err := repo.Create(ctx, tx, []*domain.User{
		{
			Name:  "A B",
			Email: "userrepo@example.com",
			Age:   &age,
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 || created[0].ID == uuid.Nil {
		t.Fatalf("Create: expected assigned id, got %+v", created)
	}

	got, err := repo.GetByID(ctx, tx, created[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Email != "userrepo@example.com" || got.Age == nil || *got.Age != 42 {
		t.Fatalf("GetByID: unexpected result: %+v", got)
	}

	got.Name = "Updated Name"
	updated, err := repo.Update(ctx, tx, got)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Updated Name" {
		t.Fatalf("Update: name not persisted: %+v", updated)
	}

	_, err = repo.GetByID(ctx, tx, uuid.New())
	if !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("GetByID (missing): expected ErrNotFound, got %v", err)
	}
}
