package repos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/healthtrack-backend/internal/data/repos/testutil"
	"github.com/yungbote/healthtrack-backend/internal/domain"
	pkgerrors "github.com/yungbote/healthtrack-backend/internal/pkg/errors"
)

func TestBloodSugarRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewBloodSugarRepo(db, testutil.Logger(t))
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "bloodsugar@example.com")

	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	for i, v := range []int{95, 110, 145, 100, 88, 120, 132} {
		testutil.SeedBloodSugarReading(t, ctx, tx, user.ID, v, base.Add(time.Duration(i)*time.Hour))
	}

	recent, err := repo.ListRecent(ctx, tx, user.ID, 5)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("ListRecent: expected 5 readings, got %d", len(recent))
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].Timestamp.After(recent[i-1].Timestamp) {
			t.Fatalf("ListRecent: not ordered most recent first at %d", i)
		}
	}
	if recent[0].Value != 132 {
		t.Fatalf("ListRecent: expected most recent value 132, got %d", recent[0].Value)
	}

	latest, err := repo.Latest(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.Value != 132 {
		t.Fatalf("Latest: expected value 132, got %d", latest.Value)
	}

	created, err := repo.Create(ctx, tx, []*domain.BloodSugarReading{
		{
			UserID:     user.ID,
			Value:      65,
			Timestamp:  base.Add(24 * time.Hour),
			Status:     "Low",
			StatusType: "elevated",
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
	if got.Value != 65 || got.Status != "Low" || got.StatusType != "elevated" {
		t.Fatalf("GetByID: round trip mismatch: %+v", got)
	}

	_, err = repo.Latest(ctx, tx, uuid.New())
	if !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("Latest (no readings): expected ErrNotFound, got %v", err)
	}
}

func TestBloodSugarRepoEmptyLimit(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewBloodSugarRepo(db, testutil.Logger(t))
	ctx := context.Background()

	got, err := repo.ListRecent(ctx, tx, uuid.New(), 0)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("ListRecent with zero limit: expected no rows, got %d", len(got))
	}
}
