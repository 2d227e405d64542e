package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/healthtrack-backend/internal/data/repos/testutil"
	"github.com/yungbote/healthtrack-backend/internal/domain"
)

func TestBloodPressureRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewBloodPressureRepo(db, testutil.Logger(t))
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "bloodpressure@example.com")

	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	pairs := [][2]int{{118, 76}, {124, 79}, {135, 88}, {112, 70}}
	for i, p := range pairs {
		testutil.SeedBloodPressureReading(t, ctx, tx, user.ID, p[0], p[1], base.Add(time.Duration(i)*time.Hour))
	}

	recent, err := repo.ListRecent(ctx, tx, user.ID, 2)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("ListRecent: expected 2 readings, got %d", len(recent))
	}
	if recent[0].Systolic != 112 || recent[0].Diastolic != 70 {
		t.Fatalf("ListRecent: expected most recent 112/70, got %d/%d", recent[0].Systolic, recent[0].Diastolic)
	}

	latest, err := repo.Latest(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.Systolic != 112 {
		t.Fatalf("Latest: expected systolic 112, got %d", latest.Systolic)
	}

	created, err := repo.Create(ctx, tx, []*domain.BloodPressureReading{
		{
			UserID:     user.ID,
			Systolic:   125,
			Diastolic:  78,
			Timestamp:  base.Add(24 * time.Hour),
			Status:     "Elevated",
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
	if got.Systolic != 125 || got.Diastolic != 78 || got.Status != "Elevated" {
		t.Fatalf("GetByID: round trip mismatch: %+v", got)
	}
}
