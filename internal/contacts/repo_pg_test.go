package contacts

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoListNeedsFollowUp(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "full_name", "pipeline_stage", "last_activity_at", "created_at",
	}).
		AddRow("contact-1", "user-1", "Old Contact", StageNeedsFollowUp, now.Add(-72*time.Hour), now).
		AddRow("contact-2", "user-1", "Newer Contact", StageNeedsFollowUp, now.Add(-24*time.Hour), now)

	mock.ExpectQuery("SELECT id, user_id").
		WithArgs("user-1", StageNeedsFollowUp, 10).
		WillReturnRows(rows)

	got, err := repo.ListNeedsFollowUp(context.Background(), "user-1", 10)
	if err != nil {
		t.Fatalf("ListNeedsFollowUp: %v", err)
	}
	if len(got) != 2 || got[0].ID != "contact-1" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
