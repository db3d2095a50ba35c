package users

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	user := User{
		ID:              "user-1",
		Email:           "agent@example.com",
		FullName:        "Ada Agent",
		Role:            "agent",
		OnboardingState: StateInProgress,
		FullAccess:      false,
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(
			user.ID,
			user.Email,
			user.FullName,
			user.Role,
			user.OnboardingState,
			user.FullAccess,
			nil, // blocking_reason
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Upsert(context.Background(), user); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, email").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "full_name", "role", "onboarding_state", "full_access", "blocking_reason", "created_at", "updated_at",
		}))

	if _, err := repo.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "email", "full_name", "role", "onboarding_state", "full_access", "blocking_reason", "created_at", "updated_at",
	}).AddRow("user-1", "agent@example.com", "Ada Agent", "agent", StateOnboarded, true, nil, now, now)

	mock.ExpectQuery("SELECT id, email").
		WithArgs("user-1").
		WillReturnRows(rows)

	user, err := repo.GetByID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if user.OnboardingState != StateOnboarded || !user.FullAccess {
		t.Fatalf("unexpected user: %+v", user)
	}
}
