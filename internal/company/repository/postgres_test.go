package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/AryanPandeyy/opencap.co/internal/company/domain"
)

func testCompany() *domain.Company {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return &domain.Company{
		ID:                   "c-1",
		PublicID:             "pub-1",
		Name:                 "Acme Inc.",
		IncorporationType:    domain.IncorporationCCorp,
		IncorporationDate:    time.Date(2022, 3, 14, 0, 0, 0, 0, time.UTC),
		IncorporationCountry: "US",
		IncorporationState:   "DE",
		StreetAddress:        "1 Main St",
		City:                 "Springfield",
		State:                "IL",
		Zipcode:              "62701",
		Country:              "US",
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

func TestPostgresRepository_Create(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer conn.Close()

	c := testCompany()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO companies")).
		WithArgs(c.ID, c.PublicID, c.Name, "c-corp", c.IncorporationDate,
			"US", "DE", "1 Main St", "Springfield", "IL", "62701", "US", c.CreatedAt, c.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := NewPostgresRepository(conn).Create(context.Background(), c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPostgresRepository_CreateError(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer conn.Close()

	dbErr := errors.New("duplicate key value violates unique constraint \"companies_public_id_key\"")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO companies")).WillReturnError(dbErr)

	err = NewPostgresRepository(conn).Create(context.Background(), testCompany())
	if !errors.Is(err, dbErr) {
		t.Errorf("Create err = %v, want wrapped %v", err, dbErr)
	}
}
