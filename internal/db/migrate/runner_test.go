package migrate

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/AryanPandeyy/opencap.co/internal/db"
)

func TestRun_EmptyDSN(t *testing.T) {
	for _, dsn := range []string{"", "   "} {
		err := Run(dsn, Up)
		if err == nil {
			t.Fatalf("Run(%q) should return error", dsn)
		}
		if !strings.Contains(err.Error(), "DATABASE_URL is not set") {
			t.Errorf("error = %q, want DATABASE_URL message", err.Error())
		}
	}
}

func TestRun_InvalidDirection(t *testing.T) {
	for _, d := range []string{"", "invalid", "left", "UP", "Down"} {
		t.Run(d, func(t *testing.T) {
			err := Run("postgres://localhost/test", Direction(d))
			if err == nil {
				t.Fatalf("Run with direction %q should return error", d)
			}
			if !strings.Contains(err.Error(), "direction") {
				t.Errorf("error = %q, should mention direction", err.Error())
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	testCases := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"up", Up, false},
		{"down", Down, false},
		{"sideways", "", true},
	}
	for _, tc := range testCases {
		got, err := ParseDirection(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDirection(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseDirection(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDriverURL(t *testing.T) {
	testCases := []struct {
		in, want string
	}{
		{"postgres://u:p@localhost:5432/opencap", "pgx5://u:p@localhost:5432/opencap"},
		{"postgresql://localhost/opencap?sslmode=disable", "pgx5://localhost/opencap?sslmode=disable"},
		{"pgx5://localhost/opencap", "pgx5://localhost/opencap"},
	}
	for _, tc := range testCases {
		if got := driverURL(tc.in); got != tc.want {
			t.Errorf("driverURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMigrationFS_UpAndDownPaired(t *testing.T) {
	entries, err := fs.ReadDir(db.MigrationFS, "migrations")
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	ups, downs := map[string]bool{}, map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}
	if len(ups) == 0 {
		t.Fatal("no up migrations embedded")
	}
	for v := range ups {
		if !downs[v] {
			t.Errorf("migration %s has no down file", v)
		}
	}
}

func TestErrNoChange(t *testing.T) {
	if ErrNoChange == nil {
		t.Fatal("ErrNoChange should not be nil")
	}
	if !errors.Is(ErrNoChange, ErrNoChange) {
		t.Error("ErrNoChange should be errors.Is compatible")
	}
}
