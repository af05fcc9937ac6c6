package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestApplyRunsEachFileOnce(t *testing.T) {
	db := openTestDB(t)
	migrations := fstest.MapFS{
		"migrations/001_init.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE kv (key TEXT PRIMARY KEY, value TEXT);\n-- +migrate Down\nDROP TABLE kv;\n")},
		"migrations/002_seed.sql": {Data: []byte("INSERT INTO kv (key, value) VALUES ('seed', '1');")},
		"migrations/readme.txt":   {Data: []byte("ignored")},
	}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := Apply(ctx, db, migrations, "migrations"); err != nil {
			t.Fatalf("apply run %d: %v", i, err)
		}
	}

	var rows int
	if err := db.QueryRow("SELECT COUNT(*) FROM kv").Scan(&rows); err != nil {
		t.Fatalf("count kv: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected seed applied once, got %d rows", rows)
	}

	var recorded int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&recorded); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if recorded != 2 {
		t.Fatalf("expected 2 recorded migrations, got %d", recorded)
	}
}

func TestApplyRequiresDB(t *testing.T) {
	if err := Apply(context.Background(), nil, fstest.MapFS{}, ""); err == nil {
		t.Fatal("expected error for nil db")
	}
}

func TestApplyMissingRoot(t *testing.T) {
	db := openTestDB(t)
	if err := Apply(context.Background(), db, fstest.MapFS{}, "missing"); err == nil {
		t.Fatal("expected error for missing migrations dir")
	}
}

func TestUpSection(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "no markers", in: "CREATE TABLE a (x);", want: "CREATE TABLE a (x);"},
		{name: "up only", in: "-- +migrate Up\nCREATE TABLE a (x);", want: "\nCREATE TABLE a (x);"},
		{name: "up and down", in: "-- +migrate Up\nA;\n-- +migrate Down\nB;", want: "\nA;\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := UpSection(tc.in); got != tc.want {
				t.Fatalf("UpSection() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIsAlreadyExists(t *testing.T) {
	if IsAlreadyExists(nil) {
		t.Fatal("nil error should not match")
	}
	if !IsAlreadyExists(errors.New("table kv already exists")) {
		t.Fatal("expected already exists match")
	}
	if !IsAlreadyExists(errors.New("duplicate column name: token_type")) {
		t.Fatal("expected duplicate column match")
	}
	if IsAlreadyExists(errors.New("syntax error")) {
		t.Fatal("unexpected match")
	}
}
