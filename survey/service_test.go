package survey

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.sqlite"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	s := New(db)
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return s
}

func mustCategory(t *testing.T, name string) Category {
	t.Helper()
	cat, ok := Find(name)
	if !ok {
		t.Fatalf("category %q not registered", name)
	}
	return cat
}

func insertQuestion(t *testing.T, s *Service, cat Category, label, text string) int {
	t.Helper()

	res, err := s.db.Exec(`
		INSERT INTO `+cat.QuestionTable()+` (question_text, option_a, option_b, option_c, option_d, category)
		VALUES (?, 'a', 'b', 'c', 'd', ?)`,
		text, label)
	if err != nil {
		t.Fatalf("insert question: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("last insert id: %v", err)
	}
	return int(id)
}

func countRows(t *testing.T, s *Service, table string) int {
	t.Helper()

	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
