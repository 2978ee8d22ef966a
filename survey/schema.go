package survey

import (
	"context"
	"fmt"
)

// EnsureSchema creates the per-category tables derived from the
// registry. Shared tables (users, token, avatars) come from the
// embedded migrations instead.
func (s *Service) EnsureSchema(ctx context.Context) error {
	for _, cat := range Categories {
		for _, stmt := range schemaFor(cat) {
			if _, err := s.db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("schema %s: %w", cat.Name, err)
			}
		}
	}
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS survey01_responses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			responses TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("schema survey01: %w", err)
	}
	return nil
}

func schemaFor(cat Category) (stmts []string) {
	if cat.HasQuestions {
		if cat.OpenEnded {
			stmts = append(stmts, fmt.Sprintf(`
				CREATE TABLE IF NOT EXISTS %s (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					question_text TEXT NOT NULL
				)`, cat.QuestionTable()))
		} else {
			stmts = append(stmts, fmt.Sprintf(`
				CREATE TABLE IF NOT EXISTS %s (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					question_text TEXT NOT NULL,
					option_a TEXT NOT NULL,
					option_b TEXT NOT NULL,
					option_c TEXT NOT NULL,
					option_d TEXT NOT NULL,
					category TEXT NOT NULL
				)`, cat.QuestionTable()))
		}
	}

	if cat.Upsert {
		stmts = append(stmts, fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				username TEXT PRIMARY KEY,
				answers TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`, cat.ResponseTable()))
	}

	switch cat.Sink {
	case SinkOption:
		stmts = append(stmts, fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				question_id INTEGER REFERENCES %s(id),
				selected_option TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`, cat.LogTable(), cat.QuestionTable()))
	case SinkAnswer:
		stmts = append(stmts, fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				question_id INTEGER,
				answer TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`, cat.LogTable()))
	}
	return stmts
}
