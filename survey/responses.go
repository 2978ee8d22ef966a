package survey

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/schoolpulse/surveyhub/model"
)

// Submit stores the user's answer document for the category, replacing
// any prior submission in one atomic upsert. Answers are validated for
// arity only, never for content. Concurrent resubmissions by the same
// user resolve last-writer-wins at the storage layer.
func (s *Service) Submit(ctx context.Context, cat Category, username string, answers []string) error {
	if !cat.Upsert {
		return errValidation("category does not accept survey responses")
	}
	if strings.TrimSpace(username) == "" {
		return errValidation("username is required")
	}
	if answers == nil {
		return errValidation("answers are required")
	}
	if len(answers) != AnswersPerSurvey {
		return errValidation(fmt.Sprintf("expected exactly %d answers, got %d", AnswersPerSurvey, len(answers)))
	}

	blob, err := json.Marshal(answers)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (username, answers, created_at) VALUES (?, ?, ?)
		ON CONFLICT (username) DO UPDATE SET
			answers = excluded.answers,
			created_at = excluded.created_at`, cat.ResponseTable()),
		username, string(blob), time.Now())
	return err
}

// Latest returns the response document currently on file for username.
// sql.ErrNoRows passes through when the user never submitted.
func (s *Service) Latest(ctx context.Context, cat Category, username string) (model.SurveyResponse, error) {
	resp := model.SurveyResponse{}
	if !cat.Upsert {
		return resp, errValidation("category does not accept survey responses")
	}

	var blob string
	err := s.db.QueryRowContext(ctx,
		"SELECT username, answers, created_at FROM "+cat.ResponseTable()+" WHERE username = ?",
		username,
	).Scan(&resp.Username, &blob, &resp.CreatedAt)
	if err != nil {
		return resp, err
	}

	err = json.Unmarshal([]byte(blob), &resp.Answers)
	return resp, err
}

// AppendLog inserts one row per entry into the category's legacy
// per-question log. The whole batch runs in a single transaction: a
// failing entry (say, a foreign key violation) leaves zero rows behind.
func (s *Service) AppendLog(ctx context.Context, cat Category, entries []model.ResponseEntry) error {
	if cat.Sink == SinkNone {
		return errValidation("category has no response log")
	}
	if len(entries) == 0 {
		return errValidation("responses are required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var column string
	switch cat.Sink {
	case SinkOption:
		column = "selected_option"
	case SinkAnswer:
		column = "answer"
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO %s (question_id, %s) VALUES (?, ?)", cat.LogTable(), column))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		value := e.SelectedOption
		if cat.Sink == SinkAnswer {
			value = e.Answer
		}
		if _, err := stmt.ExecContext(ctx, e.QuestionID, value); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// AppendRaw appends one serialized batch to survey01_responses. This is
// the append-only variant: nothing is replaced, every call adds a row.
func (s *Service) AppendRaw(ctx context.Context, username string, entries []model.ResponseEntry) error {
	if strings.TrimSpace(username) == "" {
		return errValidation("username is required")
	}
	if len(entries) == 0 {
		return errValidation("responses are required")
	}

	blob, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO survey01_responses (username, responses) VALUES (?, ?)",
		username, string(blob))
	return err
}
