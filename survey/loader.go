package survey

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/schoolpulse/surveyhub/log"
)

// LoadCSV parses a delimited question source and inserts the well-formed
// rows into the category's question table. The header row is skipped;
// rows with missing columns or any empty required field are silently
// dropped. Storage errors abort the load. Returns the inserted count.
//
// Source column order: question, option_a..option_d, category. Open
// ended sources carry an index column followed by the question text.
func (s *Service) LoadCSV(ctx context.Context, cat Category, r io.Reader) (int, error) {
	if !cat.HasQuestions {
		return 0, errValidation("category has no question bank")
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	// header
	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, err
	}

	count := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return count, err
		}

		if cat.OpenEnded {
			if len(record) < 2 {
				continue
			}
			// the source prefixes an index column; everything after it
			// is the question text
			question := cleanField(strings.Join(record[1:], ","))
			if question == "" {
				continue
			}
			_, err = s.db.ExecContext(ctx,
				"INSERT INTO "+cat.QuestionTable()+" (question_text) VALUES (?)",
				question)
			if err != nil {
				return count, err
			}
			count++
			continue
		}

		if len(record) < 6 {
			continue
		}
		fields := make([]string, 6)
		wellFormed := true
		for i := range fields {
			fields[i] = cleanField(record[i])
			if fields[i] == "" {
				wellFormed = false
			}
		}
		if !wellFormed {
			continue
		}

		_, err = s.db.ExecContext(ctx, fmt.Sprintf(`
			INSERT INTO %s (question_text, option_a, option_b, option_c, option_d, category)
			VALUES (?, ?, ?, ?, ?, ?)`, cat.QuestionTable()),
			fields[0], fields[1], fields[2], fields[3], fields[4], fields[5])
		if err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

// LoadDir is the startup path: for each registered category with a CSV
// source it loads the file, gated on the question table being empty.
// A missing source file is not an error.
func (s *Service) LoadDir(ctx context.Context, dir string) error {
	for _, cat := range Categories {
		if cat.CSVFile == "" {
			continue
		}

		var existing int
		err := s.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM "+cat.QuestionTable()).Scan(&existing)
		if err != nil {
			return err
		}
		if existing > 0 {
			continue
		}

		f, err := os.Open(filepath.Join(dir, cat.CSVFile))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Debugf("load.%s: no source file, skipping", cat.Name)
				continue
			}
			return err
		}

		count, err := s.LoadCSV(ctx, cat, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("load %s: %w", cat.Name, err)
		}
		log.Infof("load.%s: inserted %d questions", cat.Name, count)
	}
	return nil
}

// Reload clears the category's question table and loads it again from
// the source. Delete-then-reload, never insert-additional, so the bank
// cannot end up duplicated. Returns the inserted count and the distinct
// labels found afterwards.
func (s *Service) Reload(ctx context.Context, cat Category, r io.Reader) (int, []string, error) {
	if !cat.HasQuestions {
		return 0, nil, errValidation("category has no question bank")
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM "+cat.QuestionTable()); err != nil {
		return 0, nil, err
	}

	count, err := s.LoadCSV(ctx, cat, r)
	if err != nil {
		return count, nil, err
	}

	if cat.OpenEnded {
		return count, nil, nil
	}
	labels, err := s.CategoryLabels(ctx, cat)
	return count, labels, err
}

func cleanField(s string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "\r"))
}
