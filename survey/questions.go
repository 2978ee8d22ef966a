package survey

import (
	"context"
	"fmt"

	"github.com/schoolpulse/surveyhub/model"
)

// CategoryLabels returns the distinct grouping labels currently present
// in the category's question bank.
func (s *Service) CategoryLabels(ctx context.Context, cat Category) ([]string, error) {
	if !cat.HasQuestions || cat.OpenEnded {
		return nil, errValidation("category has no grouped question bank")
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT category FROM "+cat.QuestionTable()+" ORDER BY category")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	labels := []string{}
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}

// Sample draws up to maxPerCategory questions per distinct label,
// shuffles the combined set once and truncates it to totalLimit.
// Scarce labels contribute what they have; a short total is returned
// short. Not deterministic by default.
//
// The per-label draw happens at the storage layer (ORDER BY RANDOM()),
// the mixing in a single in-process shuffle.
func (s *Service) Sample(ctx context.Context, cat Category, maxPerCategory, totalLimit int) ([]model.Question, error) {
	if cat.OpenEnded {
		return s.listOpenEnded(ctx, cat)
	}

	labels, err := s.CategoryLabels(ctx, cat)
	if err != nil {
		return nil, err
	}

	questions := []model.Question{}
	for _, label := range labels {
		rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
			SELECT id, question_text, option_a, option_b, option_c, option_d, category
			FROM %s
			WHERE category = ?
			ORDER BY RANDOM()
			LIMIT ?`, cat.QuestionTable()),
			label, maxPerCategory)
		if err != nil {
			return nil, err
		}

		for rows.Next() {
			q := model.Question{}
			err = rows.Scan(&q.ID, &q.QuestionText, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD, &q.Category)
			if err != nil {
				rows.Close()
				return nil, err
			}
			questions = append(questions, q)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}

	s.shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if len(questions) > totalLimit {
		questions = questions[:totalLimit]
	}
	return questions, nil
}

func (s *Service) listOpenEnded(ctx context.Context, cat Category) ([]model.Question, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, question_text FROM "+cat.QuestionTable()+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []model.Question{}
	for rows.Next() {
		q := model.Question{}
		if err := rows.Scan(&q.ID, &q.QuestionText); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
