package survey

import (
	"context"
	"fmt"
	"reflect"
	"testing"
)

func TestSampleReturnsFullSet(t *testing.T) {
	s := newTestService(t)
	cat := mustCategory(t, "programming")
	ctx := context.Background()

	inserted := map[int]bool{}
	for _, label := range []string{"algorithms", "debugging", "testing", "tooling"} {
		for i := 0; i < 3; i++ {
			id := insertQuestion(t, s, cat, label, fmt.Sprintf("%s question %d", label, i))
			inserted[id] = true
		}
	}

	questions, err := s.Sample(ctx, cat, 3, 10)
	if err != nil {
		t.Fatalf("Sample returned error: %v", err)
	}
	if len(questions) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(questions))
	}

	seen := map[int]bool{}
	for _, q := range questions {
		if !inserted[q.ID] {
			t.Errorf("question %d not present in the store", q.ID)
		}
		if seen[q.ID] {
			t.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestSampleScarceLabel(t *testing.T) {
	s := newTestService(t)
	cat := mustCategory(t, "programming")
	ctx := context.Background()

	scarceID := insertQuestion(t, s, cat, "scarce", "lonely question")
	for _, label := range []string{"first", "second"} {
		for i := 0; i < 3; i++ {
			insertQuestion(t, s, cat, label, fmt.Sprintf("%s question %d", label, i))
		}
	}

	questions, err := s.Sample(ctx, cat, 3, 10)
	if err != nil {
		t.Fatalf("Sample returned error: %v", err)
	}
	if len(questions) != 7 {
		t.Fatalf("expected 7 questions (3+3+1), got %d", len(questions))
	}

	scarceCount := 0
	for _, q := range questions {
		if q.ID == scarceID {
			scarceCount++
		}
	}
	if scarceCount != 1 {
		t.Errorf("scarce label contributed %d questions, want 1", scarceCount)
	}
}

func TestSampleShortTotal(t *testing.T) {
	s := newTestService(t)
	cat := mustCategory(t, "food")
	ctx := context.Background()

	insertQuestion(t, s, cat, "taste", "q1")
	insertQuestion(t, s, cat, "taste", "q2")

	questions, err := s.Sample(ctx, cat, 3, 10)
	if err != nil {
		t.Fatalf("Sample returned error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, no padding, got %d", len(questions))
	}
}

func TestCategoryLabels(t *testing.T) {
	s := newTestService(t)
	cat := mustCategory(t, "sport")
	ctx := context.Background()

	insertQuestion(t, s, cat, "outdoor", "q1")
	insertQuestion(t, s, cat, "indoor", "q2")
	insertQuestion(t, s, cat, "outdoor", "q3")

	labels, err := s.CategoryLabels(ctx, cat)
	if err != nil {
		t.Fatalf("CategoryLabels returned error: %v", err)
	}
	if want := []string{"indoor", "outdoor"}; !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}
}

func TestOpenEndedListsAllInOrder(t *testing.T) {
	s := newTestService(t)
	cat := mustCategory(t, "user")
	ctx := context.Background()

	texts := []string{"What brings you here?", "What would you change?", "Anything else?"}
	for _, text := range texts {
		if _, err := s.db.Exec(
			"INSERT INTO "+cat.QuestionTable()+" (question_text) VALUES (?)", text); err != nil {
			t.Fatalf("insert question: %v", err)
		}
	}

	questions, err := s.Sample(ctx, cat, 3, 10)
	if err != nil {
		t.Fatalf("Sample returned error: %v", err)
	}
	if len(questions) != len(texts) {
		t.Fatalf("expected %d questions, got %d", len(texts), len(questions))
	}
	for i, q := range questions {
		if q.QuestionText != texts[i] {
			t.Errorf("question %d = %q, want %q", i, q.QuestionText, texts[i])
		}
	}
}
