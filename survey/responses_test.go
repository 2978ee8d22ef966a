package survey

import (
	"context"
	"reflect"
	"testing"

	"github.com/schoolpulse/surveyhub/model"
)

func tenAnswers(value string) []string {
	answers := make([]string, AnswersPerSurvey)
	for i := range answers {
		answers[i] = value
	}
	return answers
}

func TestSubmitRoundTrip(t *testing.T) {
	s := newTestService(t)
	cat := mustCategory(t, "teacher")
	ctx := context.Background()

	answers := []string{"A", "B", "C", "D", "A", "B", "C", "D", "A", "B"}
	if err := s.Submit(ctx, cat, "alice", answers); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	stored, err := s.Latest(ctx, cat, "alice")
	if err != nil {
		t.Fatalf("Latest returned error: %v", err)
	}
	if stored.Username != "alice" {
		t.Errorf("username = %q, want alice", stored.Username)
	}
	if !reflect.DeepEqual(stored.Answers, answers) {
		t.Errorf("answers = %v, want %v", stored.Answers, answers)
	}
}

func TestResubmitReplaces(t *testing.T) {
	s := newTestService(t)
	cat := mustCategory(t, "movie")
	ctx := context.Background()

	first := tenAnswers("A")
	second := tenAnswers("D")
	if err := s.Submit(ctx, cat, "bob", first); err != nil {
		t.Fatalf("first Submit returned error: %v", err)
	}
	if err := s.Submit(ctx, cat, "bob", second); err != nil {
		t.Fatalf("second Submit returned error: %v", err)
	}

	if n := countRows(t, s, cat.ResponseTable()); n != 1 {
		t.Fatalf("expected exactly one row for bob, got %d", n)
	}

	stored, err := s.Latest(ctx, cat, "bob")
	if err != nil {
		t.Fatalf("Latest returned error: %v", err)
	}
	if !reflect.DeepEqual(stored.Answers, second) {
		t.Errorf("answers = %v, want the second submission %v", stored.Answers, second)
	}
}

func TestSubmitValidation(t *testing.T) {
	s := newTestService(t)
	cat := mustCategory(t, "website")
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		answers  []string
		wantErr  bool
	}{
		{name: "nine answers", username: "carol", answers: tenAnswers("A")[:9], wantErr: true},
		{name: "eleven answers", username: "carol", answers: append(tenAnswers("A"), "X"), wantErr: true},
		{name: "empty username", username: "", answers: tenAnswers("A"), wantErr: true},
		{name: "blank username", username: "   ", answers: tenAnswers("A"), wantErr: true},
		{name: "nil answers", username: "carol", answers: nil, wantErr: true},
		{name: "arbitrary values accepted", username: "carol", answers: []string{
			"yes", "no", "42", "maybe", "E", "blue", "never", "always", "7", "n/a",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Submit(ctx, cat, tt.username, tt.answers)
			if tt.wantErr {
				if !IsValidation(err) {
					t.Fatalf("expected a validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Submit returned error: %v", err)
			}
		})
	}
}

func TestAppendLogInserts(t *testing.T) {
	s := newTestService(t)
	cat := mustCategory(t, "student")
	ctx := context.Background()

	q1 := insertQuestion(t, s, cat, "habits", "q1")
	q2 := insertQuestion(t, s, cat, "habits", "q2")

	entries := []model.ResponseEntry{
		{QuestionID: q1, SelectedOption: "A"},
		{QuestionID: q2, SelectedOption: "C"},
	}
	if err := s.AppendLog(ctx, cat, entries); err != nil {
		t.Fatalf("AppendLog returned error: %v", err)
	}

	if n := countRows(t, s, cat.LogTable()); n != 2 {
		t.Errorf("expected 2 logged rows, got %d", n)
	}
}

func TestAppendLogFailedBatchInsertsNothing(t *testing.T) {
	s := newTestService(t)
	cat := mustCategory(t, "student")
	ctx := context.Background()

	q1 := insertQuestion(t, s, cat, "habits", "q1")

	entries := []model.ResponseEntry{
		{QuestionID: q1, SelectedOption: "A"},
		{QuestionID: 9999, SelectedOption: "B"}, // no such question
	}
	if err := s.AppendLog(ctx, cat, entries); err == nil {
		t.Fatal("expected a foreign key error")
	}

	if n := countRows(t, s, cat.LogTable()); n != 0 {
		t.Errorf("failed batch left %d rows behind, want 0", n)
	}
}

func TestAppendLogFreeFormSink(t *testing.T) {
	s := newTestService(t)
	cat := mustCategory(t, "general")
	ctx := context.Background()

	entries := []model.ResponseEntry{
		{QuestionID: 1, Answer: "long form answer"},
		{QuestionID: 2, Answer: "another one"},
	}
	if err := s.AppendLog(ctx, cat, entries); err != nil {
		t.Fatalf("AppendLog returned error: %v", err)
	}

	if n := countRows(t, s, cat.LogTable()); n != 2 {
		t.Errorf("expected 2 logged rows, got %d", n)
	}
}

func TestAppendLogValidation(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	if err := s.AppendLog(ctx, mustCategory(t, "student"), nil); !IsValidation(err) {
		t.Errorf("empty batch: expected a validation error, got %v", err)
	}
	if err := s.AppendLog(ctx, mustCategory(t, "food"), []model.ResponseEntry{{QuestionID: 1}}); !IsValidation(err) {
		t.Errorf("category without a log: expected a validation error, got %v", err)
	}
}

func TestAppendRawAccumulates(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	entries := []model.ResponseEntry{{QuestionID: 1, Answer: "first"}}
	if err := s.AppendRaw(ctx, "dave", entries); err != nil {
		t.Fatalf("AppendRaw returned error: %v", err)
	}
	if err := s.AppendRaw(ctx, "dave", entries); err != nil {
		t.Fatalf("second AppendRaw returned error: %v", err)
	}

	if n := countRows(t, s, "survey01_responses"); n != 2 {
		t.Errorf("expected 2 appended rows, got %d", n)
	}
}

func TestAppendRawValidation(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	if err := s.AppendRaw(ctx, "", []model.ResponseEntry{{QuestionID: 1}}); !IsValidation(err) {
		t.Errorf("empty username: expected a validation error, got %v", err)
	}
	if err := s.AppendRaw(ctx, "dave", nil); !IsValidation(err) {
		t.Errorf("empty batch: expected a validation error, got %v", err)
	}
}
