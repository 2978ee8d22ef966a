package model

import "time"

type Question struct {
	ID           int    `json:"id"`
	QuestionText string `json:"question_text"`
	OptionA      string `json:"option_a,omitempty"`
	OptionB      string `json:"option_b,omitempty"`
	OptionC      string `json:"option_c,omitempty"`
	OptionD      string `json:"option_d,omitempty"`
	Category     string `json:"category,omitempty"`
}

type SurveyResponse struct {
	Username  string    `json:"username"`
	Answers   []string  `json:"answers"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// ResponseEntry is one element of a legacy per-question submission.
// MCQ sinks carry selected_option, free-form sinks carry answer.
type ResponseEntry struct {
	QuestionID     int    `json:"question_id"`
	SelectedOption string `json:"selected_option,omitempty"`
	Answer         string `json:"answer,omitempty"`
}

type User struct {
	ID             int    `json:"id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

type Avatar struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}
