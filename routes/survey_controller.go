package routes

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/schoolpulse/surveyhub/app"
	"github.com/schoolpulse/surveyhub/httpx"
	"github.com/schoolpulse/surveyhub/log"
	"github.com/schoolpulse/surveyhub/model"
	"github.com/schoolpulse/surveyhub/routes/middlewares"
	"github.com/schoolpulse/surveyhub/survey"
)

// questionsPerCategory caps the per-label draw; a full question set is
// truncated to survey.AnswersPerSurvey.
const questionsPerCategory = 3

func GetQuestions(app app.App, cat survey.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questions, err := app.Sample(r.Context(), cat, questionsPerCategory, survey.AnswersPerSurvey)
		if err != nil {
			httpx.LogInternalError(w, "db.get_questions."+cat.Name, err)
			return
		}

		render.JSON(w, r, questions)
	}
}

func GetCategories(app app.App, cat survey.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		labels, err := app.CategoryLabels(r.Context(), cat)
		if err != nil {
			httpx.LogInternalError(w, "db.get_categories."+cat.Name, err)
			return
		}

		render.JSON(w, r, labels)
	}
}

func SubmitSurvey(app app.App, cat survey.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submission := model.SurveyResponse{}
		err := render.DecodeJSON(r.Body, &submission)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		err = app.Submit(r.Context(), cat, submission.Username, submission.Answers)
		if survey.IsValidation(err) {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "submit."+cat.Name, "%s", err)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.submit."+cat.Name, err)
			return
		}

		render.JSON(w, r, map[string]any{
			"message": cat.Name + " survey responses saved successfully",
		})
	}
}

type appendRequest struct {
	Responses []model.ResponseEntry `json:"responses"`
}

func AppendResponses(app app.App, cat survey.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := appendRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		err = app.AppendLog(r.Context(), cat, req.Responses)
		if survey.IsValidation(err) {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "append."+cat.Name, "%s", err)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.append."+cat.Name, err)
			return
		}

		render.JSON(w, r, map[string]any{
			"message": cat.Name + " responses saved successfully",
		})
	}
}

func AppendRawResponses(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := appendRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		err = app.AppendRaw(r.Context(), middlewares.Username(r), req.Responses)
		if survey.IsValidation(err) {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "append.survey01", "%s", err)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.append.survey01", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"message": "survey responses saved successfully",
		})
	}
}

func TestDB(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var now string
		err := app.QueryRowContext(r.Context(), "SELECT datetime('now')").Scan(&now)
		if err != nil {
			httpx.LogInternalError(w, "db.test", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"status": "Connected",
			"time":   now,
		})
	}
}
