package routes

import (
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"

	"github.com/schoolpulse/surveyhub/app"
	"github.com/schoolpulse/surveyhub/routes/middlewares"
	"github.com/schoolpulse/surveyhub/survey"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))
	root.Mount("/", servePublicFiles())

	return root
}

// apiRouter mounts one generic handler set per registry entry instead
// of a hand-written route pair per category.
func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	api.Get("/test-db", TestDB(app))

	for _, cat := range survey.Categories {
		if cat.HasQuestions {
			api.Get("/"+cat.Name+"-questions", GetQuestions(app, cat))
			if !cat.OpenEnded {
				api.Get("/"+cat.Name+"-categories", GetCategories(app, cat))
			}
		}
		if cat.Upsert {
			api.Post("/"+cat.Name+"-survey-responses", SubmitSurvey(app, cat))
		}
		if cat.Sink != survey.SinkNone {
			api.Post("/"+cat.Name+"-responses", AppendResponses(app, cat))
		}
	}

	authenticated := middlewares.Authenticated(app.TokenSecret)
	api.With(authenticated).Post("/responses", AppendRawResponses(app))

	api.Post("/register", Register(app))
	api.Post("/login", Login(app))
	api.Post("/refresh", Refresh(app))

	api.Get("/avatars", ListAvatars(app))
	api.With(authenticated).Post("/set-avatar", SetAvatar(app))
	api.With(authenticated).Post("/upload-profile-picture", UploadProfilePicture(app))

	return api
}

func servePublicFiles() http.Handler {
	return http.FileServer(http.Dir("public"))
}
