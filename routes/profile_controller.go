package routes

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/schoolpulse/surveyhub/app"
	"github.com/schoolpulse/surveyhub/httpx"
	"github.com/schoolpulse/surveyhub/log"
	"github.com/schoolpulse/surveyhub/model"
	"github.com/schoolpulse/surveyhub/routes/middlewares"
)

const maxUploadSize = 10 << 20

func ListAvatars(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := app.QueryContext(r.Context(), "SELECT id, name, url FROM avatars")
		if err != nil {
			httpx.LogInternalError(w, "db.get_avatars", err)
			return
		}
		defer rows.Close()

		avatars := []model.Avatar{}
		for rows.Next() {
			a := model.Avatar{}
			if err := rows.Scan(&a.ID, &a.Name, &a.URL); err != nil {
				httpx.LogInternalError(w, "db.get_avatars.scan", err)
				return
			}
			avatars = append(avatars, a)
		}

		render.JSON(w, r, avatars)
	}
}

func SetAvatar(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := struct {
			AvatarURL string `json:"avatarUrl"`
		}{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		_, err = app.ExecContext(r.Context(),
			"UPDATE users SET profile_picture = ? WHERE username = ?",
			req.AvatarURL, middlewares.Username(r))
		if err != nil {
			httpx.LogInternalError(w, "db.set_avatar", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"message":   "avatar updated",
			"avatarUrl": req.AvatarURL,
		})
	}
}

func UploadProfilePicture(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := r.ParseMultipartForm(maxUploadSize)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_multipart")
			return
		}

		file, header, err := r.FormFile("profilePicture")
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_file")
			return
		}
		defer file.Close()

		if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "upload.content_type",
				"only image files allowed")
			return
		}

		if err := os.MkdirAll(app.UploadsDir, 0o755); err != nil {
			httpx.LogInternalError(w, "upload.mkdir", err)
			return
		}

		filename := uuid.NewString() + filepath.Ext(header.Filename)
		dst, err := os.Create(filepath.Join(app.UploadsDir, filename))
		if err != nil {
			httpx.LogInternalError(w, "upload.create", err)
			return
		}
		defer dst.Close()

		if _, err := io.Copy(dst, file); err != nil {
			httpx.LogInternalError(w, "upload.copy", err)
			return
		}

		_, err = app.ExecContext(r.Context(),
			"UPDATE users SET profile_picture = ? WHERE username = ?",
			filename, middlewares.Username(r))
		if err != nil {
			httpx.LogInternalError(w, "db.upload.update", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"message":  "profile picture updated",
			"filename": filename,
		})
	}
}
