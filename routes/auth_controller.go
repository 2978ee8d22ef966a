package routes

import (
	"database/sql"
	"errors"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-chi/render"
	"golang.org/x/crypto/bcrypt"

	"github.com/schoolpulse/surveyhub/app"
	"github.com/schoolpulse/surveyhub/httpx"
	"github.com/schoolpulse/surveyhub/log"
)

var (
	reLowercase = regexp.MustCompile(`[a-z]`)
	reUppercase = regexp.MustCompile(`[A-Z]`)
)

type registration struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Register(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creds := registration{}
		err := render.DecodeJSON(r.Body, &creds)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		if creds.Username == "" || creds.Password == "" {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "register.credentials",
				"username and password required")
			return
		}
		if len(creds.Password) < 8 {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "register.password",
				"password must be at least 8 characters long")
			return
		}
		if !reLowercase.MatchString(creds.Password) || !reUppercase.MatchString(creds.Password) {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "register.password",
				"password must contain both uppercase and lowercase letters")
			return
		}

		var exists bool
		err = app.QueryRowContext(r.Context(),
			"SELECT 1 FROM users WHERE username = ?", creds.Username,
		).Scan(&exists)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			httpx.LogInternalError(w, "db.register.check", err)
			return
		}
		if exists {
			httpx.LogStatusMsg(w, http.StatusConflict, log.DebugLevel, "register.duplicate",
				"username already exists")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
		if err != nil {
			httpx.LogInternalError(w, "register.hash", err)
			return
		}

		_, err = app.ExecContext(r.Context(),
			"INSERT INTO users (username, password_hash) VALUES (?, ?)",
			creds.Username, string(hash))
		if err != nil {
			httpx.LogInternalError(w, "db.register.insert", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"message": "user registered successfully",
		})
	}
}

func Login(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok {
			httpx.LogStatus(w, http.StatusUnauthorized, log.DebugLevel, "login.basic_auth")
			return
		}

		body := url.Values{
			"grant_type": {"password"},
			"username":   {user},
			"password":   {pass},
		}
		r.Body = io.NopCloser(strings.NewReader(body.Encode()))
		r.Header.Set("content-type", "application/x-www-form-urlencoded")
		r.Header.Set("content-length", strconv.Itoa(len(body.Encode())))
		app.UserCredentials(w, r)
	}
}

func Refresh(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("authorization")
		match := regexp.MustCompile(`(?i)^refresh\s+(.*)`).FindStringSubmatch(auth)
		if len(match) == 0 {
			httpx.LogStatus(w, http.StatusUnauthorized, log.DebugLevel, "refresh.token")
			return
		}
		token := match[1]

		body := url.Values{
			"grant_type":    {"refresh_token"},
			"refresh_token": {token},
		}

		req, err := http.NewRequest("POST", "/", strings.NewReader(body.Encode()))
		if err != nil {
			httpx.LogStatus(w, http.StatusInternalServerError, log.DebugLevel, "refresh.new_request")
			return
		}
		req.Header.Set("content-type", "application/x-www-form-urlencoded")
		req.Header.Set("content-length", strconv.Itoa(len(body.Encode())))

		resp := httpx.NewResponseBuffer()
		app.UserCredentials(resp, req)
		resp.Flush(w)
	}
}
