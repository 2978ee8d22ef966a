package app

import (
	"database/sql"

	"github.com/go-chi/oauth"

	"github.com/schoolpulse/surveyhub/config"
	"github.com/schoolpulse/surveyhub/survey"
)

type App struct {
	*sql.DB
	*oauth.BearerServer
	*survey.Service
	config.Config
}
