package main

import (
	"time"

	"github.com/dmitrymomot/formlab/pkg/formstore"
	"github.com/dmitrymomot/formlab/pkg/validator"
)

// appConfig holds the settings that no package owns.
type appConfig struct {
	Env           string        `env:"APP_ENV" envDefault:"development"`
	LogLevel      string        `env:"LOG_LEVEL"`
	FormStore     string        `env:"FORM_STORE" envDefault:"memory"`
	FormStateTTL  time.Duration `env:"FORM_STATE_TTL" envDefault:"30m"`
	CleanupPeriod time.Duration `env:"FORM_STATE_CLEANUP" envDefault:"1m"`
	SubmitDelay   time.Duration `env:"SUBMIT_DELAY" envDefault:"1s"`
	DefaultLang   string        `env:"DEFAULT_LANG" envDefault:"en"`
	SecureCookies bool          `env:"SECURE_COOKIES" envDefault:"false"`
}

func (c appConfig) Validate() error {
	return validator.Apply(
		validator.InList("FORM_STORE", c.FormStore, []string{formstore.BackendMemory, formstore.BackendRedis}),
		validator.MinNum("FORM_STATE_TTL", c.FormStateTTL, time.Second),
		validator.MinNum("SUBMIT_DELAY", c.SubmitDelay, 0),
		validator.Required("DEFAULT_LANG", c.DefaultLang),
	)
}
