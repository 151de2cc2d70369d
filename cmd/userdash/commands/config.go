package commands

import "time"

// AppConfig holds the process-wide settings. Backend-specific settings
// (redis.Config, mongo.Config, pg.Config) load only when selected.
type AppConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"APP_NAME" envDefault:"userdash"`

	// DraftBackend is one of memory, file, redis, mongo, postgres.
	DraftBackend string `env:"DRAFT_BACKEND" envDefault:"memory"`
	// DraftDir overrides the file backend directory.
	DraftDir string `env:"DRAFT_DIR"`

	SubmitDelay    time.Duration `env:"SUBMIT_DELAY" envDefault:"1500ms"`
	ToastHistory   int           `env:"TOAST_HISTORY" envDefault:"50"`
	ToastBuffer    int           `env:"TOAST_BUFFER" envDefault:"16"`
	WizardCapacity int           `env:"WIZARD_CAPACITY" envDefault:"1024"`
	SecureCookie   bool          `env:"COOKIE_SECURE" envDefault:"false"`

	TrustedIPHeaders []string `env:"TRUSTED_IP_HEADERS" envSeparator:","`
}
