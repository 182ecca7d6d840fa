// Package config defines the application-level configuration.
package config

// AppConfig carries service identity and the public base URL that
// confirmation links point back to.
type AppConfig struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"letterdrop"`
	Environment string `env:"APP_ENV" envDefault:"development"`

	// BaseURL is the externally reachable address of this service, used to
	// build confirmation links. No trailing slash.
	BaseURL string `env:"APP_BASE_URL,required"`

	// DevEmailDir is where the development sender drops outbound emails when
	// Postmark credentials are absent.
	DevEmailDir string `env:"DEV_EMAIL_DIR" envDefault:"./tmp/emails"`
}
