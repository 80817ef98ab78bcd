package localekit

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the environment-driven settings of a Kit.
type Config struct {
	// DefaultLocale is used when no selector or extractor yields a locale.
	DefaultLocale string `env:"LOCALEKIT_DEFAULT_LOCALE" envDefault:"en"`
	// DefaultTimezone is the IANA name of the timezone applied when no
	// timezone selector is registered or the selector returns nil.
	DefaultTimezone string `env:"LOCALEKIT_DEFAULT_TIMEZONE" envDefault:"UTC"`
	// DefaultDomain names the implicit gettext message domain.
	DefaultDomain string `env:"LOCALEKIT_DEFAULT_DOMAIN" envDefault:"messages"`
	// TranslationsDir, when set, loads the default domain's catalogs from
	// this directory at Kit construction.
	TranslationsDir string `env:"LOCALEKIT_TRANSLATIONS_DIR"`
	// CookieName and QueryParamName configure the default locale extractor.
	CookieName     string `env:"LOCALEKIT_COOKIE_NAME" envDefault:"locale"`
	QueryParamName string `env:"LOCALEKIT_QUERY_PARAM" envDefault:"locale"`
}

var loadEnvOnce sync.Once

// LoadConfig reads Config from the environment, loading a .env file first
// when one exists. A missing .env file is not an error.
func LoadConfig() (Config, error) {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}
