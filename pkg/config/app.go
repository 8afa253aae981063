package config

import "github.com/dmitrymomot/medverify/pkg/logger"

// App holds the settings of the medverify command.
type App struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	Service    string `env:"APP_SERVICE" envDefault:"medverify"`
	LogLevel   string `env:"LOG_LEVEL"`
	LogFormat  string `env:"LOG_FORMAT"`
	TablesPath string `env:"MEDVERIFY_TABLES_PATH"`
}

// LoggerOptions converts the logging settings into logger options.
// Env picks the level and format; LogLevel and LogFormat override them when set.
// Invalid level or format names are reported instead of silently defaulted.
func (a App) LoggerOptions() ([]logger.Option, error) {
	opts := []logger.Option{logger.WithEnvironment(a.Env, a.Service)}

	if a.LogLevel != "" {
		level, err := logger.ParseLevel(a.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if a.LogFormat != "" {
		format, err := logger.ParseFormat(a.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return opts, nil
}
