// Package config groups the process level settings that do not belong to
// any single package.
package config

// App identifies the running process.
type App struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"APP_SERVICE_NAME" envDefault:"almare"`
	LogLevel    string `env:"LOG_LEVEL"` // overrides the environment's default level

	AnalyticsStream string `env:"ANALYTICS_STREAM" envDefault:"almare:analytics"`
	AnalyticsMaxLen int64  `env:"ANALYTICS_STREAM_MAXLEN" envDefault:"10000"`
}
