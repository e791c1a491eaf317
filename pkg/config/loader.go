package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once

	cacheMu sync.Mutex
	cache   = make(map[reflect.Type]any)
)

// loadDotenv reads ENV_FILE (default ".env") once. A missing file is not an error.
func loadDotenv() {
	dotenvOnce.Do(func() {
		file := os.Getenv("ENV_FILE")
		if file == "" {
			file = ".env"
		}
		_ = godotenv.Load(file)
	})
}

// Load fills v from environment variables using `env` struct tags. Each
// config type is parsed once; later calls copy the cached value.
//
//	type MailerConfig struct {
//		Provider string `env:"MAILER_PROVIDER" envDefault:"emailjs"`
//	}
//
//	var cfg MailerConfig
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDotenv()

	key := reflect.TypeFor[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache[key] = parsed
	*v = parsed
	return nil
}

// MustLoad is like Load but panics on failure; use it for configuration the
// process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
