// Package config loads fieldkit bootstrap settings from the environment.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded once per process (missing files are fine), then
// environment variables are parsed into tagged structs. Each struct type is
// parsed at most once and cached for the process lifetime; Reset clears the
// cache for test isolation.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/fieldkit"
)

var (
	cacheMu sync.Mutex
	cache   = make(map[string]any)

	dotenvOnce sync.Once
)

// Load parses environment variables into v. The result is cached by struct
// type: repeated calls for the same type return the first parse.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	key := typeKey[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParse, err)
	}

	cache[key] = *v
	return nil
}

// MustLoad works like Load but panics on failure. Use for configuration the
// host cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Reset clears the cache so tests can reload with a modified environment.
func Reset() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cache = make(map[string]any)
}

func typeKey[T any]() string {
	var zero T
	if t := reflect.TypeOf(zero); t != nil {
		return t.String()
	}
	return fmt.Sprintf("%T", *new(T))
}

// Validator holds the environment-tunable validator settings.
type Validator struct {
	// Mode is the default validation mode injected into contexts that carry
	// none: "form", "admin" or "api".
	Mode string `env:"FIELDKIT_MODE" envDefault:"form"`

	// Locale is the BCP 47 tag used for locale-aware display formatting.
	Locale string `env:"FIELDKIT_LOCALE" envDefault:"en"`

	// StrictKeys makes bulk validation reject unregistered keys instead of
	// skipping them.
	StrictKeys bool `env:"FIELDKIT_STRICT_KEYS" envDefault:"false"`
}

// ValidatorOptions converts the settings into fieldkit.NewValidator options.
func (c Validator) ValidatorOptions() []fieldkit.ValidatorOption {
	return []fieldkit.ValidatorOption{
		fieldkit.WithDefaultMode(fieldkit.Mode(c.Mode)),
	}
}

// FieldsOptions converts the settings into bulk-operation options.
func (c Validator) FieldsOptions() []fieldkit.FieldsOption {
	if c.StrictKeys {
		return []fieldkit.FieldsOption{fieldkit.FailUnknown()}
	}
	return nil
}
