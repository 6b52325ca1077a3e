package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu     sync.RWMutex
	loaded = make(map[string]any)

	defaultEnvLoaded sync.Once
)

// Load populates the configuration struct from environment variables based
// on its `env` field tags. The default .env file is loaded once, if present,
// before the first parse. Each configuration type is parsed once per
// process; later calls for the same type return the cached copy, so every
// consumer of e.g. pgstore.Config sees the same values.
//
// Example:
//
//	var cfg pgstore.Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeName[T]()

	mu.RLock()
	cached, ok := loaded[key]
	mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	mu.Lock()
	defer mu.Unlock()
	if cached, ok := loaded[key]; ok {
		// Another goroutine raced the parse; keep the first result.
		*v = cached.(T)
		return nil
	}
	loaded[key] = *v
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Useful for configurations the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func typeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		// Interface types have no concrete reflect.Type for the zero value.
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
