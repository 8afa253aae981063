package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores one parsed copy per configuration type.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = newConfigCache()

	defaultEnvLoaded sync.Once
)

func newConfigCache() *configCache {
	return &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

// LoadEnv loads the given .env files into the process environment.
// Variables that are already set are not overridden.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v. Each configuration type is parsed
// once; later calls for the same type copy the cached value.
//
// Example:
//
//	type Tables struct {
//		Path string `env:"MEDVERIFY_TABLES_PATH"`
//	}
//
//	var cfg Tables
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The default .env is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	if cached, ok := globalCache.get(typeName); ok {
		*v = cached.(T)
		return nil
	}

	var err error
	globalCache.once(typeName).Do(func() {
		if parseErr := env.Parse(v); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			return
		}
		globalCache.set(typeName, *v)
	})
	if err != nil {
		globalCache.forget(typeName)
		return err
	}

	if cached, ok := globalCache.get(typeName); ok {
		*v = cached.(T)
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ResetCache drops every cached configuration. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
}

func (c *configCache) get(name string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[name]
	return v, ok
}

func (c *configCache) set(name string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[name] = v
}

func (c *configCache) once(name string) *sync.Once {
	c.mu.Lock()
	defer c.mu.Unlock()
	o, ok := c.onces[name]
	if !ok {
		o = new(sync.Once)
		c.onces[name] = o
	}
	return o
}

// forget drops the Once of a failed parse so a fixed environment can be retried.
func (c *configCache) forget(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.onces, name)
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
