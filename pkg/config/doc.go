// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` in the working directory is loaded once, if present.
//     Additional files can be loaded explicitly with LoadEnv.
//   - Environment variables are parsed into any struct using `env` tags.
//   - Each configuration type is parsed once per process and cached by value.
//
// # Usage
//
//	var app config.App
//	if err := config.Load(&app); err != nil {
//	    return err
//	}
//
// App describes the settings of the medverify CLI. Library packages never read
// the environment; only the command wires configuration into them.
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`   – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile`  – an explicitly requested .env file could not be read.
//   - `ErrConfigNotLoaded` – the cache did not hold the requested type after loading.
//   - `ErrNilPointer`      – nil pointer passed to Load/MustLoad.
//
// # Testing Helpers
//
// ResetCache clears the cache so tests can reload a type after changing the
// environment.
package config
