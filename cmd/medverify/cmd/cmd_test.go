package cmd_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/medverify/cmd/medverify/cmd"
	"github.com/dmitrymomot/medverify/pkg/config"
	"github.com/dmitrymomot/medverify/pkg/record"
	"github.com/dmitrymomot/medverify/pkg/reference"
	"github.com/dmitrymomot/medverify/pkg/scoring"
)

const providerJSON = `{
	"id": 101,
	"name": "Dr. Asha Rao",
	"phone": "12345",
	"city": "Bangalore",
	"specialty": "FakeSpecialty",
	"registration_no": "MCI10012345",
	"years_practice": 12,
	"clinic_address": "12 MG Road",
	"pincode": 560001
}`

// setEnv pins the configuration so the host environment cannot leak in.
func setEnv(t *testing.T, overrides map[string]string) {
	t.Helper()

	env := map[string]string{
		"APP_ENV":               "test",
		"APP_SERVICE":           "medverify",
		"LOG_LEVEL":             "info",
		"LOG_FORMAT":            "text",
		"MEDVERIFY_TABLES_PATH": "",
	}
	for k, v := range overrides {
		env[k] = v
	}
	for k, v := range env {
		t.Setenv(k, v)
	}
	config.ResetCache()
}

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	root := cmd.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)

	err = root.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidate(t *testing.T) {
	t.Run("reads stdin and prints result", func(t *testing.T) {
		setEnv(t, nil)

		stdout, stderr, err := run(t, providerJSON, "validate")
		require.NoError(t, err)

		var res scoring.Result
		require.NoError(t, json.Unmarshal([]byte(stdout), &res))
		assert.Equal(t, 60, res.Confidence)
		assert.Equal(t, []string{
			"Invalid phone format",
			"Specialty 'FakeSpecialty' not in approved list",
		}, res.Issues)
		assert.Contains(t, stderr, "record scored")
		assert.Contains(t, stderr, "record_id=101")
		assert.Contains(t, stderr, "run_id=")
	})

	t.Run("reads file", func(t *testing.T) {
		setEnv(t, nil)
		path := writeFile(t, "record.json", providerJSON)

		stdout, _, err := run(t, "", "validate", "--file", path)
		require.NoError(t, err)
		assert.Contains(t, stdout, `"confidence": 60`)
	})

	t.Run("gate failure is not a process error", func(t *testing.T) {
		setEnv(t, nil)

		stdout, _, err := run(t, `{"id": 1}`, "validate")
		require.NoError(t, err)

		var res scoring.Result
		require.NoError(t, json.Unmarshal([]byte(stdout), &res))
		assert.Equal(t, 0, res.Confidence)
		assert.Len(t, res.Issues, 1)
		assert.True(t, strings.HasPrefix(res.Issues[0], "Missing required fields: name, phone"))
	})

	t.Run("non-object input", func(t *testing.T) {
		setEnv(t, nil)

		_, _, err := run(t, `[1, 2, 3]`, "validate")
		assert.ErrorIs(t, err, record.ErrNotObject)
	})

	t.Run("missing file", func(t *testing.T) {
		setEnv(t, nil)

		_, _, err := run(t, "", "validate", "-f", filepath.Join(t.TempDir(), "absent.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("tables from environment", func(t *testing.T) {
		path := writeFile(t, "tables.yaml", "specialties: [FakeSpecialty]\n")
		setEnv(t, map[string]string{"MEDVERIFY_TABLES_PATH": path})

		stdout, _, err := run(t, providerJSON, "validate")
		require.NoError(t, err)
		assert.Contains(t, stdout, `"confidence": 80`)
	})

	t.Run("flag overrides environment", func(t *testing.T) {
		envPath := writeFile(t, "env.yaml", "specialties: [FakeSpecialty]\n")
		flagPath := writeFile(t, "flag.yaml", "specialties: [Cardiology]\n")
		setEnv(t, map[string]string{"MEDVERIFY_TABLES_PATH": envPath})

		stdout, _, err := run(t, providerJSON, "validate", "--tables", flagPath)
		require.NoError(t, err)
		assert.Contains(t, stdout, `"confidence": 60`)
	})

	t.Run("invalid tables", func(t *testing.T) {
		path := writeFile(t, "tables.yaml", "patterns:\n  pincode: '[1-9'\n")
		setEnv(t, nil)

		_, stderr, err := run(t, providerJSON, "validate", "--tables", path)
		assert.ErrorIs(t, err, reference.ErrInvalidTables)
		assert.Contains(t, stderr, "failed to load reference tables")
	})

	t.Run("metrics dump", func(t *testing.T) {
		setEnv(t, nil)

		_, stderr, err := run(t, providerJSON, "validate", "--metrics")
		require.NoError(t, err)
		assert.Contains(t, stderr, `medverify_validations_total{outcome="flagged"} 1`)
		assert.Contains(t, stderr, `medverify_check_failures_total{check="phone"} 1`)
		assert.Contains(t, stderr, `medverify_check_failures_total{check="specialty"} 1`)
	})

	t.Run("engine debug lines carry the run id", func(t *testing.T) {
		setEnv(t, map[string]string{"LOG_LEVEL": "debug"})

		_, stderr, err := run(t, providerJSON, "validate")
		require.NoError(t, err)

		var line string
		for _, l := range strings.Split(stderr, "\n") {
			if strings.Contains(l, "record validated") {
				line = l
			}
		}
		require.NotEmpty(t, line)
		assert.Contains(t, line, "component=scoring")
		assert.Contains(t, line, "run_id=")
	})

	t.Run("json logs in production", func(t *testing.T) {
		setEnv(t, map[string]string{"APP_ENV": "production", "LOG_FORMAT": "json"})

		_, stderr, err := run(t, providerJSON, "validate")
		require.NoError(t, err)

		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(stderr)), &entry))
		assert.Equal(t, "record scored", entry["msg"])
		assert.Equal(t, "production", entry["env"])
		assert.Equal(t, "medverify", entry["service"])
		assert.NotEmpty(t, entry["run_id"])
	})
}

func TestInvalidConfig(t *testing.T) {
	setEnv(t, map[string]string{"LOG_LEVEL": "loud"})

	_, _, err := run(t, providerJSON, "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestTables(t *testing.T) {
	t.Run("prints built-in tables", func(t *testing.T) {
		setEnv(t, nil)

		stdout, _, err := run(t, "", "tables")
		require.NoError(t, err)

		var doc reference.Document
		require.NoError(t, yaml.Unmarshal([]byte(stdout), &doc))
		assert.Equal(t, reference.Default().Document(), doc)
	})

	t.Run("output loads back as tables", func(t *testing.T) {
		setEnv(t, nil)

		stdout, _, err := run(t, "", "tables")
		require.NoError(t, err)

		tables, err := reference.Load(strings.NewReader(stdout))
		require.NoError(t, err)
		assert.Equal(t, reference.Default().Specialties(), tables.Specialties())
	})

	t.Run("prints override", func(t *testing.T) {
		path := writeFile(t, "tables.yaml", "specialties: [Siddha]\n")
		setEnv(t, nil)

		stdout, _, err := run(t, "", "tables", "--tables", path)
		require.NoError(t, err)
		assert.Contains(t, stdout, "- Siddha")
		assert.NotContains(t, stdout, "Cardiology")
	})

	t.Run("rejects arguments", func(t *testing.T) {
		setEnv(t, nil)

		_, _, err := run(t, "", "tables", "extra")
		assert.Error(t, err)
	})
}

func TestCity(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"Banglore", "Bangalore"},
		{"banglore", "Bangalore"},
		{"Bangalore", "Bangalore"},
		{"560001", "Bangalore"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			setEnv(t, nil)

			stdout, _, err := run(t, "", "city", tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", stdout)
		})
	}

	t.Run("unknown city", func(t *testing.T) {
		setEnv(t, nil)

		_, _, err := run(t, "", "city", "Atlantis")
		assert.ErrorIs(t, err, cmd.ErrCityNotFound)
	})

	t.Run("unknown pincode", func(t *testing.T) {
		setEnv(t, nil)

		_, _, err := run(t, "", "city", "999999")
		assert.ErrorIs(t, err, cmd.ErrCityNotFound)
	})

	t.Run("requires one argument", func(t *testing.T) {
		setEnv(t, nil)

		_, _, err := run(t, "", "city")
		assert.Error(t, err)
	})
}
