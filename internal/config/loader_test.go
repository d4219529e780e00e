package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jschnasse/read-env-example/internal/config"
)

// These tests touch the process environment and must not run in parallel.

var managedVars = []string{
	"MYAPP_API_ENDPOINT",
	"MYAPP_LISTEN_ADDR",
	"MYAPP_LOG_LEVEL",
	"MYAPP_LOG_FORMAT",
}

// clearEnv unsets every variable the loader reads and restores them when
// the test ends.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range managedVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func noFiles() config.Sources {
	return config.Sources{EnvFiles: []string{}}
}

// ─── Configuration ─────────────────────────────────────────────────────

func TestNew_KeepsValueVerbatim(t *testing.T) {
	for _, s := range []string{"", " padded ", "https://api.example.com", "<b>&amp;</b>"} {
		assert.Equal(t, s, config.New(s).APIEndpoint)
	}
}

// ─── Load: environment ─────────────────────────────────────────────────

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("MYAPP_API_ENDPOINT", "https://api.example.com")

	s, err := config.Load(noFiles())
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", s.Configuration.APIEndpoint)
	assert.Equal(t, config.DefaultListenAddr, s.ListenAddr)
	assert.Equal(t, config.DefaultLogLevel, s.LogLevel)
	assert.Equal(t, config.DefaultLogFormat, s.LogFormat)
	assert.Empty(t, s.ConfigFile)
}

func TestLoad_MissingEndpoint(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(noFiles())
	assert.ErrorIs(t, err, config.ErrMissingAPIEndpoint)
}

func TestLoad_EmptyEndpointIsAccepted(t *testing.T) {
	clearEnv(t)
	t.Setenv("MYAPP_API_ENDPOINT", "")

	s, err := config.Load(noFiles())
	require.NoError(t, err)
	assert.Equal(t, "", s.Configuration.APIEndpoint)
}

func TestLoad_OptionalSettingsFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("MYAPP_API_ENDPOINT", "x")
	t.Setenv("MYAPP_LISTEN_ADDR", "127.0.0.1:9000")
	t.Setenv("MYAPP_LOG_LEVEL", "debug")
	t.Setenv("MYAPP_LOG_FORMAT", "console")

	s, err := config.Load(noFiles())
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", s.ListenAddr)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "console", s.LogFormat)
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	clearEnv(t)
	t.Setenv("MYAPP_API_ENDPOINT", "x")
	t.Setenv("MYAPP_LOG_FORMAT", "xml")

	_, err := config.Load(noFiles())
	assert.ErrorIs(t, err, config.ErrInvalidLogFormat)
}

// ─── Load: .env files ──────────────────────────────────────────────────

func TestLoad_FromEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := writeFile(t, ".env", "MYAPP_API_ENDPOINT=https://from-dotenv.example\n")

	s, err := config.Load(config.Sources{EnvFiles: []string{envFile}})
	require.NoError(t, err)
	assert.Equal(t, "https://from-dotenv.example", s.Configuration.APIEndpoint)
}

func TestLoad_EnvironmentWinsOverEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("MYAPP_API_ENDPOINT", "from-env")
	envFile := writeFile(t, ".env", "MYAPP_API_ENDPOINT=from-file\n")

	s, err := config.Load(config.Sources{EnvFiles: []string{envFile}})
	require.NoError(t, err)
	assert.Equal(t, "from-env", s.Configuration.APIEndpoint)
}

func TestLoad_LaterEnvFileOverridesEarlier(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	base := filepath.Join(dir, ".env")
	local := filepath.Join(dir, ".env.local")
	require.NoError(t, os.WriteFile(base, []byte("MYAPP_API_ENDPOINT=from-dotenv\nMYAPP_LOG_LEVEL=warn\n"), 0o600))
	require.NoError(t, os.WriteFile(local, []byte("MYAPP_API_ENDPOINT=from-dotenv-local\n"), 0o600))

	s, err := config.Load(config.Sources{EnvFiles: []string{base, local}})
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv-local", s.Configuration.APIEndpoint)
	assert.Equal(t, "warn", s.LogLevel)
}

func TestLoad_EnvironmentWinsOverAllEnvFiles(t *testing.T) {
	clearEnv(t)
	t.Setenv("MYAPP_API_ENDPOINT", "from-env")
	dir := t.TempDir()
	base := filepath.Join(dir, ".env")
	local := filepath.Join(dir, ".env.local")
	require.NoError(t, os.WriteFile(base, []byte("MYAPP_API_ENDPOINT=from-dotenv\n"), 0o600))
	require.NoError(t, os.WriteFile(local, []byte("MYAPP_API_ENDPOINT=from-dotenv-local\n"), 0o600))

	s, err := config.Load(config.Sources{EnvFiles: []string{base, local}})
	require.NoError(t, err)
	assert.Equal(t, "from-env", s.Configuration.APIEndpoint)
}

func TestLoad_MissingEnvFileIsSkipped(t *testing.T) {
	clearEnv(t)
	t.Setenv("MYAPP_API_ENDPOINT", "x")

	s, err := config.Load(config.Sources{EnvFiles: []string{filepath.Join(t.TempDir(), "absent.env")}})
	require.NoError(t, err)
	assert.Equal(t, "x", s.Configuration.APIEndpoint)
}

// ─── Load: config file ─────────────────────────────────────────────────

func TestLoad_FromConfigFile(t *testing.T) {
	clearEnv(t)
	cfgFile := writeFile(t, "readenv.yaml", "api_endpoint: https://from-yaml.example\nlisten_addr: \":9090\"\n")

	s, err := config.Load(config.Sources{EnvFiles: []string{}, ConfigFile: cfgFile})
	require.NoError(t, err)
	assert.Equal(t, "https://from-yaml.example", s.Configuration.APIEndpoint)
	assert.Equal(t, ":9090", s.ListenAddr)
	assert.Equal(t, cfgFile, s.ConfigFile)
}

func TestLoad_EnvironmentWinsOverConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("MYAPP_API_ENDPOINT", "from-env")
	cfgFile := writeFile(t, "readenv.yaml", "api_endpoint: from-yaml\n")

	s, err := config.Load(config.Sources{EnvFiles: []string{}, ConfigFile: cfgFile})
	require.NoError(t, err)
	assert.Equal(t, "from-env", s.Configuration.APIEndpoint)
}

func TestLoad_UnreadableConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("MYAPP_API_ENDPOINT", "x")

	_, err := config.Load(config.Sources{EnvFiles: []string{}, ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}

// ─── Settings ──────────────────────────────────────────────────────────

func TestSettings_UpdateFromFlags(t *testing.T) {
	s := config.Settings{ListenAddr: ":8080", LogLevel: "info", LogFormat: "json"}

	s.UpdateFromFlags("", "debug", "")

	assert.Equal(t, ":8080", s.ListenAddr)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "json", s.LogFormat)
}
