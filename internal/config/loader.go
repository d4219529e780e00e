package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "MYAPP"

// Keys as they appear in a config file. The environment variable for a key
// is the upper-cased key with the MYAPP_ prefix.
const (
	keyAPIEndpoint = "api_endpoint"
	keyListenAddr  = "listen_addr"
	keyLogLevel    = "log_level"
	keyLogFormat   = "log_format"
)

// DefaultEnvFiles are loaded when Sources.EnvFiles is nil. Later files
// override earlier ones, so .env.local wins over .env.
var DefaultEnvFiles = []string{".env", ".env.local"}

// Sources lists where Load looks for values, lowest precedence last:
// process environment, EnvFiles, ConfigFile, defaults.
type Sources struct {
	// EnvFiles are dotenv files loaded into the process environment.
	// A later file overrides an earlier one; none of them overrides a
	// variable already set in the process. Missing files are skipped. Nil
	// means DefaultEnvFiles; use an empty slice to load none.
	EnvFiles []string

	// ConfigFile is an optional YAML, TOML or JSON file.
	ConfigFile string
}

// Load resolves Settings from src. The API endpoint is required; every other
// setting has a default.
func Load(src Sources) (*Settings, error) {
	envFiles := src.EnvFiles
	if envFiles == nil {
		envFiles = DefaultEnvFiles
	}
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	v.SetDefault(keyListenAddr, DefaultListenAddr)
	v.SetDefault(keyLogLevel, DefaultLogLevel)
	v.SetDefault(keyLogFormat, DefaultLogFormat)

	if src.ConfigFile != "" {
		v.SetConfigFile(src.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", src.ConfigFile, err)
		}
	}

	if !v.IsSet(keyAPIEndpoint) {
		return nil, ErrMissingAPIEndpoint
	}

	s := &Settings{
		Configuration: New(v.GetString(keyAPIEndpoint)),
		ListenAddr:    v.GetString(keyListenAddr),
		LogLevel:      v.GetString(keyLogLevel),
		LogFormat:     v.GetString(keyLogFormat),
		ConfigFile:    v.ConfigFileUsed(),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the settings that have a closed set of values.
func (s *Settings) Validate() error {
	switch s.LogFormat {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("%w: %q (want json or console)", ErrInvalidLogFormat, s.LogFormat)
	}
}

// loadEnvFiles walks files last to first. godotenv.Load never overwrites a
// variable that is already set, so the last file to define a key wins and
// the process environment wins over all files.
func loadEnvFiles(files []string) error {
	for i := len(files) - 1; i >= 0; i-- {
		f := files[i]
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading env file %s: %w", f, err)
		}
	}
	return nil
}
