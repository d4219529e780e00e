// Package config holds the Configuration record rendered by the view and
// the loader that resolves it, together with the process settings, from
// the environment, .env files and an optional config file.
package config

import "errors"

// EnvAPIEndpoint is the environment variable carrying the API endpoint.
const EnvAPIEndpoint = "MYAPP_API_ENDPOINT"

var (
	// ErrMissingAPIEndpoint is returned when no source sets the endpoint.
	// An endpoint explicitly set to the empty string is not missing.
	ErrMissingAPIEndpoint = errors.New("config: " + EnvAPIEndpoint + " is not set")

	// ErrInvalidLogFormat is returned for a log format other than json or console.
	ErrInvalidLogFormat = errors.New("config: invalid log format")
)

// Configuration is the record displayed by the view. The endpoint is kept
// verbatim: it is neither trimmed nor validated as a URL.
type Configuration struct {
	APIEndpoint string `json:"apiEndpoint" yaml:"api_endpoint"`
}

// New returns a Configuration for endpoint.
func New(apiEndpoint string) Configuration {
	return Configuration{APIEndpoint: apiEndpoint}
}

// Settings is the resolved process configuration. Its YAML form uses the
// config-file keys, so marshaled Settings can be read back by Load.
type Settings struct {
	Configuration Configuration `yaml:",inline"`

	// ListenAddr is the HTTP listen address for the front-end.
	ListenAddr string `yaml:"listen_addr"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is json or console.
	LogFormat string `yaml:"log_format"`

	// ConfigFile is the config file actually read, if any.
	ConfigFile string `yaml:"-"`
}

// Defaults for the optional settings.
const (
	DefaultListenAddr = ":8080"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "json"
)

// UpdateFromFlags overrides loaded values with command-line flags. Empty
// arguments leave the loaded value untouched.
func (s *Settings) UpdateFromFlags(listenAddr, logLevel, logFormat string) {
	if listenAddr != "" {
		s.ListenAddr = listenAddr
	}
	if logLevel != "" {
		s.LogLevel = logLevel
	}
	if logFormat != "" {
		s.LogFormat = logFormat
	}
}
