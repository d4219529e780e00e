// Package cli wires the readenv command tree.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jschnasse/read-env-example/internal/config"
	"github.com/jschnasse/read-env-example/internal/logging"
)

// Streams are the writers commands print to, plus the version string
// reported by --version.
type Streams struct {
	Out     io.Writer
	Err     io.Writer
	Version string
}

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	envFiles   []string
	configFile string
	logLevel   string
	logFormat  string
}

// NewRootCommand builds the readenv command. It does not read os.Args, so
// tests drive it with SetArgs.
func NewRootCommand(s Streams) *cobra.Command {
	if s.Out == nil {
		s.Out = os.Stdout
	}
	if s.Err == nil {
		s.Err = os.Stderr
	}
	if s.Version == "" {
		s.Version = "dev"
	}

	flags := &globalFlags{}
	root := &cobra.Command{
		Use:   "readenv",
		Short: "Serve a page showing the configured API endpoint",
		Long: `readenv renders "You have configured <endpoint>" for the endpoint taken
from MYAPP_API_ENDPOINT (process environment, .env, .env.local or a config file).`,
		Version:      s.Version,
		SilenceUsage: true,
	}
	root.SetOut(s.Out)
	root.SetErr(s.Err)

	pf := root.PersistentFlags()
	pf.StringSliceVar(&flags.envFiles, "env-file", nil, "dotenv file to load, repeatable (default .env, .env.local)")
	pf.StringVar(&flags.configFile, "config", "", "config file (yaml, toml or json)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format: json or console")

	root.AddCommand(
		newServeCommand(flags),
		newRenderCommand(flags),
		newProbeCommand(flags),
		newConfigCommand(flags),
	)
	return root
}

// loadSettings resolves settings and applies the global flag overrides.
func (f *globalFlags) loadSettings() (*config.Settings, error) {
	settings, err := config.Load(config.Sources{EnvFiles: f.envFiles, ConfigFile: f.configFile})
	if err != nil {
		return nil, err
	}
	settings.UpdateFromFlags("", f.logLevel, f.logFormat)
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// logger builds the command logger. Logs go to stderr so stdout stays
// reserved for command output.
func (f *globalFlags) logger(cmd *cobra.Command, settings *config.Settings) logging.Logger {
	cfg := logging.DefaultConfig()
	cfg.Output = cmd.ErrOrStderr()
	if settings != nil {
		cfg.Level = settings.LogLevel
		cfg.Format = settings.LogFormat
	}
	if f.logLevel != "" {
		cfg.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Format = f.logFormat
	}
	return logging.New(cfg)
}
