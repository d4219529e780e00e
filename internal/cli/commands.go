package cli

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/jschnasse/read-env-example/internal/config"
	"github.com/jschnasse/read-env-example/internal/logging"
	"github.com/jschnasse/read-env-example/internal/probe"
	"github.com/jschnasse/read-env-example/internal/server"
	"github.com/jschnasse/read-env-example/internal/view"
)

func newServeCommand(flags *globalFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page over HTTP",
		Example: `  MYAPP_API_ENDPOINT=https://api.example.com readenv serve
  readenv serve --addr 127.0.0.1:9000 --env-file prod.env`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := flags.loadSettings()
			if err != nil {
				return err
			}
			settings.UpdateFromFlags(addr, "", "")

			logger := flags.logger(cmd, settings)
			logger.Info("starting",
				logging.F("addr", settings.ListenAddr),
				logging.F("api_endpoint", settings.Configuration.APIEndpoint))

			cfg := server.DefaultConfig()
			cfg.ListenAddr = settings.ListenAddr
			cfg.Logger = logger
			s, err := server.NewServer(cfg, settings.Configuration)
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}
			return s.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides MYAPP_LISTEN_ADDR)")
	return cmd
}

func newRenderCommand(flags *globalFlags) *cobra.Command {
	var (
		endpoint string
		document bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the rendered view",
		Long: `Render prints the HTML of the view. With --api-endpoint the given value is
rendered and the environment is not consulted.`,
		Example: `  readenv render --api-endpoint https://api.example.com
  readenv render --document > index.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg config.Configuration
			if cmd.Flags().Changed("api-endpoint") {
				cfg = config.New(endpoint)
			} else {
				settings, err := flags.loadSettings()
				if err != nil {
					return err
				}
				cfg = settings.Configuration
			}

			out := cmd.OutOrStdout()
			render := view.Render
			if document {
				render = view.RenderDocument
			}
			if err := render(out, cfg); err != nil {
				return fmt.Errorf("rendering view: %w", err)
			}
			_, err := fmt.Fprintln(out)
			return err
		},
	}
	cmd.Flags().StringVar(&endpoint, "api-endpoint", "", "endpoint to render instead of the configured one")
	cmd.Flags().BoolVar(&document, "document", false, "render a complete HTML document")
	return cmd
}

func newProbeCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "probe URL",
		Short:   "Fetch a served page and print the endpoint it displays",
		Example: `  readenv probe http://localhost:8080/`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := probe.NewClient(flags.logger(cmd, nil), nil)
			res, err := client.Fetch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.APIEndpoint)
			return err
		},
	}
}

func newConfigCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := flags.loadSettings()
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(settings)
			if err != nil {
				return fmt.Errorf("encoding settings: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
