// Package cli wires configuration, logging and the HTTP server into the
// portfolio command.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/mifimn/portfolio/internal/config"
	"github.com/mifimn/portfolio/internal/content"
	"github.com/mifimn/portfolio/internal/github"
	"github.com/mifimn/portfolio/internal/logging"
	"github.com/mifimn/portfolio/internal/page"
	"github.com/mifimn/portfolio/internal/server"
)

type options struct {
	port    string
	host    string
	static  string
	verbose bool
}

// NewRootCommand builds the command tree. Running the root command without
// a subcommand serves the site.
func NewRootCommand(stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Serve the Mifimn portfolio site",
		Long: heredoc.Doc(`
			Serve the Mifimn portfolio site.

			The page is rendered on the server. The repository listing is read
			from the GitHub API once per page load, when the browser asks for
			the projects fragment. Interaction effects run from a WebAssembly
			module in the static directory; without it the page stays static.

			Configuration comes from the environment and an optional .env file.
			Flags override the environment.
		`),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := logging.New(stderr, logging.Level(opts.verbose))
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, opts)
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&opts.port, "port", "p", "", "listen port (overrides PORT)")
	root.PersistentFlags().StringVar(&opts.host, "host", "", "listen host (overrides HOST)")
	root.PersistentFlags().StringVar(&opts.static, "static", "", "static file directory (overrides STATIC_DIR)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the site (default)",
		Example: heredoc.Doc(`
			$ portfolio serve --port 3000
			$ GITHUB_TOKEN=... portfolio serve -v
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, opts)
		},
	})
	return root
}

func serve(cmd *cobra.Command, opts *options) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfg.Server.StaticDir); err != nil {
		logger.Warn("static directory unavailable; CV and motion module will 404", "dir", cfg.Server.StaticDir, "err", err)
	}

	client := github.NewClient(cfg.GitHub.APIURL, cfg.GitHub.Token)
	loader := page.NewLoader(client, content.Mifimn.Account)
	logger.Debug("listing source", "url", client.ListURL(content.Mifimn.Account), "authenticated", cfg.GitHub.Token != "")

	srv, err := server.New(ctx, cfg.Server, content.Mifimn, loader)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.port != "" {
		cfg.Server.Port = opts.port
	}
	if opts.host != "" {
		cfg.Server.Host = opts.host
	}
	if opts.static != "" {
		cfg.Server.StaticDir = opts.static
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}
