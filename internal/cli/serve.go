package cli

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/svgbanner/internal/server"
	"github.com/matzehuels/svgbanner/pkg/buildinfo"
)

// serveOpts holds flags that override the [server] config section.
type serveOpts struct {
	addr    string
	profile string
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP banner service",
		Long: `Run the HTTP banner service.

Banners are served from / and from /.netlify/functions/<name>, with query
parameters text, textColor, fontSize, align, bg, format, quality and seed.
Health and Prometheus metrics are served from /healthz and /metrics.`,
		Example: `  svgbanner serve
  svgbanner serve --addr :9000 --profile kuro`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVarP(&opts.profile, "profile", "p", "", "deployment profile (overrides config)")
	_ = cmd.RegisterFlagCompletionFunc("profile", c.completeProfiles)

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts serveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	settings := cfg.Server
	if opts.addr != "" {
		settings.Addr = opts.addr
	}
	if opts.profile != "" {
		settings.Profile = opts.profile
	}
	profile, err := cfg.Profile(settings.Profile)
	if err != nil {
		return err
	}

	h, err := c.newHandler(profile)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	server.NewMetrics(reg).Install()

	logger.Debug("build", buildinfo.Get().KeyVals()...)
	printInfo(c.Err, "Starting banner service")
	printKeyValue(c.Err, "address", settings.Addr)
	printKeyValue(c.Err, "profile", profile.Name)
	printKeyValue(c.Err, "theme", profile.Background)
	printKeyValue(c.Err, "raster", strconv.FormatBool(profile.Raster))
	return server.New(h, settings, reg, logger).Run(ctx)
}
