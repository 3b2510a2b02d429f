package cli

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/svgbanner/pkg/config"
	"github.com/matzehuels/svgbanner/pkg/function"
)

// renderOpts holds render command flags. Only flags the user set are
// passed to the handler, so unset flags keep the profile defaults.
type renderOpts struct {
	profile   string
	text      string
	textColor string
	fontSize  int
	align     string
	bg        string
	format    string
	quality   int
	seed      uint64
	output    string
}

// flagParams maps render flags to query parameter names.
var flagParams = map[string]string{
	"text":       function.ParamText,
	"text-color": function.ParamTextColor,
	"font-size":  function.ParamFontSize,
	"align":      function.ParamAlign,
	"bg":         function.ParamBg,
	"format":     function.ParamFormat,
	"quality":    function.ParamQuality,
	"seed":       function.ParamSeed,
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one banner to a file or stdout",
		Long: `Render one banner through the same handler the service uses.

Text is split into lines at "|" and {braces} mark bold runs. Without
--output the image is written to stdout.`,
		Example: `  svgbanner render --text "Hello {World}" -o banner.svg
  svgbanner render --profile kuro --format png --seed 7 -o banner.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runRender(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.profile, "profile", "p", "", "deployment profile (default: the configured server profile)")
	f.StringVarP(&opts.text, "text", "t", "", "banner text")
	f.StringVar(&opts.textColor, "text-color", "", "text color")
	f.IntVar(&opts.fontSize, "font-size", 0, "font size in pixels")
	f.StringVar(&opts.align, "align", "", "alignment: left, center or right")
	f.StringVar(&opts.bg, "bg", "", "background theme (see 'svgbanner themes')")
	f.StringVarP(&opts.format, "format", "f", "", "output format: svg, png or webp")
	f.IntVar(&opts.quality, "quality", 0, "raster quality (10-100)")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed for a reproducible background")
	f.StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	_ = cmd.RegisterFlagCompletionFunc("profile", c.completeProfiles)
	_ = cmd.RegisterFlagCompletionFunc("bg", completeThemes)
	_ = cmd.RegisterFlagCompletionFunc("align", completeAlign)
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	name := opts.profile
	if name == "" {
		name = cfg.Server.Profile
	}
	profile, err := cfg.Profile(name)
	if err != nil {
		return err
	}

	q := queryFromFlags(cmd, opts)
	if f, ok := q[function.ParamFormat]; ok && f != config.FormatSVG && !profile.Raster {
		printWarning(c.Err, "profile %s has no raster output, rendering svg", profile.Name)
	}

	h, err := c.newHandler(profile)
	if err != nil {
		return err
	}

	var spinner *Spinner
	if opts.output != "" {
		spinner = newSpinner(ctx, c.Err, "Rendering banner...")
		spinner.Start()
	}
	resp := h.Handle(ctx, function.Event{QueryStringParameters: q})
	if spinner != nil {
		spinner.Stop()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("render failed with status %d", resp.StatusCode)
	}

	data := []byte(resp.Body)
	if resp.IsBase64Encoded {
		if data, err = base64.StdEncoding.DecodeString(resp.Body); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}

	if opts.output == "" {
		_, err := c.Out.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}

	prog.done("rendered banner", "profile", profile.Name, "content_type", resp.Headers[function.HeaderContentType], "bytes", len(data))
	printSuccess(c.Err, "Banner rendered")
	printFile(c.Err, opts.output)
	return nil
}

// queryFromFlags builds the query parameters from the flags the user set.
func queryFromFlags(cmd *cobra.Command, opts renderOpts) map[string]string {
	values := map[string]string{
		"text":       opts.text,
		"text-color": opts.textColor,
		"font-size":  strconv.Itoa(opts.fontSize),
		"align":      opts.align,
		"bg":         opts.bg,
		"format":     opts.format,
		"quality":    strconv.Itoa(opts.quality),
		"seed":       strconv.FormatUint(opts.seed, 10),
	}
	q := make(map[string]string)
	for flag, param := range flagParams {
		if cmd.Flags().Changed(flag) {
			q[param] = values[flag]
		}
	}
	return q
}
