// Package cli implements colorctl, a terminal chooser driving the lookup
// service through the same display model as the web page.
package cli

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"color-chooser/internal/client"
	"color-chooser/internal/colors"
	"color-chooser/internal/config"
	"color-chooser/internal/ui"
)

// Execute runs colorctl and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	api     string
	retries int
	backoff time.Duration
	timeout time.Duration
	debug   bool
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "colorctl",
		Short:         "Browse and pick colors from the lookup service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			ui.SetLevel(ui.ParseLevel(cfg.Env.LogLevel))
			ui.SetDebug(opts.debug || cfg.Env.Debug)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.api, "api", cfg.ProxyAPIURL+cfg.APIPrefix, "lookup service base URL")
	cmd.PersistentFlags().IntVar(&opts.retries, "retries", 1, "attempts per request (transport errors and 5xx only)")
	cmd.PersistentFlags().DurationVar(&opts.backoff, "backoff", 200*time.Millisecond, "initial retry backoff")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", time.Duration(cfg.TimeoutSec)*time.Second, "per-request timeout")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "verbose logging")

	cmd.AddCommand(listCmd(opts), getCmd(opts), pickCmd(opts))
	return cmd
}

func (o *options) client() (*client.Client, error) {
	c, err := client.New(o.api,
		client.WithRetry(o.retries, o.backoff),
		client.WithHTTPClient(&http.Client{Timeout: o.timeout}),
	)
	if err != nil {
		return nil, err
	}
	ui.LogStatus("debug", "Using lookup service at "+o.api)
	return c, nil
}

// describe prints one record as "swatch name hex rgb".
func describe(w io.Writer, name, hex string) {
	rgb := "invalid"
	if c, err := colors.ParseHex(hex); err == nil {
		rgb = c.String()
	}
	fmt.Fprintf(w, "%s %s %s %s\n", ui.Swatch(hex), ui.Tint(hex, name), hex, rgb)
}
