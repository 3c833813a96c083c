package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"color-chooser/internal/client"
	"color-chooser/internal/ui"
)

func listCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every color with a swatch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			records, err := c.List(cmd.Context())
			if err != nil {
				ui.LogStatus("error", "Error fetching colors: "+err.Error())
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No colors.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.ColorTable(records))
			return nil
		},
	}
}

func getCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Look up one color by exact name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			rec, err := c.Get(cmd.Context(), args[0])
			if errors.Is(err, client.ErrNotFound) {
				ui.LogStatus("warn", fmt.Sprintf("Color not found: %s", args[0]))
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if err != nil {
				ui.LogStatus("error", "Failed to fetch color: "+err.Error())
				return err
			}

			describe(cmd.OutOrStdout(), rec.Name, rec.Hex)
			return nil
		},
	}
}

func pickCmd(opts *options) *cobra.Command {
	var cache bool

	cmd := &cobra.Command{
		Use:   "pick <name>...",
		Short: "Load the colors, then select each name in turn",
		Long: "pick mirrors the web page: the display starts at the first listed color and\n" +
			"changes only when a lookup succeeds. Failed lookups leave it unchanged.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			var chooserOpts []client.ChooserOption
			if cache {
				chooserOpts = append(chooserOpts, client.WithCache())
			}
			ch := client.NewChooser(c, chooserOpts...)
			out := cmd.OutOrStdout()

			if err := ch.Load(cmd.Context()); err != nil {
				ui.LogStatus("error", "Error fetching colors: "+err.Error())
				fmt.Fprintln(out, "Loading colors...")
				return err
			}
			if !ch.Ready() {
				fmt.Fprintln(out, "Loading colors...")
				return errors.New("lookup service has no colors")
			}

			fmt.Fprintf(out, "Current color: %s\n", ch.Current())
			for _, name := range args {
				rec, err := ch.Select(cmd.Context(), name)
				switch {
				case errors.Is(err, client.ErrNotFound):
					fmt.Fprintf(out, "Color not found: %s\n", name)
				case err != nil:
					ui.LogStatus("warn", fmt.Sprintf("Lookup for %s failed: %v", name, err))
					fmt.Fprintf(out, "Lookup failed: %s\n", name)
				default:
					describe(out, rec.Name, rec.Hex)
				}
				fmt.Fprintf(out, "Current color: %s\n", ch.Current())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&cache, "cache", false, "remember successful lookups")
	return cmd
}
