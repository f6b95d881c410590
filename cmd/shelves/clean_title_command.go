package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shelves/internal/titleclean"
)

func newCleanTitleCommand(ctx *commandContext) *cobra.Command {
	var releaseTypes []string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "clean-title <title>",
		Short: "Strip soundtrack suffixes from an album title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			cleaner := titleclean.NewFromConfig(cfg, logger)
			cleaned, changed := cleaner.Clean(args[0], releaseTypes)

			if jsonOutput {
				return writeJSON(cmd, map[string]any{
					"title":   args[0],
					"cleaned": cleaned,
					"changed": changed,
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), cleaned)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&releaseTypes, "release-type", []string{"soundtrack"}, "Release types of the album")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of the cleaned title")
	return cmd
}
