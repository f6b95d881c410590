package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type classifyResult struct {
	Path  string `json:"path"`
	Shelf string `json:"shelf"`
}

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "classify <path>...",
		Short: "Infer the shelf for one or more file paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			reg := ctx.newRegistry(store, logger)
			classifier := ctx.newClassifier(reg, logger)

			results := make([]classifyResult, 0, len(args))
			for _, path := range args {
				results = append(results, classifyResult{
					Path:  path,
					Shelf: classifier.Classify(path),
				})
			}

			if jsonOutput {
				return writeJSON(cmd, results)
			}

			rows := make([][]string, 0, len(results))
			for _, result := range results {
				rows = append(rows, []string{result.Path, result.Shelf})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Path", "Shelf"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}
