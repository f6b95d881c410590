package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"shelves/internal/shelf"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List known shelves",
		Args:  cobra.NoArgs,
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

			names := ctx.newRegistry(store, logger).List(cmd.Context())
			sort.Strings(names)

			if jsonOutput {
				return writeJSON(cmd, names)
			}

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				rows = append(rows, []string{name})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Shelf"},
				rows,
				[]columnAlignment{alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newAddCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a shelf to the known list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			valid, message := shelf.ValidateName(name)
			if !valid {
				return fmt.Errorf("invalid shelf name %q: %s", name, message)
			}
			if message != "" && !force {
				return fmt.Errorf("shelf name %q: %s (use --force to add anyway)", name, message)
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			ctx.newRegistry(store, logger).Add(cmd.Context(), name)
			fmt.Fprintf(cmd.OutOrStdout(), "Added shelf %q\n", name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Add the shelf even when validation warns")
	return cmd
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a shelf from the known list",
		Args:  cobra.ExactArgs(1),
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

			ctx.newRegistry(store, logger).Remove(cmd.Context(), args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Removed shelf %q\n", args[0])
			return nil
		},
	}
}
