// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/pdiddy/trainjob-migrate/internal/migrate"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input>",
	Short: "Print the converted manifest without writing files",
	Long: `Inspect converts a YAML file in memory and prints the resulting stream on
stdout. Progress and warnings go to stderr, so the output can be piped into
kubectl or a diff tool.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		conv := migrate.New(afero.NewReadOnlyFs(afero.NewOsFs()), migrationConfig(), newLogEntry(cmd), os.Stderr)
		_, err := conv.PreviewFile(args[0], os.Stdout)
		return err
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
