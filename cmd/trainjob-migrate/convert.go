// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/trainjob-migrate/internal/migrate"
	"github.com/pdiddy/trainjob-migrate/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input] [output]",
	Short: "Convert PyTorchJob manifests to TrainJob manifests",
	Long: `Convert rewrites every PyTorchJob in a YAML file as a TrainJob and writes
the resulting multi-document stream. Documents of other kinds are copied
unchanged.

Single file:  trainjob-migrate convert job.yaml [job-v2.yaml]
Directory:    trainjob-migrate convert --directory v1-jobs/ --output-dir v2-jobs/

Without an output path, the output name is the input name with the output
suffix ("-v2") inserted before the extension. In directory mode every
.yaml and .yml file directly inside the directory is converted into the
output directory (default: <directory>/converted). A PyTorchJob that cannot
be translated is reported and copied unchanged; its siblings are still
converted.

A non-zero exit status with output files present means at least one
PyTorchJob could not be translated: those files were still written and
contain the failed PyTorchJobs unconverted, next to the converted
documents. Check the logged errors before applying them.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("directory")
	outDir, _ := cmd.Flags().GetString("output-dir")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	report, _ := cmd.Flags().GetBool("report")

	if dir == "" && len(args) == 0 {
		return errors.New("provide an input file (convert job.yaml [out.yaml]) or a directory (convert --directory v1-jobs/)")
	}
	if dir != "" && len(args) > 0 {
		return errors.New("positional arguments cannot be combined with --directory")
	}
	if dir == "" && outDir != "" {
		return errors.New("--output-dir requires --directory; pass the output file as the second argument")
	}
	cmd.SilenceUsage = true

	cfg := migrationConfig()
	cfg.DryRun = dryRun
	log := newLogEntry(cmd)
	conv := migrate.New(afero.NewOsFs(), cfg, log, os.Stdout)

	if dir != "" {
		return convertDirectory(conv, dir, outDir, dryRun, report)
	}

	var out string
	if len(args) == 2 {
		out = args[1]
	}
	if _, err := conv.ConvertSingle(args[0], out); err != nil {
		return err
	}
	if !dryRun {
		fmt.Fprintln(os.Stdout, "\nConversion completed successfully!")
	}
	return nil
}

func convertDirectory(conv *migrate.Converter, dir, outDir string, dryRun, report bool) error {
	result, err := conv.ConvertDir(dir, outDir)
	if err != nil {
		return err
	}
	if report && !dryRun {
		fmt.Fprintln(os.Stdout)
		migrate.WriteReport(os.Stdout, result)
	}
	if result.HasFailures() {
		return fmt.Errorf("%d of %d file(s) not fully converted", result.Failed+result.Partial, result.Total())
	}
	return nil
}

func init() {
	def := types.DefaultMigrationConfig()

	convertCmd.Flags().StringP("directory", "d", "", "directory containing PyTorchJob files")
	convertCmd.Flags().StringP("output-dir", "o", "", "output directory for converted files (default: <directory>/converted)")
	convertCmd.Flags().Bool("dry-run", false, "show planned conversions without writing files")
	convertCmd.Flags().Bool("report", false, "print a per-file table after a directory conversion")
	convertCmd.Flags().String("output-suffix", def.OutputSuffix, "suffix inserted before the extension of output file names")
	convertCmd.Flags().StringSlice("extensions", def.Extensions, "file extensions picked up in directory mode")

	_ = viper.BindPFlag("output-suffix", convertCmd.Flags().Lookup("output-suffix"))
	_ = viper.BindPFlag("extensions", convertCmd.Flags().Lookup("extensions"))

	rootCmd.AddCommand(convertCmd)
}
