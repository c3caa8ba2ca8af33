// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package migrate

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/pdiddy/trainjob-migrate/pkg/types"
)

// DefaultOutputDir is the subdirectory of the input directory used when no
// output directory is given.
const DefaultOutputDir = "converted"

// BatchResult holds the outcome of a directory conversion run.
type BatchResult struct {
	Converted int
	Partial   int
	Skipped   int
	Failed    int

	OutputDir string
	Files     []FileResult
}

// Total returns the number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Partial + r.Skipped + r.Failed
}

// HasFailures reports whether any file, or any document within a file,
// failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0 || r.Partial > 0
}

// OutputName derives the output file name from an input path by inserting
// suffix before the extension: "job.yaml" becomes "job-v2.yaml".
func OutputName(input, suffix string) string {
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + suffix + ext
}

// FindInputs lists the regular files directly inside dir whose extension is
// one of exts (compared case-insensitively). Files are grouped by extension
// in the order of exts and sorted by name within each group.
func FindInputs(fs afero.Fs, dir string, exts []string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []string
	for _, ext := range exts {
		var group []string
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ext) {
				continue
			}
			group = append(group, filepath.Join(dir, e.Name()))
		}
		sort.Strings(group)
		files = append(files, group...)
	}
	return files, nil
}

// ConvertDir converts every matching file in inDir into outDir. An empty
// outDir means inDir/converted. A missing inDir or an empty match set is
// returned as an error before any file is converted.
func (c *Converter) ConvertDir(inDir, outDir string) (BatchResult, error) {
	var result BatchResult

	isDir, err := afero.IsDir(c.fs, inDir)
	if err != nil || !isDir {
		return result, fmt.Errorf("%w: directory %s", ErrInputNotFound, inDir)
	}
	if outDir == "" {
		outDir = filepath.Join(inDir, DefaultOutputDir)
	}
	result.OutputDir = outDir

	files, err := FindInputs(c.fs, inDir, c.cfg.Extensions)
	if err != nil {
		return result, err
	}
	if len(files) == 0 {
		return result, fmt.Errorf("%w in %s (extensions: %s)", ErrNoInputs, inDir, strings.Join(c.cfg.Extensions, ", "))
	}

	fmt.Fprintf(c.out, "Found %d YAML files to process...\n", len(files))

	if !c.cfg.DryRun {
		if err := c.fs.MkdirAll(outDir, 0o755); err != nil {
			return result, fmt.Errorf("creating output directory: %w", err)
		}
	}

	for _, in := range files {
		out := filepath.Join(outDir, OutputName(in, c.cfg.OutputSuffix))
		fr := c.ConvertFile(in, out)
		switch fr.Status {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionPartial:
			result.Partial++
		case types.ConversionNone:
			result.Skipped++
		case types.ConversionFailed:
			result.Failed++
		}
		result.Files = append(result.Files, fr)
	}

	if !c.cfg.DryRun {
		fmt.Fprintf(c.out, "\nBatch summary: %d converted, %d partial, %d failed (total: %d)\n",
			result.Converted, result.Partial, result.Failed, result.Total())
		fmt.Fprintf(c.out, "Successfully converted %d/%d files\n", result.Converted, result.Total())
		fmt.Fprintf(c.out, "Output directory: %s\n", outDir)
	}
	return result, nil
}
