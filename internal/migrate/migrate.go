// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package migrate drives PyTorchJob to TrainJob conversion over files and
// directories. It reads multi-document YAML, hands every PyTorchJob to the
// translator, passes other documents through unchanged, and writes the
// resulting stream in input order.
//
// Failures are isolated per document: a PyTorchJob that cannot be
// translated is reported and kept verbatim while its siblings are still
// converted. Path problems (missing input, no matching files) are returned
// as errors before any conversion starts.
package migrate

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/pdiddy/trainjob-migrate/internal/manifest"
	"github.com/pdiddy/trainjob-migrate/internal/translate"
	"github.com/pdiddy/trainjob-migrate/pkg/types"
)

var (
	// ErrInputNotFound is returned when the input file or directory does not exist.
	ErrInputNotFound = errors.New("input does not exist")

	// ErrNoInputs is returned when directory mode finds no matching files.
	ErrNoInputs = errors.New("no matching files found")
)

// DocumentStats counts what happened to the documents of one file.
type DocumentStats struct {
	Translated    int
	PassedThrough int
	Failed        int
}

// FileResult holds the outcome of converting one input file.
type FileResult struct {
	Input     string
	Output    string
	Status    types.ConversionStatus
	Documents DocumentStats

	// Err is set for partial and failed conversions.
	Err error
}

// Converter converts YAML files on fs. Progress lines go to out, events
// with file and document context go to log.
type Converter struct {
	fs  afero.Fs
	cfg types.MigrationConfig
	log logrus.FieldLogger
	out io.Writer
}

// New returns a Converter. Zero-valued settings in cfg fall back to
// types.DefaultMigrationConfig.
func New(fs afero.Fs, cfg types.MigrationConfig, log logrus.FieldLogger, out io.Writer) *Converter {
	def := types.DefaultMigrationConfig()
	cfg.Runtime = cfg.Runtime.WithDefaults()
	if cfg.OutputSuffix == "" {
		cfg.OutputSuffix = def.OutputSuffix
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = def.Extensions
	}
	return &Converter{fs: fs, cfg: cfg, log: log, out: out}
}

// ConvertDocuments translates every PyTorchJob in docs and returns the new
// stream. Documents of other kinds are returned unchanged. A PyTorchJob that
// fails translation is kept unchanged too, and its error is collected in
// the returned error; the remaining documents are still processed.
func (c *Converter) ConvertDocuments(source string, docs []any) ([]any, DocumentStats, error) {
	var (
		stats DocumentStats
		errs  *multierror.Error
	)
	out := make([]any, 0, len(docs))

	for i, doc := range docs {
		kind := manifest.Kind(doc)
		name := manifest.Name(doc)
		log := c.log.WithFields(logrus.Fields{
			"file":     source,
			"document": i + 1,
			"kind":     kind,
		})

		m, ok := manifest.AsDocument(doc)
		if !ok || kind != types.LegacyKind {
			if kind == "" {
				kind = "Unknown"
			}
			fmt.Fprintf(c.out, "Skipping non-%s: %s\n", types.LegacyKind, kind)
			stats.PassedThrough++
			out = append(out, doc)
			continue
		}

		fmt.Fprintf(c.out, "Converting %s: %s\n", types.LegacyKind, name)
		res, err := translate.Translate(m, c.cfg.Runtime)
		if err != nil {
			log.WithField("name", name).WithError(err).Error("translation failed, keeping original document")
			errs = multierror.Append(errs, fmt.Errorf("document %d (%s): %w", i+1, name, err))
			stats.Failed++
			out = append(out, doc)
			continue
		}

		for _, w := range res.Warnings {
			log.WithField("name", name).Warn(w)
		}
		s := res.Summary
		fmt.Fprintf(c.out, "  %s: %d, %s: %d → numNodes: %d\n",
			types.RoleMaster, s.MasterReplicas, types.RoleWorker, s.WorkerReplicas, s.NumNodes)
		fmt.Fprintf(c.out, "  Runtime: %s\n", s.Runtime)

		stats.Translated++
		out = append(out, res.Document)
	}

	return out, stats, errs.ErrorOrNil()
}

// ConvertFile converts the file at in and writes the result to out. In dry
// run mode nothing is read or written and the status is ConversionNone.
func (c *Converter) ConvertFile(in, out string) FileResult {
	result := FileResult{Input: in, Output: out}

	if c.cfg.DryRun {
		fmt.Fprintf(c.out, "Would convert: %s → %s\n", in, out)
		result.Status = types.ConversionNone
		return result
	}

	fail := func(err error) FileResult {
		c.log.WithField("file", in).WithError(err).Error("conversion failed")
		fmt.Fprintf(c.out, "failed:  %s (%v)\n", in, err)
		result.Status = types.ConversionFailed
		result.Err = err
		return result
	}

	data, err := afero.ReadFile(c.fs, in)
	if err != nil {
		return fail(fmt.Errorf("reading %s: %w", in, err))
	}
	docs, err := manifest.DecodeBytes(data)
	if err != nil {
		return fail(fmt.Errorf("%s: %w", in, err))
	}

	converted, stats, convErr := c.ConvertDocuments(in, docs)
	result.Documents = stats

	encoded, err := manifest.EncodeBytes(converted)
	if err != nil {
		return fail(err)
	}
	if err := c.fs.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fail(fmt.Errorf("creating output directory: %w", err))
	}
	if err := afero.WriteFile(c.fs, out, encoded, 0o644); err != nil {
		return fail(fmt.Errorf("writing %s: %w", out, err))
	}

	if convErr != nil {
		fmt.Fprintf(c.out, "partial: %s → %s (%d document(s) failed)\n", in, out, stats.Failed)
		result.Status = types.ConversionPartial
		result.Err = convErr
		return result
	}

	fmt.Fprintf(c.out, "converted: %s → %s\n", in, out)
	result.Status = types.ConversionDone
	return result
}

// ConvertSingle converts one file. An empty out writes next to the input
// using the configured output suffix. It returns an error when the input is
// missing or when any document could not be converted.
func (c *Converter) ConvertSingle(in, out string) (FileResult, error) {
	exists, err := afero.Exists(c.fs, in)
	if err != nil {
		return FileResult{}, fmt.Errorf("checking %s: %w", in, err)
	}
	if !exists {
		return FileResult{}, fmt.Errorf("%w: %s", ErrInputNotFound, in)
	}
	if isDir, _ := afero.IsDir(c.fs, in); isDir {
		return FileResult{}, fmt.Errorf("%s is a directory: use directory mode", in)
	}
	if out == "" {
		out = filepath.Join(filepath.Dir(in), OutputName(in, c.cfg.OutputSuffix))
	}

	result := c.ConvertFile(in, out)
	return result, result.Err
}

// PreviewFile converts the file at in and writes the resulting stream to w
// without touching the filesystem.
func (c *Converter) PreviewFile(in string, w io.Writer) (DocumentStats, error) {
	data, err := afero.ReadFile(c.fs, in)
	if err != nil {
		if os.IsNotExist(err) {
			return DocumentStats{}, fmt.Errorf("%w: %s", ErrInputNotFound, in)
		}
		return DocumentStats{}, fmt.Errorf("reading %s: %w", in, err)
	}
	docs, err := manifest.DecodeBytes(data)
	if err != nil {
		return DocumentStats{}, fmt.Errorf("%s: %w", in, err)
	}

	converted, stats, convErr := c.ConvertDocuments(in, docs)
	if err := manifest.Encode(w, converted); err != nil {
		return stats, err
	}
	return stats, convErr
}
