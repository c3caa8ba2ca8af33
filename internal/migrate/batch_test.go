// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package migrate

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/trainjob-migrate/pkg/types"
)

func TestOutputName(t *testing.T) {
	tests := []struct {
		input  string
		suffix string
		want   string
	}{
		{"job.yaml", "-v2", "job-v2.yaml"},
		{"/a/b/job.yml", "-v2", "job-v2.yml"},
		{"job.v1.yaml", "-v2", "job.v1-v2.yaml"},
		{"job", "-v2", "job-v2"},
		{"job.yaml", "_trainjob", "job_trainjob.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputName(tt.input, tt.suffix))
		})
	}
}

func TestFindInputs(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, name := range []string{"b.yaml", "a.yaml", "c.yml", "D.YAML", "notes.txt", "sub/e.yaml"} {
		require.NoError(t, afero.WriteFile(fs, filepath.Join("/jobs", name), []byte("kind: X\n"), 0o644))
	}
	require.NoError(t, fs.MkdirAll("/jobs/dir.yaml", 0o755))

	got, err := FindInputs(fs, "/jobs", []string{".yaml", ".yml"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/jobs/D.YAML",
		"/jobs/a.yaml",
		"/jobs/b.yaml",
		"/jobs/c.yml",
	}, got)

	_, err = FindInputs(fs, "/missing", []string{".yaml"})
	assert.Error(t, err)
}

func TestConvertDir(t *testing.T) {
	env := newTestEnv(t, types.MigrationConfig{})
	env.write(t, "/v1/a.yaml", gpuJob)
	env.write(t, "/v1/b.yml", elasticJob, configMap)
	env.write(t, "/v1/c.yaml", gpuJob, brokenJob)
	env.write(t, "/v1/d.yaml", "kind: [unclosed\n")
	env.write(t, "/v1/readme.md", "# not yaml")

	result, err := env.conv.ConvertDir("/v1", "/v2")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Converted)
	assert.Equal(t, 1, result.Partial)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 4, result.Total())
	assert.True(t, result.HasFailures())
	assert.Equal(t, "/v2", result.OutputDir)
	require.Len(t, result.Files, 4)

	for _, name := range []string{"a-v2.yaml", "c-v2.yaml", "b-v2.yml"} {
		exists, err := afero.Exists(env.fs, filepath.Join("/v2", name))
		require.NoError(t, err)
		assert.True(t, exists, "expected %s", name)
	}
	exists, err := afero.Exists(env.fs, "/v2/d-v2.yaml")
	require.NoError(t, err)
	assert.False(t, exists, "unparseable input must not produce output")

	progress := env.out.String()
	assert.Contains(t, progress, "Found 4 YAML files to process...")
	assert.Contains(t, progress, "Batch summary: 2 converted, 1 partial, 1 failed (total: 4)")
	assert.Contains(t, progress, "Output directory: /v2")
}

func TestConvertDir_DefaultOutputDir(t *testing.T) {
	env := newTestEnv(t, types.MigrationConfig{})
	env.write(t, "/v1/a.yaml", gpuJob)

	result, err := env.conv.ConvertDir("/v1", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/v1", DefaultOutputDir), result.OutputDir)
	assert.False(t, result.HasFailures())

	exists, err := afero.Exists(env.fs, "/v1/converted/a-v2.yaml")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestConvertDir_DryRun(t *testing.T) {
	env := newTestEnv(t, types.MigrationConfig{DryRun: true})
	env.write(t, "/v1/a.yaml", gpuJob)
	env.write(t, "/v1/b.yaml", gpuJob)

	result, err := env.conv.ConvertDir("/v1", "/v2")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, 0, result.Converted)

	exists, err := afero.DirExists(env.fs, "/v2")
	require.NoError(t, err)
	assert.False(t, exists)

	progress := env.out.String()
	assert.Equal(t, 2, strings.Count(progress, "Would convert:"))
	assert.NotContains(t, progress, "Batch summary")
}

func TestConvertDir_PathErrors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		env := newTestEnv(t, types.MigrationConfig{})
		_, err := env.conv.ConvertDir("/nope", "")
		require.ErrorIs(t, err, ErrInputNotFound)
		assert.Empty(t, env.out.String())
	})

	t.Run("file instead of directory", func(t *testing.T) {
		env := newTestEnv(t, types.MigrationConfig{})
		env.write(t, "/job.yaml", gpuJob)
		_, err := env.conv.ConvertDir("/job.yaml", "")
		require.ErrorIs(t, err, ErrInputNotFound)
	})

	t.Run("no matching files", func(t *testing.T) {
		env := newTestEnv(t, types.MigrationConfig{})
		env.write(t, "/v1/readme.md", "# hi")
		_, err := env.conv.ConvertDir("/v1", "/v2")
		require.ErrorIs(t, err, ErrNoInputs)

		exists, err := afero.DirExists(env.fs, "/v2")
		require.NoError(t, err)
		assert.False(t, exists, "no output directory before conversion starts")
	})

	t.Run("custom extensions", func(t *testing.T) {
		env := newTestEnv(t, types.MigrationConfig{Extensions: []string{".json"}})
		env.write(t, "/v1/a.yaml", gpuJob)
		_, err := env.conv.ConvertDir("/v1", "/v2")
		require.ErrorIs(t, err, ErrNoInputs)
		assert.Contains(t, err.Error(), ".json")
	})
}

func TestWriteReport(t *testing.T) {
	result := BatchResult{
		Files: []FileResult{
			{Input: "v1/a.yaml", Output: "v2/a-v2.yaml", Status: types.ConversionDone, Documents: DocumentStats{Translated: 2}},
			{Input: "v1/b.yaml", Output: "v2/b-v2.yaml", Status: types.ConversionPartial, Documents: DocumentStats{Translated: 1, Failed: 1}},
		},
	}

	var buf bytes.Buffer
	WriteReport(&buf, result)

	out := buf.String()
	assert.Contains(t, out, "v1/a.yaml")
	assert.Contains(t, out, "v2/b-v2.yaml")
	assert.Contains(t, out, "converted")
	assert.Contains(t, out, "partial")
}

func TestConvertDir_SampleManifests(t *testing.T) {
	// Read the checked-in samples, write conversions to memory only.
	base := afero.NewReadOnlyFs(afero.NewOsFs())
	fs := afero.NewCopyOnWriteFs(base, afero.NewMemMapFs())

	var out bytes.Buffer
	conv := New(fs, types.MigrationConfig{}, discardLogger(), &out)

	inDir := filepath.Join("..", "..", "testdata", "pytorchjobs")
	outDir := filepath.Join(inDir, DefaultOutputDir)
	result, err := conv.ConvertDir(inDir, "")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Converted)
	assert.False(t, result.HasFailures())

	gpu, err := afero.ReadFile(fs, filepath.Join(outDir, "mnist-gpu-v2.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(gpu), "numNodes: 4")
	assert.Contains(t, string(gpu), "name: torch-cuda-251")
	assert.Contains(t, string(gpu), "/opt/pytorch-mnist/mnist.py")

	elastic, err := afero.ReadFile(fs, filepath.Join(outDir, "elastic-cpu-v2.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(elastic), "numNodes: 2")
	assert.Contains(t, string(elastic), "name: torch-distributed")
	assert.Contains(t, string(elastic), "owner: platform-team")
	assert.Contains(t, string(elastic), `migration.trainer.kubeflow.org/original-elastic: "true"`)
	assert.Contains(t, string(elastic), "kind: ConfigMap")

	exists, err := afero.DirExists(afero.NewOsFs(), outDir)
	require.NoError(t, err)
	assert.False(t, exists, "sample conversion must not touch the real filesystem")
}
