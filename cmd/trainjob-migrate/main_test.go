// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/trainjob-migrate/pkg/types"
)

func TestMigrationConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	viper.Reset()
	got := migrationConfig()
	assert.Equal(t, types.DefaultMigrationConfig(), got)

	viper.Set("gpu-resource", "amd.com/gpu")
	viper.Set("gpu-runtime", "torch-rocm")
	viper.Set("output-suffix", ".trainjob")
	viper.Set("extensions", []string{"YAML", ".json", " "})

	got = migrationConfig()
	assert.Equal(t, "amd.com/gpu", got.Runtime.GPUResource)
	assert.Equal(t, "torch-rocm", got.Runtime.GPURuntime)
	assert.Equal(t, types.RuntimeDistributed, got.Runtime.DefaultRuntime)
	assert.Equal(t, ".trainjob", got.OutputSuffix)
	assert.Equal(t, []string{".yaml", ".json"}, got.Extensions)
}

func TestNormalizeExtensions(t *testing.T) {
	assert.Equal(t, []string{".yaml", ".yml"}, normalizeExtensions([]string{"yaml", ".YML"}))
	assert.Empty(t, normalizeExtensions([]string{"", "  "}))
}

func TestConvertHelpDescribesPartialOutput(t *testing.T) {
	assert.Contains(t, convertCmd.Long, "contain the failed PyTorchJobs unconverted")
	assert.Contains(t, convertCmd.Long, "non-zero exit status")
}
