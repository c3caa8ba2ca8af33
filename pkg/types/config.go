// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RuntimeConfig holds the runtime-selection settings of the translator.
type RuntimeConfig struct {
	// GPUResource is the resource name inspected in limits and requests
	// (default "nvidia.com/gpu").
	GPUResource string `json:"gpu_resource" yaml:"gpu_resource"`

	// GPURuntime is the runtimeRef name used when the trainer requests GPUs.
	GPURuntime string `json:"gpu_runtime" yaml:"gpu_runtime"`

	// DefaultRuntime is the runtimeRef name used otherwise.
	DefaultRuntime string `json:"default_runtime" yaml:"default_runtime"`
}

// WithDefaults returns a copy of c with empty fields filled from the
// built-in runtime identifiers.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.GPUResource == "" {
		c.GPUResource = DefaultGPUResource
	}
	if c.GPURuntime == "" {
		c.GPURuntime = RuntimeCUDA
	}
	if c.DefaultRuntime == "" {
		c.DefaultRuntime = RuntimeDistributed
	}
	return c
}

// MigrationConfig holds settings for the batch driver.
type MigrationConfig struct {
	Runtime RuntimeConfig `json:"runtime" yaml:"runtime"`

	// OutputSuffix is inserted between the stem and the extension of each
	// input file name to build the output name (default "-v2").
	OutputSuffix string `json:"output_suffix" yaml:"output_suffix"`

	// Extensions selects the files picked up in directory mode
	// (default ".yaml", ".yml").
	Extensions []string `json:"extensions" yaml:"extensions"`

	// DryRun reports planned actions without writing any file.
	DryRun bool `json:"dry_run" yaml:"dry_run"`
}

// DefaultMigrationConfig returns the configuration used when no config file,
// environment variable or flag overrides a setting.
func DefaultMigrationConfig() MigrationConfig {
	return MigrationConfig{
		Runtime:      RuntimeConfig{}.WithDefaults(),
		OutputSuffix: "-v2",
		Extensions:   []string{".yaml", ".yml"},
	}
}
