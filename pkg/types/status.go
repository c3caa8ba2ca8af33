// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionStatus indicates the outcome of converting one input file.
type ConversionStatus string

const (
	// ConversionNone means the file was not touched (dry run).
	ConversionNone ConversionStatus = "none"
	// ConversionDone means every document was converted or passed through.
	ConversionDone ConversionStatus = "converted"
	// ConversionPartial means the output was written but at least one
	// PyTorchJob in the file failed translation and was kept verbatim.
	ConversionPartial ConversionStatus = "partial"
	// ConversionFailed means the file could not be read, parsed or written.
	ConversionFailed ConversionStatus = "failed"
)
