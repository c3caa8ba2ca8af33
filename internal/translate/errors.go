// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import "errors"

// Translation failures. Every error returned by Translate wraps exactly one
// of these, so callers can branch with errors.Is.
var (
	// ErrUnsupportedKind is returned when the document kind is not PyTorchJob.
	ErrUnsupportedKind = errors.New("unsupported kind")

	// ErrMalformedInput is returned when a required section (metadata, spec,
	// spec.pytorchReplicaSpecs) is missing or has the wrong shape.
	ErrMalformedInput = errors.New("malformed input")

	// ErrNoContainerFound is returned when neither Master nor Worker
	// declares a container.
	ErrNoContainerFound = errors.New("no container specification found")

	// ErrMissingImage is returned when the selected container has no image.
	ErrMissingImage = errors.New("container image missing")
)
