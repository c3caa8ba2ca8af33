// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for trainjob-migrate: the
// generic document tree, the identifiers of the legacy PyTorchJob and the
// Trainer v2 TrainJob schemas, conversion status, and configuration.
package types

// Document is one decoded YAML document with a mapping at its root. Both the
// legacy and the new job descriptors are handled as Documents rather than as
// typed structs so that unknown fields survive the round trip untouched.
type Document = map[string]any

// Legacy PyTorchJob schema.
const (
	// LegacyKind is the kind accepted by the translator.
	LegacyKind = "PyTorchJob"

	// RoleMaster is the primary replica role.
	RoleMaster = "Master"

	// RoleWorker is the secondary replica role.
	RoleWorker = "Worker"

	// ReplicaSpecsKey holds the role map under spec.
	ReplicaSpecsKey = "pytorchReplicaSpecs"

	// ElasticPolicyKey marks elastic training under spec.
	ElasticPolicyKey = "elasticPolicy"
)

// Roles lists the recognized replica roles in container-selection priority.
var Roles = []string{RoleMaster, RoleWorker}

// Trainer v2 TrainJob schema.
const (
	TrainJobAPIVersion = "trainer.kubeflow.org/v1alpha1"
	TrainJobKind       = "TrainJob"

	// ElasticAnnotation is set to "true" on TrainJobs converted from a
	// PyTorchJob that carried an elasticPolicy.
	ElasticAnnotation = "migration.trainer.kubeflow.org/original-elastic"
)

// Runtime identifiers and the GPU resource name used to choose between them.
const (
	DefaultGPUResource = "nvidia.com/gpu"
	RuntimeCUDA        = "torch-cuda-251"
	RuntimeDistributed = "torch-distributed"
)
