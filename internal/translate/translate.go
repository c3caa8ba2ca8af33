// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package translate converts a Kubeflow Training Operator v1 PyTorchJob
// document into a Kubeflow Trainer v2 TrainJob document.
//
// The translation is a pure function of the input document: replica counts
// of the Master and Worker roles are summed into numNodes, the first
// container of the first role that declares one becomes the trainer, and the
// runtime is chosen from the container's GPU resources. The input document
// is never modified.
package translate

import (
	"fmt"

	"github.com/pdiddy/trainjob-migrate/pkg/types"
)

// ElasticWarning is reported for every PyTorchJob carrying an elasticPolicy.
const ElasticWarning = "elastic training detected; requires custom runtime configuration " +
	"(consider a custom ClusterTrainingRuntime)"

// Summary describes what a translation did, for operator-facing reports.
type Summary struct {
	Name           string
	MasterReplicas int
	WorkerReplicas int
	NumNodes       int
	Runtime        string
	Elastic        bool
}

// Result is the outcome of a successful translation.
type Result struct {
	// Document is the TrainJob.
	Document types.Document

	// Warnings are non-fatal findings the caller should surface.
	Warnings []string

	Summary Summary
}

// Translate converts one PyTorchJob document. cfg selects the runtime
// identifiers; empty fields fall back to the built-in defaults.
func Translate(doc types.Document, cfg types.RuntimeConfig) (*Result, error) {
	cfg = cfg.WithDefaults()

	kind, _ := doc["kind"].(string)
	if kind != types.LegacyKind {
		return nil, fmt.Errorf("%w: expected %s, got %q", ErrUnsupportedKind, types.LegacyKind, kind)
	}

	metadata, present, ok := mapping(doc, "metadata")
	if !present || !ok {
		return nil, fmt.Errorf("%w: metadata must be a mapping", ErrMalformedInput)
	}
	spec, present, ok := mapping(doc, "spec")
	if !present || !ok {
		return nil, fmt.Errorf("%w: spec must be a mapping", ErrMalformedInput)
	}
	roleSpecs, present, ok := mapping(spec, types.ReplicaSpecsKey)
	if !present || !ok {
		return nil, fmt.Errorf("%w: spec.%s must be a mapping", ErrMalformedInput, types.ReplicaSpecsKey)
	}

	sum := Summary{}
	sum.Name, _ = metadata["name"].(string)

	counts := make(map[string]int, len(types.Roles))
	for _, name := range types.Roles {
		role, present, ok := mapping(roleSpecs, name)
		if !present {
			continue
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s replica spec must be a mapping", ErrMalformedInput, name)
		}
		n, err := replicas(role)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedInput, name, err)
		}
		counts[name] = n
	}
	sum.MasterReplicas = counts[types.RoleMaster]
	sum.WorkerReplicas = counts[types.RoleWorker]
	sum.NumNodes = sum.MasterReplicas + sum.WorkerReplicas

	container, err := selectContainer(roleSpecs)
	if err != nil {
		return nil, err
	}

	image, _ := container["image"].(string)
	if image == "" {
		return nil, ErrMissingImage
	}

	sum.Runtime = selectRuntime(container, cfg)

	trainer := map[string]any{
		"numNodes": sum.NumNodes,
		"image":    image,
	}
	for _, key := range []string{"command", "args"} {
		if v, found := container[key]; found && v != nil {
			trainer[key] = clone(v)
		}
	}
	if env := container["env"]; !empty(env) {
		trainer["env"] = clone(env)
	}
	if res := container["resources"]; !empty(res) {
		trainer["resourcesPerNode"] = clone(res)
	}

	outMeta := clone(metadata).(map[string]any)

	var warnings []string
	if _, found := spec[types.ElasticPolicyKey]; found {
		sum.Elastic = true
		warnings = append(warnings, ElasticWarning)

		annotations, _, ok := mapping(outMeta, "annotations")
		if !ok || annotations == nil {
			annotations = map[string]any{}
		}
		annotations[types.ElasticAnnotation] = "true"
		outMeta["annotations"] = annotations
	}

	out := types.Document{
		"apiVersion": types.TrainJobAPIVersion,
		"kind":       types.TrainJobKind,
		"metadata":   outMeta,
		"spec": map[string]any{
			"runtimeRef": map[string]any{"name": sum.Runtime},
			"trainer":    trainer,
		},
	}

	return &Result{Document: out, Warnings: warnings, Summary: sum}, nil
}

// selectContainer returns the first container of the first role, in
// types.Roles order, whose pod template declares at least one container.
func selectContainer(roleSpecs types.Document) (types.Document, error) {
	for _, name := range types.Roles {
		role, present, ok := mapping(roleSpecs, name)
		if !present || !ok {
			continue
		}
		podSpec := path(role, "template", "spec")
		if podSpec == nil {
			continue
		}
		containers, _, ok := sequence(podSpec, "containers")
		if !ok {
			return nil, fmt.Errorf("%w: %s containers must be a sequence", ErrMalformedInput, name)
		}
		if len(containers) == 0 {
			continue
		}
		c, ok := containers[0].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s container must be a mapping", ErrMalformedInput, name)
		}
		return c, nil
	}
	return nil, ErrNoContainerFound
}

// selectRuntime picks the GPU runtime when the container's limits, or
// failing that its requests, ask for a non-zero amount of cfg.GPUResource.
func selectRuntime(container types.Document, cfg types.RuntimeConfig) string {
	resources, _, _ := mapping(container, "resources")
	limits, _, _ := mapping(resources, "limits")
	requests, _, _ := mapping(resources, "requests")

	if quantityPresent(limits[cfg.GPUResource]) || quantityPresent(requests[cfg.GPUResource]) {
		return cfg.GPURuntime
	}
	return cfg.DefaultRuntime
}
