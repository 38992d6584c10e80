// api/engine/engine.go
package engine

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	logger "github.com/planweave/api/logging"
	"github.com/planweave/api/model"
)

// Engine runs the allocation validation pipeline. All checks are pure
// functions over the supplied planning data; the engine itself holds only
// immutable configuration.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine from the defaults merged with the supplied
// overrides.
func NewEngine(overrides *Overrides) *Engine {
	return &Engine{cfg: DefaultConfig().Apply(overrides)}
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// resolveResource finds a resource by ID, falling back to case-insensitive
// name equality. Returns nil when no resource matches.
func resolveResource(resourceID string, resources []model.Resource) *model.Resource {
	for i := range resources {
		if resources[i].ID != "" && resources[i].ID == resourceID {
			return &resources[i]
		}
	}
	for i := range resources {
		if strings.EqualFold(resources[i].Name, resourceID) {
			return &resources[i]
		}
	}
	return nil
}

// belongsTo reports whether an allocation references the given resource,
// by member name (case-insensitive) or by resource ID.
func belongsTo(a model.Allocation, r *model.Resource) bool {
	if strings.EqualFold(a.Resource, r.Name) {
		return true
	}
	return r.ID != "" && a.Resource == r.ID
}

// resourceNotFound is the shared finding for an unresolvable resource
// reference.
func resourceNotFound(validationType, resourceID string) model.ValidationResult {
	return model.ValidationResult{
		Type:     validationType,
		Valid:    false,
		Severity: model.SeverityError,
		Message:  fmt.Sprintf("Resource not found: %s", resourceID),
	}
}

func systemErrorResult(stage string, err error) model.ValidationResult {
	return model.ValidationResult{
		Type:     model.ValidationTypeSystemError,
		Valid:    false,
		Severity: model.SeverityError,
		Message:  fmt.Sprintf("Validation step %s failed: %v", stage, err),
		Details:  model.SystemErrorDetails{Stage: stage, Error: err.Error()},
	}
}

// runStep executes one validation step, converting panics into errors so a
// single misbehaving check cannot take down the whole pipeline.
func runStep(stage string, fn func() (model.ValidationResult, error)) (result model.ValidationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s check: %v", stage, r)
		}
	}()
	return fn()
}

// ValidateAllocationCreation runs the full validation pipeline for a
// candidate allocation: availability, skill match, capacity limits and
// workload constraints in fixed order, followed by cross-validation over
// the collected findings. A failure inside any step is reported as a
// system_error result in its place; already-collected results are kept.
func (e *Engine) ValidateAllocationCreation(
	ctx context.Context,
	request model.AllocationRequest,
	allocations []model.Allocation,
	resources []model.Resource,
	leaves []model.LeaveRecord,
) []model.ValidationResult {
	steps := []struct {
		name string
		run  func() (model.ValidationResult, error)
	}{
		{model.ValidationTypeAvailability, func() (model.ValidationResult, error) {
			return e.ValidateResourceAvailability(request.Resource, request.DateRange(), allocations, resources, leaves)
		}},
		{model.ValidationTypeSkillMatch, func() (model.ValidationResult, error) {
			return e.ValidateSkillMatch(request.Resource, request.RequiredSkills, request.Complexity, resources)
		}},
		{model.ValidationTypeCapacityLimits, func() (model.ValidationResult, error) {
			return e.ValidateCapacityLimits(request.Resource, request.AllocationPercentage, allocations, resources)
		}},
		{model.ValidationTypeWorkload, func() (model.ValidationResult, error) {
			return e.ValidateWorkloadConstraints(request, allocations, resources)
		}},
	}

	results := make([]model.ValidationResult, 0, len(steps)+1)
	for _, step := range steps {
		result, err := runStep(step.name, step.run)
		if err != nil {
			logger.Error("Validation step failed",
				zap.String("stage", step.name),
				zap.String("resource", request.Resource),
				zap.Error(err))
			results = append(results, systemErrorResult(step.name, err))
			continue
		}
		results = append(results, result)
	}

	results = append(results, e.PerformCrossValidation(request, results))

	logger.Info("Allocation validation completed",
		zap.String("resource", request.Resource),
		zap.String("project", request.ProjectName),
		zap.Int("results", len(results)))
	return results
}
