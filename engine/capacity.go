// api/engine/capacity.go
package engine

import (
	"fmt"

	"github.com/planweave/api/model"
)

// Bounds for a single allocation request, as fractions of full capacity.
const (
	minRequestedPercentage = 0.1
	maxRequestedPercentage = 1.0
)

// monitoringUtilization is the projected utilization above which close
// monitoring is recommended regardless of outcome.
const monitoringUtilization = 0.9

// ValidateCapacityLimits projects the resource's utilization after adding
// the requested percentage and classifies it against the resource's base
// capacity and over-allocation threshold.
func (e *Engine) ValidateCapacityLimits(
	resourceID string,
	requestedPercentage float64,
	allocations []model.Allocation,
	resources []model.Resource,
) (model.ValidationResult, error) {
	// The bounds check precedes everything else: out-of-range requests are
	// rejected no matter the resource's current state.
	if requestedPercentage < minRequestedPercentage || requestedPercentage > maxRequestedPercentage {
		return model.ValidationResult{
			Type:     model.ValidationTypeCapacityLimits,
			Valid:    false,
			Severity: model.SeverityError,
			Message: fmt.Sprintf("Requested allocation percentage %.2f must be between %.1f and %.1f",
				requestedPercentage, minRequestedPercentage, maxRequestedPercentage),
			Details: &model.CapacityDetails{RequestedPercentage: requestedPercentage},
		}, nil
	}

	resource := resolveResource(resourceID, resources)
	if resource == nil {
		return resourceNotFound(model.ValidationTypeCapacityLimits, resourceID), nil
	}

	current := e.CalculateUtilization(resourceID, allocations, resources, nil).CurrentUtilization
	projected := current + requestedPercentage
	maxCapacity := resource.EffectiveMaxCapacity()
	threshold := resource.EffectiveOverAllocationThreshold()

	details := &model.CapacityDetails{
		ResourceName:            resource.Name,
		CurrentUtilization:      current,
		RequestedPercentage:     requestedPercentage,
		ProjectedUtilization:    projected,
		MaxCapacity:             maxCapacity,
		OverAllocationThreshold: threshold,
	}

	valid := true
	severity := model.SeverityInfo
	var message string

	switch {
	case projected > threshold:
		excess := projected - threshold
		reduced := threshold - current
		if reduced < minRequestedPercentage {
			reduced = minRequestedPercentage
		}
		details.Recommendations = append(details.Recommendations,
			fmt.Sprintf("Reduce the requested percentage to at most %.2f", reduced))
		if e.cfg.AllowOverAllocation || !e.cfg.ValidateCapacityLimits {
			severity = model.SeverityWarning
			message = fmt.Sprintf("Projected utilization %.2f exceeds threshold %.2f by %.2f; over-allocation is permitted by configuration",
				projected, threshold, excess)
		} else {
			valid = false
			severity = model.SeverityError
			message = fmt.Sprintf("Projected utilization %.2f exceeds over-allocation threshold %.2f by %.2f",
				projected, threshold, excess)
		}
	case projected > maxCapacity:
		severity = model.SeverityWarning
		message = fmt.Sprintf("Projected utilization %.2f exceeds base capacity %.2f but stays within threshold %.2f",
			projected, maxCapacity, threshold)
	default:
		message = fmt.Sprintf("Projected utilization %.2f is within capacity for %s", projected, resource.Name)
	}

	if projected > monitoringUtilization {
		details.Recommendations = append(details.Recommendations,
			fmt.Sprintf("Monitor %s's utilization closely; projected load is %.2f", resource.Name, projected))
	}

	return model.ValidationResult{
		Type:     model.ValidationTypeCapacityLimits,
		Valid:    valid,
		Severity: severity,
		Message:  message,
		Details:  details,
	}, nil
}
