// api/engine/availability.go
package engine

import (
	"fmt"
	"strings"

	"github.com/planweave/api/model"

	helper_util "github.com/planweave/api/util/helper"
)

// capacityErrorMargin is how far period utilization may exceed the
// over-allocation threshold before the finding becomes an error.
const capacityErrorMargin = 0.2

var availabilityRecommendations = []string{
	"Adjust the requested start or end date to avoid the conflicting period",
	"Reduce the allocation percentage for the requested period",
	"Review the resource's existing allocations for rebalancing",
}

// ValidateResourceAvailability checks whether a resource is free during the
// requested period: allocation overlaps, leave overlaps and period capacity.
// A leave overlap is the only conflict class that always invalidates the
// request.
func (e *Engine) ValidateResourceAvailability(
	resourceID string,
	rng model.DateRange,
	allocations []model.Allocation,
	resources []model.Resource,
	leaves []model.LeaveRecord,
) (model.ValidationResult, error) {
	resource := resolveResource(resourceID, resources)
	if resource == nil {
		return resourceNotFound(model.ValidationTypeAvailability, resourceID), nil
	}

	details := &model.AvailabilityDetails{
		ResourceName:    resource.Name,
		RequestedPeriod: rng,
		Conflicts:       []model.Conflict{},
	}

	if !rng.IsComplete() {
		return model.ValidationResult{
			Type:     model.ValidationTypeAvailability,
			Valid:    true,
			Severity: model.SeverityInfo,
			Message:  fmt.Sprintf("No date range specified; availability of %s is unconstrained", resource.Name),
			Details:  details,
		}, nil
	}

	reqStart, reqEnd, err := helper_util.ParseDateRange(rng.StartDate, rng.EndDate)
	if err != nil {
		return model.ValidationResult{}, fmt.Errorf("availability check: %w", err)
	}

	valid := true
	severity := model.SeverityInfo

	for _, a := range allocations {
		if !belongsTo(a, resource) || !a.IsActive() {
			continue
		}
		if a.Plan.TaskStart == "" || a.Plan.TaskEnd == "" {
			continue
		}
		aStart, aEnd, err := helper_util.ParseDateRange(a.Plan.TaskStart, a.Plan.TaskEnd)
		if err != nil {
			continue
		}
		if !helper_util.Intersects(aStart, aEnd, reqStart, reqEnd) {
			continue
		}
		details.Conflicts = append(details.Conflicts, model.Conflict{
			Type:         model.ConflictAllocationOverlap,
			AllocationID: a.ID,
			ProjectName:  a.ProjectName,
			Percentage:   a.Percentage(),
			OverlapStart: helper_util.FormatDate(helper_util.MaxDate(aStart, reqStart)),
			OverlapEnd:   helper_util.FormatDate(helper_util.MinDate(aEnd, reqEnd)),
			Message:      fmt.Sprintf("Overlaps allocation %s on project %s", a.ID, a.ProjectName),
		})
	}

	if e.cfg.ValidateLeaveSchedules {
		for _, l := range leaves {
			if !leaveBelongsTo(l, resource) {
				continue
			}
			lStart, lEnd, err := helper_util.ParseDateRange(l.StartDate, l.EndDate)
			if err != nil {
				continue
			}
			if !helper_util.Intersects(lStart, lEnd, reqStart, reqEnd) {
				continue
			}
			details.Conflicts = append(details.Conflicts, model.Conflict{
				Type:         model.ConflictLeave,
				LeaveID:      l.ID,
				LeaveType:    l.Type,
				OverlapStart: helper_util.FormatDate(helper_util.MaxDate(lStart, reqStart)),
				OverlapEnd:   helper_util.FormatDate(helper_util.MinDate(lEnd, reqEnd)),
				Message:      fmt.Sprintf("Resource is on %s leave during the requested period", l.Type),
			})
			// A resource cannot be allocated while on leave.
			valid = false
			severity = model.SeverityError
		}
	}

	utilization := e.CalculateUtilization(resourceID, allocations, resources, &rng).CurrentUtilization
	details.Utilization = utilization
	threshold := resource.EffectiveOverAllocationThreshold()
	if utilization > threshold {
		details.Conflicts = append(details.Conflicts, model.Conflict{
			Type:        model.ConflictCapacityExceeded,
			Utilization: utilization,
			Threshold:   threshold,
			Message:     fmt.Sprintf("Period utilization %.2f exceeds over-allocation threshold %.2f", utilization, threshold),
		})
		if utilization-threshold > capacityErrorMargin {
			valid = false
			severity = model.SeverityError
		} else if severity != model.SeverityError {
			severity = model.SeverityWarning
		}
	}

	if len(details.Conflicts) > 0 {
		if severity == model.SeverityInfo {
			severity = model.SeverityWarning
		}
		details.Recommendations = availabilityRecommendations
	}

	message := fmt.Sprintf("%s is available from %s to %s", resource.Name, rng.StartDate, rng.EndDate)
	if len(details.Conflicts) > 0 {
		message = fmt.Sprintf("Found %d scheduling conflict(s) for %s between %s and %s",
			len(details.Conflicts), resource.Name, rng.StartDate, rng.EndDate)
	}

	return model.ValidationResult{
		Type:     model.ValidationTypeAvailability,
		Valid:    valid,
		Severity: severity,
		Message:  message,
		Details:  details,
	}, nil
}

func leaveBelongsTo(l model.LeaveRecord, r *model.Resource) bool {
	if l.MemberName == "" {
		return false
	}
	if r.ID != "" && l.MemberName == r.ID {
		return true
	}
	return strings.EqualFold(l.MemberName, r.Name)
}
