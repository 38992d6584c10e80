// api/engine/utilization.go
package engine

import (
	"github.com/planweave/api/model"

	helper_util "github.com/planweave/api/util/helper"
)

// CalculateUtilization sums the active allocation percentages of a resource,
// optionally restricted to allocations intersecting the given date window.
// It never fails: an unknown resource or empty input yields zero.
func (e *Engine) CalculateUtilization(
	resourceID string,
	allocations []model.Allocation,
	resources []model.Resource,
	window *model.DateRange,
) model.UtilizationSummary {
	resource := resolveResource(resourceID, resources)
	if resource == nil {
		return model.UtilizationSummary{}
	}

	summary := model.UtilizationSummary{}
	for _, a := range allocations {
		if !belongsTo(a, resource) || !a.IsActive() {
			continue
		}
		if window != nil && window.IsComplete() && !allocationInWindow(a, *window) {
			continue
		}
		summary.CurrentUtilization += a.Percentage()
		summary.ActiveAllocations = append(summary.ActiveAllocations, a)
	}
	return summary
}

// allocationInWindow reports whether an allocation's planned interval
// intersects the window. Allocations without a parseable plan are treated
// as open-ended and always intersect.
func allocationInWindow(a model.Allocation, window model.DateRange) bool {
	wStart, wEnd, err := helper_util.ParseDateRange(window.StartDate, window.EndDate)
	if err != nil {
		return true
	}
	if a.Plan.TaskStart == "" || a.Plan.TaskEnd == "" {
		return true
	}
	aStart, aEnd, err := helper_util.ParseDateRange(a.Plan.TaskStart, a.Plan.TaskEnd)
	if err != nil {
		return true
	}
	return helper_util.Intersects(aStart, aEnd, wStart, wEnd)
}
