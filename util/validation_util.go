// api/util/validation_util.go

package util

import (
	"fmt"

	"github.com/planweave/api/model"
	helper_util "github.com/planweave/api/util/helper"
)

// ValidationUtil performs shape checks on planning entities before they
// reach the engine or the store.
type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateAllocationRequest(request model.AllocationRequest) error {
	if request.Resource == "" {
		return fmt.Errorf("allocation request must name a resource")
	}
	if request.Complexity != "" && model.ComplexityRank(request.Complexity) == 0 {
		return fmt.Errorf("unknown complexity level: %s", request.Complexity)
	}
	if request.StartDate != "" && request.EndDate != "" {
		if _, _, err := helper_util.ParseDateRange(request.StartDate, request.EndDate); err != nil {
			return fmt.Errorf("allocation request dates: %w", err)
		}
	}
	return nil
}

func (v *ValidationUtil) ValidateResource(resource model.Resource) error {
	if resource.ID == "" {
		return fmt.Errorf("resource ID cannot be empty")
	}
	if resource.Name == "" {
		return fmt.Errorf("resource name cannot be empty")
	}
	if resource.TierLevel < 1 || resource.TierLevel > 5 {
		return fmt.Errorf("resource tier level must be between 1 and 5")
	}
	if resource.MaxCapacity < 0 {
		return fmt.Errorf("resource max capacity cannot be negative")
	}
	// Add more validation rules as needed
	return nil
}

func (v *ValidationUtil) ValidateAllocation(allocation model.Allocation) error {
	if allocation.Resource == "" {
		return fmt.Errorf("allocation must reference a resource")
	}
	if allocation.Complexity != "" && model.ComplexityRank(allocation.Complexity) == 0 {
		return fmt.Errorf("unknown complexity level: %s", allocation.Complexity)
	}
	if allocation.Plan.TaskStart != "" && allocation.Plan.TaskEnd != "" {
		if _, _, err := helper_util.ParseDateRange(allocation.Plan.TaskStart, allocation.Plan.TaskEnd); err != nil {
			return fmt.Errorf("allocation plan dates: %w", err)
		}
	}
	return nil
}

func (v *ValidationUtil) ValidateLeaveRecord(leave model.LeaveRecord) error {
	if leave.MemberName == "" {
		return fmt.Errorf("leave record must name a member")
	}
	if _, _, err := helper_util.ParseDateRange(leave.StartDate, leave.EndDate); err != nil {
		return fmt.Errorf("leave record dates: %w", err)
	}
	return nil
}
