// api/model/planning.go
package model

// Complexity levels for allocated tasks, ordered from least to most demanding.
const (
	ComplexityLow           = "low"
	ComplexityMedium        = "medium"
	ComplexityHigh          = "high"
	ComplexitySophisticated = "sophisticated"
)

// ComplexityRank returns the ordinal position of a complexity level.
// Unknown values rank lowest.
func ComplexityRank(complexity string) int {
	switch complexity {
	case ComplexityLow:
		return 1
	case ComplexityMedium:
		return 2
	case ComplexityHigh:
		return 3
	case ComplexitySophisticated:
		return 4
	default:
		return 0
	}
}

// Allocation statuses that exclude an allocation from utilization and
// workload computations.
const (
	AllocationStatusCompleted = "completed"
	AllocationStatusIdle      = "idle"
)

// Resource is a team member who can be committed to project work.
type Resource struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	TierLevel               int      `json:"tier_level"` // 1 (junior) .. 5 (principal)
	Type                    string   `json:"type,omitempty"`
	MaxCapacity             float64  `json:"max_capacity,omitempty"`              // fraction, defaults to 1.0
	OverAllocationThreshold float64  `json:"over_allocation_threshold,omitempty"` // fraction, defaults to 1.2
	SkillAreas              []string `json:"skill_areas,omitempty"`
}

// EffectiveMaxCapacity returns the resource's capacity ceiling, defaulting
// to a full-time equivalent of 1.0.
func (r Resource) EffectiveMaxCapacity() float64 {
	if r.MaxCapacity > 0 {
		return r.MaxCapacity
	}
	return 1.0
}

// EffectiveOverAllocationThreshold returns the utilization ceiling above
// which the resource is unsafely committed, defaulting to 1.2.
func (r Resource) EffectiveOverAllocationThreshold() float64 {
	if r.OverAllocationThreshold > 0 {
		return r.OverAllocationThreshold
	}
	return 1.2
}

// AllocationPlan carries the calendar dates of an allocation as YYYY-MM-DD
// strings. Either date may be empty for open-ended allocations.
type AllocationPlan struct {
	TaskStart string `json:"task_start,omitempty"`
	TaskEnd   string `json:"task_end,omitempty"`
}

// Allocation is a commitment of a fraction of a resource's capacity to a
// project task over a date range. The resource is referenced by member name.
type Allocation struct {
	ID                   string         `json:"id"`
	Resource             string         `json:"resource"`
	ProjectName          string         `json:"project_name,omitempty"`
	TaskName             string         `json:"task_name,omitempty"`
	Complexity           string         `json:"complexity,omitempty"`
	AllocationPercentage float64        `json:"allocation_percentage,omitempty"`
	Workload             float64        `json:"workload,omitempty"` // legacy alias for allocation_percentage
	Status               string         `json:"status,omitempty"`
	Plan                 AllocationPlan `json:"plan,omitempty"`
}

// Percentage resolves the committed fraction of capacity. Older planning
// records carry it in the workload field; absent values count as a full
// commitment of 1.0.
func (a Allocation) Percentage() float64 {
	if a.AllocationPercentage > 0 {
		return a.AllocationPercentage
	}
	if a.Workload > 0 {
		return a.Workload
	}
	return 1.0
}

// IsActive reports whether the allocation still consumes capacity.
func (a Allocation) IsActive() bool {
	return a.Status != AllocationStatusCompleted && a.Status != AllocationStatusIdle
}

// LeaveRecord marks a period during which a member is away and must not be
// allocated.
type LeaveRecord struct {
	ID         string `json:"id"`
	MemberName string `json:"member_name"`
	Type       string `json:"type,omitempty"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// DateRange is a closed calendar-date interval. Dates are YYYY-MM-DD strings;
// both must be present for the range to be usable.
type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// IsComplete reports whether both endpoints are set.
func (dr DateRange) IsComplete() bool {
	return dr.StartDate != "" && dr.EndDate != ""
}

// AllocationRequest describes a candidate allocation awaiting validation.
type AllocationRequest struct {
	Resource             string   `json:"resource"`
	ProjectName          string   `json:"project_name,omitempty"`
	TaskName             string   `json:"task_name,omitempty"`
	Complexity           string   `json:"complexity,omitempty"`
	AllocationPercentage float64  `json:"allocation_percentage"`
	RequiredSkills       []string `json:"required_skills,omitempty"`
	StartDate            string   `json:"start_date,omitempty"`
	EndDate              string   `json:"end_date,omitempty"`
}

// DateRange returns the requested period of the candidate allocation.
func (r AllocationRequest) DateRange() DateRange {
	return DateRange{StartDate: r.StartDate, EndDate: r.EndDate}
}
