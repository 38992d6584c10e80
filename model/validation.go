// api/model/validation.go
package model

// Validation result types, one per check in the validation pipeline.
const (
	ValidationTypeAvailability    = "availability"
	ValidationTypeSkillMatch      = "skill_match"
	ValidationTypeCapacityLimits  = "capacity_limits"
	ValidationTypeWorkload        = "workload_constraints"
	ValidationTypeCrossValidation = "cross_validation"
	ValidationTypeSystemError     = "system_error"
)

// Severity grades for validation findings.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Conflict kinds reported by the availability check.
const (
	ConflictAllocationOverlap = "allocation_overlap"
	ConflictLeave             = "leave_conflict"
	ConflictCapacityExceeded  = "capacity_exceeded"
)

// Overall risk classifications produced by cross-validation.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Final recommendations produced by cross-validation.
const (
	RecommendProceed    = "proceed"
	RecommendMonitoring = "proceed_with_monitoring"
	RecommendCaution    = "proceed_with_caution"
	RecommendReject     = "reject"
)

// ValidationResult is the shared envelope for every check outcome. Details
// holds exactly one of the payload types below, tagged by Type.
type ValidationResult struct {
	Type     string      `json:"type"`
	Valid    bool        `json:"valid"`
	Severity string      `json:"severity"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
}

// Conflict describes one scheduling collision found by the availability
// check. Fields are populated per conflict kind.
type Conflict struct {
	Type         string  `json:"type"`
	AllocationID string  `json:"allocation_id,omitempty"`
	ProjectName  string  `json:"project_name,omitempty"`
	Percentage   float64 `json:"percentage,omitempty"`
	LeaveID      string  `json:"leave_id,omitempty"`
	LeaveType    string  `json:"leave_type,omitempty"`
	OverlapStart string  `json:"overlap_start,omitempty"`
	OverlapEnd   string  `json:"overlap_end,omitempty"`
	Utilization  float64 `json:"utilization,omitempty"`
	Threshold    float64 `json:"threshold,omitempty"`
	Message      string  `json:"message,omitempty"`
}

// AvailabilityDetails is the payload for availability results.
type AvailabilityDetails struct {
	ResourceName    string     `json:"resource_name"`
	RequestedPeriod DateRange  `json:"requested_period"`
	Conflicts       []Conflict `json:"conflicts"`
	Utilization     float64    `json:"utilization"`
	Recommendations []string   `json:"recommendations,omitempty"`
}

// Skill match kinds. Partial is part of the published payload shape but the
// current matcher only produces exact and substring matches.
const (
	SkillMatchExact     = "exact"
	SkillMatchSubstring = "substring"
	SkillMatchPartial   = "partial"
)

// SkillMatch records a required skill satisfied by the resource.
type SkillMatch struct {
	Skill       string  `json:"skill"`
	MatchedWith string  `json:"matched_with"`
	MatchType   string  `json:"match_type"`
	Confidence  float64 `json:"confidence"`
}

// Skill gap severities.
const (
	GapModerate = "moderate"
	GapCritical = "critical"
)

// SkillGap records a required skill the resource does not cover.
type SkillGap struct {
	Skill    string `json:"skill"`
	Severity string `json:"severity"`
	CanLearn bool   `json:"can_learn"`
}

// SkillMatchDetails is the payload for skill match results.
type SkillMatchDetails struct {
	ResourceName    string       `json:"resource_name"`
	TierLevel       int          `json:"tier_level"`
	Complexity      string       `json:"complexity,omitempty"`
	Matches         []SkillMatch `json:"matches"`
	Gaps            []SkillGap   `json:"gaps"`
	Recommendations []string     `json:"recommendations,omitempty"`
}

// CapacityDetails is the payload for capacity limit results.
type CapacityDetails struct {
	ResourceName            string   `json:"resource_name"`
	CurrentUtilization      float64  `json:"current_utilization"`
	RequestedPercentage     float64  `json:"requested_percentage"`
	ProjectedUtilization    float64  `json:"projected_utilization"`
	MaxCapacity             float64  `json:"max_capacity"`
	OverAllocationThreshold float64  `json:"over_allocation_threshold"`
	Recommendations         []string `json:"recommendations,omitempty"`
}

// WorkloadItem is one entry of a resource's current workload distribution.
type WorkloadItem struct {
	ProjectName string  `json:"project_name,omitempty"`
	TaskName    string  `json:"task_name,omitempty"`
	Complexity  string  `json:"complexity,omitempty"`
	Percentage  float64 `json:"percentage"`
	StartDate   string  `json:"start_date,omitempty"`
	EndDate     string  `json:"end_date,omitempty"`
}

// WorkloadDetails is the payload for workload constraint results.
type WorkloadDetails struct {
	ResourceName        string         `json:"resource_name"`
	CurrentTaskCount    int            `json:"current_task_count"`
	SustainabilityScore float64        `json:"sustainability_score"`
	Distribution        []WorkloadItem `json:"distribution"`
	Recommendations     []string       `json:"recommendations,omitempty"`
}

// CrossValidationDetails is the payload for the final aggregate result.
type CrossValidationDetails struct {
	OverallRisk         string   `json:"overall_risk"`
	FinalRecommendation string   `json:"final_recommendation"`
	ErrorCount          int      `json:"error_count"`
	WarningCount        int      `json:"warning_count"`
	Conflicts           []string `json:"conflicts,omitempty"`
	Recommendations     []string `json:"recommendations,omitempty"`
}

// SystemErrorDetails is the payload attached when a check itself fails.
type SystemErrorDetails struct {
	Stage string `json:"stage"`
	Error string `json:"error"`
}

// UtilizationSummary is the output of the utilization calculator.
type UtilizationSummary struct {
	CurrentUtilization float64      `json:"current_utilization"`
	ActiveAllocations  []Allocation `json:"active_allocations"`
}
