// api/audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

// ValidationAudit records one run of the allocation validation pipeline.
type ValidationAudit struct {
	Timestamp           time.Time       `json:"timestamp"`
	UserID              string          `json:"user_id"`
	MemberName          string          `json:"member_name"`
	ProjectName         string          `json:"project_name"`
	TaskName            string          `json:"task_name,omitempty"`
	OverallRisk         string          `json:"overall_risk"`
	FinalRecommendation string          `json:"final_recommendation"`
	ResultCount         int             `json:"result_count"`
	Results             json.RawMessage `json:"results,omitempty"`
}
