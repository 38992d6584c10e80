// api/engine/workload.go
package engine

import (
	"fmt"

	"github.com/planweave/api/model"
)

// maxConcurrentTasks is the hard ceiling on simultaneous assignments.
const maxConcurrentTasks = 5

// Sustainability score tuning.
const (
	overUtilizationPenalty   = 30 // per 1.0 of utilization above full capacity
	extraTaskPenalty         = 10 // per concurrent task beyond comfortableTaskCount
	comfortableTaskCount     = 3
	sophisticatedTaskPenalty = 15 // per sophisticated task beyond the first
	seniorTierBonus          = 5
)

// Score bands.
const (
	sustainabilityWarning = 70
	sustainabilityError   = 50
)

// ValidateWorkloadConstraints inspects the resource's concurrent-task load
// and complexity mix and produces a 0-100 sustainability score for the
// workload including the candidate allocation.
func (e *Engine) ValidateWorkloadConstraints(
	request model.AllocationRequest,
	allocations []model.Allocation,
	resources []model.Resource,
) (model.ValidationResult, error) {
	resource := resolveResource(request.Resource, resources)
	if resource == nil {
		return resourceNotFound(model.ValidationTypeWorkload, request.Resource), nil
	}

	details := &model.WorkloadDetails{
		ResourceName: resource.Name,
		Distribution: []model.WorkloadItem{},
	}

	currentUtilization := 0.0
	sophisticatedCount := 0
	highCount := 0
	for _, a := range allocations {
		if !belongsTo(a, resource) || !a.IsActive() {
			continue
		}
		details.Distribution = append(details.Distribution, model.WorkloadItem{
			ProjectName: a.ProjectName,
			TaskName:    a.TaskName,
			Complexity:  a.Complexity,
			Percentage:  a.Percentage(),
			StartDate:   a.Plan.TaskStart,
			EndDate:     a.Plan.TaskEnd,
		})
		currentUtilization += a.Percentage()
		switch a.Complexity {
		case model.ComplexitySophisticated:
			sophisticatedCount++
		case model.ComplexityHigh:
			highCount++
		}
	}
	details.CurrentTaskCount = len(details.Distribution)

	candidatePercentage := request.AllocationPercentage
	if candidatePercentage <= 0 {
		candidatePercentage = 1.0
	}
	totalUtilization := currentUtilization + candidatePercentage
	switch request.Complexity {
	case model.ComplexitySophisticated:
		sophisticatedCount++
	case model.ComplexityHigh:
		highCount++
	}

	score := 100.0
	if over := totalUtilization - 1.0; over > 0 {
		score -= overUtilizationPenalty * over
	}
	if details.CurrentTaskCount > comfortableTaskCount {
		score -= float64(extraTaskPenalty * (details.CurrentTaskCount - comfortableTaskCount))
	}
	if sophisticatedCount > 1 {
		score -= float64(sophisticatedTaskPenalty * (sophisticatedCount - 1))
	}
	if resource.TierLevel >= learnableTier {
		score += seniorTierBonus
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	details.SustainabilityScore = score

	valid := true
	severity := model.SeverityInfo
	var message string

	switch {
	case details.CurrentTaskCount >= maxConcurrentTasks:
		// The task-count ceiling takes priority over the score bands.
		severity = model.SeverityWarning
		message = fmt.Sprintf("%s has reached the concurrent task limit of %d", resource.Name, maxConcurrentTasks)
		details.Recommendations = append(details.Recommendations,
			"Complete or reassign an existing task before adding new work")
	case score < sustainabilityError:
		valid = false
		severity = model.SeverityError
		message = fmt.Sprintf("Workload for %s is unsustainable (score %.0f)", resource.Name, score)
		details.Recommendations = append(details.Recommendations,
			"Reduce the concurrent workload before adding new assignments")
	case score < sustainabilityWarning:
		severity = model.SeverityWarning
		message = fmt.Sprintf("Workload for %s is nearing its limits (score %.0f)", resource.Name, score)
		details.Recommendations = append(details.Recommendations,
			"Reduce the concurrent workload before adding new assignments")
	default:
		message = fmt.Sprintf("Workload for %s is sustainable (score %.0f)", resource.Name, score)
	}

	if sophisticatedCount >= 3 || sophisticatedCount+highCount > 3 {
		details.Recommendations = append(details.Recommendations,
			"Rebalance the complexity mix; too many demanding tasks are assigned at once")
	}

	return model.ValidationResult{
		Type:     model.ValidationTypeWorkload,
		Valid:    valid,
		Severity: severity,
		Message:  message,
		Details:  details,
	}, nil
}
