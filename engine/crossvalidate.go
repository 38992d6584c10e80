// api/engine/crossvalidate.go
package engine

import (
	"fmt"

	"github.com/planweave/api/model"
)

// warningCautionThreshold is the warning count above which the overall
// recommendation shifts from monitoring to caution.
const warningCautionThreshold = 2

// PerformCrossValidation aggregates the findings of the individual checks
// into one overall risk classification and recommendation.
func (e *Engine) PerformCrossValidation(request model.AllocationRequest, prior []model.ValidationResult) model.ValidationResult {
	errorCount := 0
	warningCount := 0
	for _, r := range prior {
		switch r.Severity {
		case model.SeverityError:
			errorCount++
		case model.SeverityWarning:
			warningCount++
		}
	}

	details := &model.CrossValidationDetails{
		ErrorCount:      errorCount,
		WarningCount:    warningCount,
		Recommendations: collectRecommendations(prior),
	}

	valid := true
	severity := model.SeverityInfo
	switch {
	case errorCount >= 1:
		valid = false
		severity = model.SeverityError
		details.OverallRisk = model.RiskHigh
		details.FinalRecommendation = model.RecommendReject
	case warningCount > warningCautionThreshold:
		severity = model.SeverityWarning
		details.OverallRisk = model.RiskMedium
		details.FinalRecommendation = model.RecommendCaution
	case warningCount >= 1:
		severity = model.SeverityWarning
		details.OverallRisk = model.RiskLow
		details.FinalRecommendation = model.RecommendMonitoring
	default:
		details.OverallRisk = model.RiskLow
		details.FinalRecommendation = model.RecommendProceed
	}

	// A passing availability check combined with a failed capacity check is
	// worth calling out explicitly, without escalating beyond the
	// count-based classification above.
	if availabilityPassedCapacityFailed(prior) {
		details.Conflicts = append(details.Conflicts,
			"availability check passed but capacity check failed")
	}

	return model.ValidationResult{
		Type:     model.ValidationTypeCrossValidation,
		Valid:    valid,
		Severity: severity,
		Message: fmt.Sprintf("Overall risk %s for %s on %s: %s",
			details.OverallRisk, request.Resource, request.ProjectName, details.FinalRecommendation),
		Details: details,
	}
}

func availabilityPassedCapacityFailed(results []model.ValidationResult) bool {
	availabilityValid := false
	capacityInvalid := false
	for _, r := range results {
		switch r.Type {
		case model.ValidationTypeAvailability:
			availabilityValid = r.Valid
		case model.ValidationTypeCapacityLimits:
			capacityInvalid = !r.Valid
		}
	}
	return availabilityValid && capacityInvalid
}

// collectRecommendations gathers the recommendation strings of every prior
// result, de-duplicated, preserving first-seen order.
func collectRecommendations(results []model.ValidationResult) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(recs []string) {
		for _, rec := range recs {
			if _, ok := seen[rec]; ok {
				continue
			}
			seen[rec] = struct{}{}
			out = append(out, rec)
		}
	}
	for _, r := range results {
		switch d := r.Details.(type) {
		case *model.AvailabilityDetails:
			add(d.Recommendations)
		case *model.SkillMatchDetails:
			add(d.Recommendations)
		case *model.CapacityDetails:
			add(d.Recommendations)
		case *model.WorkloadDetails:
			add(d.Recommendations)
		}
	}
	return out
}
