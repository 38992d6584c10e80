// api/engine/skills.go
package engine

import (
	"fmt"
	"strings"

	"github.com/planweave/api/model"
)

// Match confidence per match kind. partialMatchConfidence is carried in the
// published payload contract but the matcher below never produces a partial
// match; only exact and substring matches occur.
const (
	exactMatchConfidence     = 1.0
	substringMatchConfidence = 0.8
	partialMatchConfidence   = 0.6
)

// minimumTierForComplexity is the seniority floor applied when a request
// carries no explicit skill requirements.
var minimumTierForComplexity = map[string]int{
	model.ComplexityLow:           1,
	model.ComplexityMedium:        2,
	model.ComplexityHigh:          3,
	model.ComplexitySophisticated: 4,
}

// optimalTierRange is the recommended seniority band per complexity level.
var optimalTierRange = map[string][2]int{
	model.ComplexityLow:           {1, 3},
	model.ComplexityMedium:        {2, 4},
	model.ComplexityHigh:          {3, 5},
	model.ComplexitySophisticated: {4, 5},
}

// criticalSkillPatterns marks skill requirements whose absence is critical
// at a given complexity level.
var criticalSkillPatterns = map[string][]string{
	model.ComplexitySophisticated: {"architect", "lead", "senior", "principal"},
	model.ComplexityHigh:          {"senior", "lead"},
}

// learnableTier is the tier from which a resource is expected to be able to
// close a skill gap on the job.
const learnableTier = 3

// ValidateSkillMatch compares a resource's skill set and tier against a
// task's required skills and complexity.
func (e *Engine) ValidateSkillMatch(
	resourceID string,
	requiredSkills []string,
	complexity string,
	resources []model.Resource,
) (model.ValidationResult, error) {
	resource := resolveResource(resourceID, resources)
	if resource == nil {
		return resourceNotFound(model.ValidationTypeSkillMatch, resourceID), nil
	}

	details := &model.SkillMatchDetails{
		ResourceName: resource.Name,
		TierLevel:    resource.TierLevel,
		Complexity:   complexity,
		Matches:      []model.SkillMatch{},
		Gaps:         []model.SkillGap{},
	}

	if len(requiredSkills) == 0 {
		return e.matchByTier(resource, complexity, details), nil
	}

	for _, required := range requiredSkills {
		match, found := matchSkill(required, resource.SkillAreas)
		if found {
			details.Matches = append(details.Matches, match)
			continue
		}
		details.Gaps = append(details.Gaps, model.SkillGap{
			Skill:    required,
			Severity: gapSeverity(required, complexity),
			CanLearn: resource.TierLevel >= learnableTier,
		})
	}

	valid := true
	severity := model.SeverityInfo
	var message string

	criticalGaps := 0
	for _, gap := range details.Gaps {
		if gap.Severity == model.GapCritical {
			criticalGaps++
		}
	}

	switch {
	case len(details.Gaps) == 0:
		message = fmt.Sprintf("%s covers all %d required skill(s)", resource.Name, len(requiredSkills))
	case criticalGaps > 0:
		message = fmt.Sprintf("%s has %d skill gap(s), %d critical, for this assignment",
			resource.Name, len(details.Gaps), criticalGaps)
		if e.cfg.StrictSkillMatching {
			valid = false
			severity = model.SeverityError
		} else {
			severity = model.SeverityWarning
		}
		details.Recommendations = append(details.Recommendations,
			"Pair the resource with a senior team member or assign additional training")
	default:
		message = fmt.Sprintf("%s has %d moderate skill gap(s) for this assignment",
			resource.Name, len(details.Gaps))
		severity = model.SeverityWarning
		details.Recommendations = append(details.Recommendations,
			"Plan onboarding time for the missing skills")
	}

	if rng, ok := optimalTierRange[complexity]; ok {
		if resource.TierLevel < rng[0] || resource.TierLevel > rng[1] {
			details.Recommendations = append(details.Recommendations,
				fmt.Sprintf("Tier %d is outside the recommended range %d-%d for %s complexity work",
					resource.TierLevel, rng[0], rng[1], complexity))
			if severity == model.SeverityInfo {
				severity = model.SeverityWarning
			}
		}
	}

	return model.ValidationResult{
		Type:     model.ValidationTypeSkillMatch,
		Valid:    valid,
		Severity: severity,
		Message:  message,
		Details:  details,
	}, nil
}

// matchByTier is the fallback heuristic when no explicit skills are
// required: the resource's tier must meet the complexity's seniority floor.
func (e *Engine) matchByTier(resource *model.Resource, complexity string, details *model.SkillMatchDetails) model.ValidationResult {
	minTier, ok := minimumTierForComplexity[complexity]
	if !ok {
		minTier = 1
	}
	if resource.TierLevel < minTier {
		details.Recommendations = append(details.Recommendations,
			fmt.Sprintf("Assign a tier %d or higher resource for %s complexity work", minTier, complexity))
		return model.ValidationResult{
			Type:     model.ValidationTypeSkillMatch,
			Valid:    true,
			Severity: model.SeverityWarning,
			Message: fmt.Sprintf("%s (tier %d) is below the recommended tier %d for %s complexity work",
				resource.Name, resource.TierLevel, minTier, complexity),
			Details: details,
		}
	}
	return model.ValidationResult{
		Type:     model.ValidationTypeSkillMatch,
		Valid:    true,
		Severity: model.SeverityInfo,
		Message:  fmt.Sprintf("No specific skills required; %s meets the seniority floor", resource.Name),
		Details:  details,
	}
}

// matchSkill looks for the required skill in the resource's skill set,
// case-insensitively, accepting substring containment in either direction.
func matchSkill(required string, skillAreas []string) (model.SkillMatch, bool) {
	reqLower := strings.ToLower(strings.TrimSpace(required))
	for _, have := range skillAreas {
		haveLower := strings.ToLower(strings.TrimSpace(have))
		if haveLower == reqLower {
			return model.SkillMatch{
				Skill:       required,
				MatchedWith: have,
				MatchType:   model.SkillMatchExact,
				Confidence:  exactMatchConfidence,
			}, true
		}
		if strings.Contains(haveLower, reqLower) || strings.Contains(reqLower, haveLower) {
			return model.SkillMatch{
				Skill:       required,
				MatchedWith: have,
				MatchType:   model.SkillMatchSubstring,
				Confidence:  substringMatchConfidence,
			}, true
		}
	}
	return model.SkillMatch{}, false
}

// gapSeverity grades a missing skill: critical when the requirement text
// matches one of the complexity's critical patterns, moderate otherwise.
func gapSeverity(required, complexity string) string {
	reqLower := strings.ToLower(required)
	for _, pattern := range criticalSkillPatterns[complexity] {
		if strings.Contains(reqLower, pattern) {
			return model.GapCritical
		}
	}
	return model.GapModerate
}
