package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planweave/api/engine"
	"github.com/planweave/api/model"
)

func skillDetails(t *testing.T, result model.ValidationResult) *model.SkillMatchDetails {
	t.Helper()
	details, ok := result.Details.(*model.SkillMatchDetails)
	require.True(t, ok, "expected skill match details, got %T", result.Details)
	return details
}

func TestValidateSkillMatch(t *testing.T) {
	e := newEngine()

	t.Run("full coverage is valid info", func(t *testing.T) {
		result, err := e.ValidateSkillMatch("Bob",
			[]string{"Architecture", "System Design"}, model.ComplexityHigh, []model.Resource{bob()})
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, model.SeverityInfo, result.Severity)

		details := skillDetails(t, result)
		assert.Len(t, details.Matches, 2)
		assert.Empty(t, details.Gaps)
		for _, m := range details.Matches {
			assert.Equal(t, model.SkillMatchExact, m.MatchType)
			assert.InDelta(t, 1.0, m.Confidence, 1e-9)
		}
	})

	t.Run("substring matches carry reduced confidence", func(t *testing.T) {
		result, err := e.ValidateSkillMatch("Bob",
			[]string{"Design"}, model.ComplexityMedium, []model.Resource{bob()})
		require.NoError(t, err)
		details := skillDetails(t, result)
		require.Len(t, details.Matches, 1)
		assert.Equal(t, model.SkillMatchSubstring, details.Matches[0].MatchType)
		assert.InDelta(t, 0.8, details.Matches[0].Confidence, 1e-9)
		assert.Equal(t, "System Design", details.Matches[0].MatchedWith)
	})

	t.Run("missing resource is an error finding", func(t *testing.T) {
		result, err := e.ValidateSkillMatch("Nobody", nil, model.ComplexityLow, []model.Resource{bob()})
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, model.SeverityError, result.Severity)
	})

	t.Run("empty requirements never report gaps", func(t *testing.T) {
		for _, complexity := range []string{
			model.ComplexityLow, model.ComplexityMedium,
			model.ComplexityHigh, model.ComplexitySophisticated,
		} {
			result, err := e.ValidateSkillMatch("Charlie", nil, complexity, []model.Resource{charlie()})
			require.NoError(t, err)
			assert.True(t, result.Valid)
			assert.Empty(t, skillDetails(t, result).Gaps)
		}
	})

	t.Run("tier below seniority floor warns without gaps", func(t *testing.T) {
		result, err := e.ValidateSkillMatch("Charlie", nil, model.ComplexitySophisticated, []model.Resource{charlie()})
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, model.SeverityWarning, result.Severity)
		assert.NotEmpty(t, skillDetails(t, result).Recommendations)
	})

	t.Run("critical gaps warn under default config", func(t *testing.T) {
		result, err := e.ValidateSkillMatch("Charlie",
			[]string{"Advanced Architecture", "Machine Learning"},
			model.ComplexitySophisticated, []model.Resource{charlie()})
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, model.SeverityWarning, result.Severity)

		details := skillDetails(t, result)
		require.Len(t, details.Gaps, 2)
		var critical int
		for _, gap := range details.Gaps {
			if gap.Severity == model.GapCritical {
				critical++
			}
			assert.False(t, gap.CanLearn) // tier 1 is below the learnable tier
		}
		assert.GreaterOrEqual(t, critical, 1)
	})

	t.Run("critical gaps invalidate under strict matching", func(t *testing.T) {
		strict := engine.NewEngine(&engine.Overrides{StrictSkillMatching: boolPtr(true)})
		result, err := strict.ValidateSkillMatch("Charlie",
			[]string{"Advanced Architecture", "Machine Learning"},
			model.ComplexitySophisticated, []model.Resource{charlie()})
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, model.SeverityError, result.Severity)
	})

	t.Run("moderate gaps only warn and are learnable for senior tiers", func(t *testing.T) {
		result, err := e.ValidateSkillMatch("Alice",
			[]string{"Terraform"}, model.ComplexityMedium, []model.Resource{alice()})
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, model.SeverityWarning, result.Severity)

		details := skillDetails(t, result)
		require.Len(t, details.Gaps, 1)
		assert.Equal(t, model.GapModerate, details.Gaps[0].Severity)
		assert.True(t, details.Gaps[0].CanLearn)
	})

	t.Run("tier outside optimal range raises info to warning", func(t *testing.T) {
		result, err := e.ValidateSkillMatch("Charlie",
			[]string{"HTML"}, model.ComplexityHigh, []model.Resource{charlie()})
		require.NoError(t, err)
		// All skills match, but tier 1 is outside the high-complexity band.
		assert.True(t, result.Valid)
		assert.Equal(t, model.SeverityWarning, result.Severity)
		details := skillDetails(t, result)
		assert.Empty(t, details.Gaps)
		assert.NotEmpty(t, details.Recommendations)
	})
}
