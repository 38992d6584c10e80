package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planweave/api/engine"
	"github.com/planweave/api/model"
)

func TestConfigDefaultsAndOverrides(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := engine.DefaultConfig()
		assert.False(t, cfg.StrictSkillMatching)
		assert.False(t, cfg.AllowOverAllocation)
		assert.Equal(t, 2, cfg.MaxSkillGapTolerance)
		assert.True(t, cfg.ValidateLeaveSchedules)
		assert.True(t, cfg.ValidateCapacityLimits)
	})

	t.Run("nil overrides keep defaults", func(t *testing.T) {
		assert.Equal(t, engine.DefaultConfig(), engine.NewEngine(nil).Config())
	})

	t.Run("overrides merge field by field", func(t *testing.T) {
		tolerance := 4
		e := engine.NewEngine(&engine.Overrides{
			StrictSkillMatching:  boolPtr(true),
			MaxSkillGapTolerance: &tolerance,
		})
		cfg := e.Config()
		assert.True(t, cfg.StrictSkillMatching)
		assert.Equal(t, 4, cfg.MaxSkillGapTolerance)
		assert.False(t, cfg.AllowOverAllocation)
		assert.True(t, cfg.ValidateLeaveSchedules)
	})
}

func resultTypes(results []model.ValidationResult) []string {
	types := make([]string, len(results))
	for i, r := range results {
		types[i] = r.Type
	}
	return types
}

func TestValidateAllocationCreation(t *testing.T) {
	e := newEngine()
	ctx := context.Background()

	t.Run("clean senior assignment proceeds at low risk", func(t *testing.T) {
		request := model.AllocationRequest{
			Resource:             "Bob",
			ProjectName:          "Phoenix",
			TaskName:             "platform design",
			Complexity:           model.ComplexityHigh,
			AllocationPercentage: 0.7,
			RequiredSkills:       []string{"Architecture", "System Design"},
			StartDate:            "2024-03-01",
			EndDate:              "2024-04-30",
		}
		results := e.ValidateAllocationCreation(ctx, request, nil, []model.Resource{bob()}, nil)

		require.Len(t, results, 5)
		assert.Equal(t, []string{
			model.ValidationTypeAvailability,
			model.ValidationTypeSkillMatch,
			model.ValidationTypeCapacityLimits,
			model.ValidationTypeWorkload,
			model.ValidationTypeCrossValidation,
		}, resultTypes(results))
		for _, r := range results {
			assert.True(t, r.Valid, "%s should be valid", r.Type)
		}

		details := crossDetails(t, results[4])
		assert.Equal(t, model.RiskLow, details.OverallRisk)
		assert.Equal(t, model.RecommendProceed, details.FinalRecommendation)
	})

	t.Run("capacity breach is rejected overall", func(t *testing.T) {
		allocations := []model.Allocation{
			allocationFor("Alice", "a1", 0.5, "2024-01-01", "2024-06-30"),
			allocationFor("Alice", "a2", 0.4, "2024-01-01", "2024-06-30"),
		}
		request := model.AllocationRequest{
			Resource:             "Alice",
			ProjectName:          "Phoenix",
			Complexity:           model.ComplexityMedium,
			AllocationPercentage: 0.5,
			StartDate:            "2024-07-01",
			EndDate:              "2024-07-31",
		}
		results := e.ValidateAllocationCreation(ctx, request, allocations, []model.Resource{alice()}, nil)

		require.Len(t, results, 5)
		capacity := results[2]
		assert.Equal(t, model.ValidationTypeCapacityLimits, capacity.Type)
		assert.False(t, capacity.Valid)
		assert.Equal(t, model.SeverityError, capacity.Severity)

		details := crossDetails(t, results[4])
		assert.Equal(t, model.RiskHigh, details.OverallRisk)
		assert.Equal(t, model.RecommendReject, details.FinalRecommendation)
		assert.Contains(t, details.Conflicts, "availability check passed but capacity check failed")
	})

	t.Run("leave overlap invalidates availability", func(t *testing.T) {
		leaves := []model.LeaveRecord{{
			ID: "l1", MemberName: "Alice", Type: "vacation",
			StartDate: "2024-02-10", EndDate: "2024-02-15",
		}}
		request := model.AllocationRequest{
			Resource:             "Alice",
			AllocationPercentage: 0.5,
			StartDate:            "2024-02-12",
			EndDate:              "2024-02-18",
		}
		results := e.ValidateAllocationCreation(ctx, request, nil, []model.Resource{alice()}, leaves)

		availability := results[0]
		assert.False(t, availability.Valid)
		assert.Equal(t, model.SeverityError, availability.Severity)
		details := availabilityDetails(t, availability)
		require.Len(t, details.Conflicts, 1)
		assert.Equal(t, model.ConflictLeave, details.Conflicts[0].Type)
	})

	t.Run("a failing step becomes a system_error result without losing the rest", func(t *testing.T) {
		request := model.AllocationRequest{
			Resource:             "Alice",
			AllocationPercentage: 0.5,
			StartDate:            "not-a-date",
			EndDate:              "2024-02-18",
		}
		results := e.ValidateAllocationCreation(ctx, request, nil, []model.Resource{alice()}, nil)

		require.Len(t, results, 5)
		assert.Equal(t, model.ValidationTypeSystemError, results[0].Type)
		assert.False(t, results[0].Valid)
		assert.Equal(t, model.SeverityError, results[0].Severity)

		sysDetails, ok := results[0].Details.(model.SystemErrorDetails)
		require.True(t, ok)
		assert.Equal(t, model.ValidationTypeAvailability, sysDetails.Stage)

		// The remaining checks still ran.
		assert.Equal(t, model.ValidationTypeSkillMatch, results[1].Type)
		assert.Equal(t, model.ValidationTypeCapacityLimits, results[2].Type)
		assert.Equal(t, model.ValidationTypeWorkload, results[3].Type)

		details := crossDetails(t, results[4])
		assert.Equal(t, model.RiskHigh, details.OverallRisk)
	})
}
