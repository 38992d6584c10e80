package engine_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planweave/api/engine"
	"github.com/planweave/api/model"
)

func capacityDetails(t *testing.T, result model.ValidationResult) *model.CapacityDetails {
	t.Helper()
	details, ok := result.Details.(*model.CapacityDetails)
	require.True(t, ok, "expected capacity details, got %T", result.Details)
	return details
}

func TestValidateCapacityLimits(t *testing.T) {
	e := newEngine()
	resources := []model.Resource{alice()}

	t.Run("percentage bounds are enforced unconditionally", func(t *testing.T) {
		for _, pct := range []float64{0.0, 0.05, -0.3, 1.01, 2.0} {
			t.Run(fmt.Sprintf("pct=%v", pct), func(t *testing.T) {
				result, err := e.ValidateCapacityLimits("Alice", pct, nil, resources)
				require.NoError(t, err)
				assert.False(t, result.Valid)
				assert.Equal(t, model.SeverityError, result.Severity)
			})
		}
	})

	t.Run("bounds are checked before resource resolution", func(t *testing.T) {
		result, err := e.ValidateCapacityLimits("Nobody", 5.0, nil, resources)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.NotContains(t, result.Message, "not found")
	})

	t.Run("missing resource is an error finding", func(t *testing.T) {
		result, err := e.ValidateCapacityLimits("Nobody", 0.5, nil, resources)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Message, "Resource not found")
	})

	t.Run("within base capacity is valid info", func(t *testing.T) {
		allocations := []model.Allocation{allocationFor("Alice", "a1", 0.3, "", "")}
		result, err := e.ValidateCapacityLimits("Alice", 0.4, allocations, resources)
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, model.SeverityInfo, result.Severity)

		details := capacityDetails(t, result)
		assert.InDelta(t, 0.3, details.CurrentUtilization, 1e-9)
		assert.InDelta(t, 0.7, details.ProjectedUtilization, 1e-9)
	})

	t.Run("between capacity and threshold is a warning", func(t *testing.T) {
		allocations := []model.Allocation{allocationFor("Alice", "a1", 0.6, "", "")}
		result, err := e.ValidateCapacityLimits("Alice", 0.5, allocations, resources)
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, model.SeverityWarning, result.Severity)
		assert.Contains(t, result.Message, "base capacity")
	})

	t.Run("projection above threshold is invalid with a reduction hint", func(t *testing.T) {
		allocations := []model.Allocation{allocationFor("Alice", "a1", 0.9, "", "")}
		result, err := e.ValidateCapacityLimits("Alice", 0.5, allocations, resources)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, model.SeverityError, result.Severity)

		details := capacityDetails(t, result)
		assert.InDelta(t, 1.4, details.ProjectedUtilization, 1e-9)
		require.NotEmpty(t, details.Recommendations)
		assert.Contains(t, details.Recommendations[0], "0.30")
	})

	t.Run("reduction hint never drops below the minimum request", func(t *testing.T) {
		allocations := []model.Allocation{allocationFor("Alice", "a1", 1.19, "", "")}
		result, err := e.ValidateCapacityLimits("Alice", 0.5, allocations, resources)
		require.NoError(t, err)
		details := capacityDetails(t, result)
		require.NotEmpty(t, details.Recommendations)
		assert.Contains(t, details.Recommendations[0], "0.10")
	})

	t.Run("allowOverAllocation downgrades the breach to a warning", func(t *testing.T) {
		permissive := engine.NewEngine(&engine.Overrides{AllowOverAllocation: boolPtr(true)})
		allocations := []model.Allocation{allocationFor("Alice", "a1", 0.9, "", "")}
		result, err := permissive.ValidateCapacityLimits("Alice", 0.5, allocations, resources)
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, model.SeverityWarning, result.Severity)
	})

	t.Run("disabled capacity enforcement downgrades the breach", func(t *testing.T) {
		relaxed := engine.NewEngine(&engine.Overrides{ValidateCapacityLimits: boolPtr(false)})
		allocations := []model.Allocation{allocationFor("Alice", "a1", 0.9, "", "")}
		result, err := relaxed.ValidateCapacityLimits("Alice", 0.5, allocations, resources)
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, model.SeverityWarning, result.Severity)
	})

	t.Run("high projection appends a monitoring recommendation", func(t *testing.T) {
		allocations := []model.Allocation{allocationFor("Alice", "a1", 0.5, "", "")}
		result, err := e.ValidateCapacityLimits("Alice", 0.45, allocations, resources)
		require.NoError(t, err)
		assert.True(t, result.Valid)

		details := capacityDetails(t, result)
		require.Len(t, details.Recommendations, 1)
		assert.Contains(t, details.Recommendations[0], "Monitor")
	})
}
