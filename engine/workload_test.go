package engine_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planweave/api/model"
)

func workloadDetails(t *testing.T, result model.ValidationResult) *model.WorkloadDetails {
	t.Helper()
	details, ok := result.Details.(*model.WorkloadDetails)
	require.True(t, ok, "expected workload details, got %T", result.Details)
	return details
}

func sophisticatedAllocations(member string, n int) []model.Allocation {
	var out []model.Allocation
	for i := 0; i < n; i++ {
		a := allocationFor(member, fmt.Sprintf("s%d", i), 0.1, "", "")
		a.Complexity = model.ComplexitySophisticated
		out = append(out, a)
	}
	return out
}

func TestValidateWorkloadConstraints(t *testing.T) {
	e := newEngine()
	resources := []model.Resource{alice(), charlie()}
	request := model.AllocationRequest{
		Resource:             "Alice",
		ProjectName:          "Phoenix",
		Complexity:           model.ComplexityMedium,
		AllocationPercentage: 0.2,
	}

	t.Run("missing resource is an error finding", func(t *testing.T) {
		req := request
		req.Resource = "Nobody"
		result, err := e.ValidateWorkloadConstraints(req, nil, resources)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, model.SeverityError, result.Severity)
	})

	t.Run("light workload is sustainable", func(t *testing.T) {
		allocations := []model.Allocation{allocationFor("Alice", "a1", 0.3, "", "")}
		result, err := e.ValidateWorkloadConstraints(request, allocations, resources)
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, model.SeverityInfo, result.Severity)

		details := workloadDetails(t, result)
		assert.Equal(t, 1, details.CurrentTaskCount)
		assert.InDelta(t, 100, details.SustainabilityScore, 1e-9)
	})

	t.Run("five concurrent tasks hit the hard ceiling", func(t *testing.T) {
		var allocations []model.Allocation
		for i := 0; i < 5; i++ {
			allocations = append(allocations, allocationFor("Alice", fmt.Sprintf("a%d", i), 0.1, "", ""))
		}
		result, err := e.ValidateWorkloadConstraints(request, allocations, resources)
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, model.SeverityWarning, result.Severity)
		assert.Contains(t, result.Message, "concurrent task limit")

		details := workloadDetails(t, result)
		assert.Equal(t, 5, details.CurrentTaskCount)
	})

	t.Run("completed tasks do not count toward the ceiling", func(t *testing.T) {
		var allocations []model.Allocation
		for i := 0; i < 5; i++ {
			a := allocationFor("Alice", fmt.Sprintf("a%d", i), 0.1, "", "")
			a.Status = model.AllocationStatusCompleted
			allocations = append(allocations, a)
		}
		result, err := e.ValidateWorkloadConstraints(request, allocations, resources)
		require.NoError(t, err)
		assert.Equal(t, 0, workloadDetails(t, result).CurrentTaskCount)
	})

	t.Run("heavy over-commitment is invalid", func(t *testing.T) {
		allocations := []model.Allocation{
			allocationFor("Alice", "a1", 1.0, "", ""),
			allocationFor("Alice", "a2", 1.0, "", ""),
		}
		req := request
		req.AllocationPercentage = 1.0
		result, err := e.ValidateWorkloadConstraints(req, allocations, resources)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, model.SeverityError, result.Severity)
	})

	t.Run("sustainability score never increases with more sophisticated tasks", func(t *testing.T) {
		req := model.AllocationRequest{
			Resource:             "Charlie",
			Complexity:           model.ComplexityLow,
			AllocationPercentage: 0.1,
		}
		previous := 101.0
		for n := 0; n <= 4; n++ {
			result, err := e.ValidateWorkloadConstraints(req, sophisticatedAllocations("Charlie", n), resources)
			require.NoError(t, err)
			score := workloadDetails(t, result).SustainabilityScore
			assert.LessOrEqual(t, score, previous, "score increased at n=%d", n)
			previous = score
		}
	})

	t.Run("senior tier earns a score bonus", func(t *testing.T) {
		allocations := []model.Allocation{
			allocationFor("Alice", "a1", 0.5, "", ""),
			allocationFor("Charlie", "c1", 0.5, "", ""),
		}
		seniorReq := model.AllocationRequest{Resource: "Alice", AllocationPercentage: 0.8}
		juniorReq := model.AllocationRequest{Resource: "Charlie", AllocationPercentage: 0.8}

		senior, err := e.ValidateWorkloadConstraints(seniorReq, allocations, resources)
		require.NoError(t, err)
		junior, err := e.ValidateWorkloadConstraints(juniorReq, allocations, resources)
		require.NoError(t, err)

		seniorScore := workloadDetails(t, senior).SustainabilityScore
		juniorScore := workloadDetails(t, junior).SustainabilityScore
		assert.InDelta(t, 5, seniorScore-juniorScore, 1e-9)
	})

	t.Run("complexity imbalance appends a rebalancing recommendation", func(t *testing.T) {
		req := model.AllocationRequest{
			Resource:             "Alice",
			Complexity:           model.ComplexitySophisticated,
			AllocationPercentage: 0.1,
		}
		result, err := e.ValidateWorkloadConstraints(req, sophisticatedAllocations("Alice", 2), resources)
		require.NoError(t, err)

		details := workloadDetails(t, result)
		var found bool
		for _, rec := range details.Recommendations {
			if strings.Contains(strings.ToLower(rec), "rebalance") {
				found = true
			}
		}
		assert.True(t, found, "expected a rebalancing recommendation, got %v", details.Recommendations)
	})
}
