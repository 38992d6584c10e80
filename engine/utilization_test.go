package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planweave/api/model"
)

func TestCalculateUtilization(t *testing.T) {
	e := newEngine()
	resources := []model.Resource{alice()}

	t.Run("sums active allocation percentages", func(t *testing.T) {
		allocations := []model.Allocation{
			allocationFor("Alice", "a1", 0.4, "2024-01-01", "2024-03-31"),
			allocationFor("Alice", "a2", 0.3, "2024-02-01", "2024-04-30"),
		}
		summary := e.CalculateUtilization("Alice", allocations, resources, nil)
		assert.InDelta(t, 0.7, summary.CurrentUtilization, 1e-9)
		assert.Len(t, summary.ActiveAllocations, 2)
	})

	t.Run("matches resource by id", func(t *testing.T) {
		allocations := []model.Allocation{allocationFor("Alice", "a1", 0.5, "", "")}
		summary := e.CalculateUtilization("res-alice", allocations, resources, nil)
		assert.InDelta(t, 0.5, summary.CurrentUtilization, 1e-9)
	})

	t.Run("matches resource name case-insensitively", func(t *testing.T) {
		allocations := []model.Allocation{allocationFor("alice", "a1", 0.5, "", "")}
		summary := e.CalculateUtilization("ALICE", allocations, resources, nil)
		assert.InDelta(t, 0.5, summary.CurrentUtilization, 1e-9)
	})

	t.Run("excludes completed and idle allocations", func(t *testing.T) {
		done := allocationFor("Alice", "a1", 0.5, "", "")
		done.Status = model.AllocationStatusCompleted
		idle := allocationFor("Alice", "a2", 0.5, "", "")
		idle.Status = model.AllocationStatusIdle
		summary := e.CalculateUtilization("Alice", []model.Allocation{done, idle}, resources, nil)
		assert.Zero(t, summary.CurrentUtilization)
		assert.Empty(t, summary.ActiveAllocations)
	})

	t.Run("missing percentage counts as full commitment", func(t *testing.T) {
		a := model.Allocation{ID: "a1", Resource: "Alice"}
		summary := e.CalculateUtilization("Alice", []model.Allocation{a}, resources, nil)
		assert.InDelta(t, 1.0, summary.CurrentUtilization, 1e-9)
	})

	t.Run("workload field is a percentage alias", func(t *testing.T) {
		a := model.Allocation{ID: "a1", Resource: "Alice", Workload: 0.25}
		summary := e.CalculateUtilization("Alice", []model.Allocation{a}, resources, nil)
		assert.InDelta(t, 0.25, summary.CurrentUtilization, 1e-9)
	})

	t.Run("date window restricts to intersecting allocations", func(t *testing.T) {
		allocations := []model.Allocation{
			allocationFor("Alice", "in", 0.4, "2024-01-01", "2024-01-31"),
			allocationFor("Alice", "out", 0.6, "2024-06-01", "2024-06-30"),
		}
		window := &model.DateRange{StartDate: "2024-01-15", EndDate: "2024-02-15"}
		summary := e.CalculateUtilization("Alice", allocations, resources, window)
		assert.InDelta(t, 0.4, summary.CurrentUtilization, 1e-9)
		assert.Len(t, summary.ActiveAllocations, 1)
		assert.Equal(t, "in", summary.ActiveAllocations[0].ID)
	})

	t.Run("open-ended allocations intersect any window", func(t *testing.T) {
		allocations := []model.Allocation{allocationFor("Alice", "open", 0.2, "", "")}
		window := &model.DateRange{StartDate: "2024-01-01", EndDate: "2024-01-31"}
		summary := e.CalculateUtilization("Alice", allocations, resources, window)
		assert.InDelta(t, 0.2, summary.CurrentUtilization, 1e-9)
	})

	t.Run("unknown resource yields zero", func(t *testing.T) {
		allocations := []model.Allocation{allocationFor("Alice", "a1", 0.5, "", "")}
		summary := e.CalculateUtilization("Nobody", allocations, resources, nil)
		assert.Zero(t, summary.CurrentUtilization)
		assert.Empty(t, summary.ActiveAllocations)
	})

	t.Run("empty input yields zero", func(t *testing.T) {
		summary := e.CalculateUtilization("Alice", nil, resources, nil)
		assert.Zero(t, summary.CurrentUtilization)
	})
}
