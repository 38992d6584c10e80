package engine_test

import (
	"os"
	"testing"

	"github.com/planweave/api/engine"
	logger "github.com/planweave/api/logging"
	"github.com/planweave/api/model"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "planweave-engine-test")
	if err != nil {
		panic(err)
	}
	logger.InitLogger(dir)
	code := m.Run()
	logger.Sync()
	os.RemoveAll(dir)
	os.Exit(code)
}

func newEngine() *engine.Engine {
	return engine.NewEngine(nil)
}

func boolPtr(b bool) *bool { return &b }

func bob() model.Resource {
	return model.Resource{
		ID:         "res-bob",
		Name:       "Bob",
		TierLevel:  4,
		SkillAreas: []string{"Architecture", "System Design", "Microservices"},
	}
}

func alice() model.Resource {
	return model.Resource{
		ID:        "res-alice",
		Name:      "Alice",
		TierLevel: 3,
		SkillAreas: []string{
			"Backend Development", "Databases", "API Design",
		},
	}
}

func charlie() model.Resource {
	return model.Resource{
		ID:         "res-charlie",
		Name:       "Charlie",
		TierLevel:  1,
		SkillAreas: []string{"HTML", "CSS", "JavaScript"},
	}
}

func allocationFor(member, id string, pct float64, start, end string) model.Allocation {
	return model.Allocation{
		ID:                   id,
		Resource:             member,
		ProjectName:          "Phoenix",
		TaskName:             "task-" + id,
		Complexity:           model.ComplexityMedium,
		AllocationPercentage: pct,
		Plan:                 model.AllocationPlan{TaskStart: start, TaskEnd: end},
	}
}
