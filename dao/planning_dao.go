// api/dao/planning_dao.go
package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	planweave_errors "github.com/planweave/api/errors"
	logger "github.com/planweave/api/logging"
	"github.com/planweave/api/model"
)

// Graph labels and relationships of the planning store.
const (
	LabelTeamMember  = "TeamMember"
	LabelAllocation  = "Allocation"
	LabelLeaveRecord = "LeaveRecord"
	RelAllocatedTo   = "ALLOCATED_TO"
	RelHasLeave      = "HAS_LEAVE"
)

// PlanningDAO reads and writes the planning graph: team members, their
// allocations and their leave records.
type PlanningDAO struct {
	Driver neo4j.Driver
}

func NewPlanningDAO(driver neo4j.Driver) *PlanningDAO {
	dao := &PlanningDAO{Driver: driver}
	// Ensure unique constraint on TeamMember ID
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for TeamMember", zap.Error(err))
	}
	return dao
}

func (dao *PlanningDAO) EnsureUniqueConstraint(ctx context.Context) error {
	logger.Info("Ensuring unique constraint on TeamMember ID")
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_team_member_id IF NOT EXISTS
        FOR (m:` + LabelTeamMember + `) REQUIRE m.id IS UNIQUE
        `
		_, err := transaction.Run(query, nil)
		return nil, err
	})

	if err != nil {
		logger.Error("Failed to ensure unique constraint on TeamMember ID", zap.Error(err))
		return err
	}

	return nil
}

// GetResources returns every team member in the planning graph.
func (dao *PlanningDAO) GetResources(ctx context.Context) ([]model.Resource, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `MATCH (m:` + LabelTeamMember + `) RETURN m ORDER BY m.name`
		records, err := transaction.Run(query, nil)
		if err != nil {
			return nil, err
		}

		var resources []model.Resource
		for records.Next() {
			node, ok := records.Record().Values[0].(neo4j.Node)
			if !ok {
				continue
			}
			resources = append(resources, resourceFromProps(node.Props))
		}
		return resources, records.Err()
	})

	if err != nil {
		logger.Error("Failed to fetch team members", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", planweave_errors.ErrDatabaseOperation, err)
	}

	return result.([]model.Resource), nil
}

// GetResourceByID fetches one team member by ID.
func (dao *PlanningDAO) GetResourceByID(ctx context.Context, resourceID string) (*model.Resource, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `MATCH (m:` + LabelTeamMember + ` {id: $id}) RETURN m`
		records, err := transaction.Run(query, map[string]interface{}{"id": resourceID})
		if err != nil {
			return nil, err
		}
		if records.Next() {
			node, ok := records.Record().Values[0].(neo4j.Node)
			if !ok {
				return nil, fmt.Errorf("unexpected record shape for team member %s", resourceID)
			}
			resource := resourceFromProps(node.Props)
			return &resource, nil
		}
		return nil, planweave_errors.ErrResourceNotFound
	})

	if err != nil {
		if err == planweave_errors.ErrResourceNotFound {
			return nil, err
		}
		logger.Error("Failed to fetch team member", zap.String("resourceID", resourceID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", planweave_errors.ErrDatabaseOperation, err)
	}

	return result.(*model.Resource), nil
}

// GetAllocations returns every allocation in the planning graph.
func (dao *PlanningDAO) GetAllocations(ctx context.Context) ([]model.Allocation, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (a:` + LabelAllocation + `)-[:` + RelAllocatedTo + `]->(m:` + LabelTeamMember + `)
        RETURN a, m.name ORDER BY a.id`
		records, err := transaction.Run(query, nil)
		if err != nil {
			return nil, err
		}

		var allocations []model.Allocation
		for records.Next() {
			values := records.Record().Values
			node, ok := values[0].(neo4j.Node)
			if !ok {
				continue
			}
			allocation := allocationFromProps(node.Props)
			if memberName, ok := values[1].(string); ok {
				allocation.Resource = memberName
			}
			allocations = append(allocations, allocation)
		}
		return allocations, records.Err()
	})

	if err != nil {
		logger.Error("Failed to fetch allocations", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", planweave_errors.ErrDatabaseOperation, err)
	}

	return result.([]model.Allocation), nil
}

// GetLeaveRecords returns every leave record in the planning graph.
func (dao *PlanningDAO) GetLeaveRecords(ctx context.Context) ([]model.LeaveRecord, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (m:` + LabelTeamMember + `)-[:` + RelHasLeave + `]->(l:` + LabelLeaveRecord + `)
        RETURN l, m.name ORDER BY l.start_date`
		records, err := transaction.Run(query, nil)
		if err != nil {
			return nil, err
		}

		var leaves []model.LeaveRecord
		for records.Next() {
			values := records.Record().Values
			node, ok := values[0].(neo4j.Node)
			if !ok {
				continue
			}
			leave := leaveFromProps(node.Props)
			if memberName, ok := values[1].(string); ok {
				leave.MemberName = memberName
			}
			leaves = append(leaves, leave)
		}
		return leaves, records.Err()
	})

	if err != nil {
		logger.Error("Failed to fetch leave records", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", planweave_errors.ErrDatabaseOperation, err)
	}

	return result.([]model.LeaveRecord), nil
}

// CreateAllocation persists an allocation the caller has accepted after
// validation, linking it to the referenced team member.
func (dao *PlanningDAO) CreateAllocation(ctx context.Context, allocation model.Allocation) (string, error) {
	start := time.Now()
	logger.Info("Creating new allocation", zap.String("resource", allocation.Resource))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	if allocation.ID == "" {
		allocation.ID = uuid.New().String()
	}

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (m:` + LabelTeamMember + `)
        WHERE m.id = $resource OR toLower(m.name) = toLower($resource)
        CREATE (a:` + LabelAllocation + ` {id: $id})
        SET a += $props
        CREATE (a)-[:` + RelAllocatedTo + `]->(m)
        RETURN a.id`
		records, err := transaction.Run(query, map[string]interface{}{
			"resource": allocation.Resource,
			"id":       allocation.ID,
			"props": map[string]interface{}{
				"project_name":          allocation.ProjectName,
				"task_name":             allocation.TaskName,
				"complexity":            allocation.Complexity,
				"allocation_percentage": allocation.Percentage(),
				"status":                allocation.Status,
				"task_start":            allocation.Plan.TaskStart,
				"task_end":              allocation.Plan.TaskEnd,
			},
		})
		if err != nil {
			return nil, err
		}
		if !records.Next() {
			return nil, planweave_errors.ErrResourceNotFound
		}
		return nil, records.Err()
	})

	if err != nil {
		if err == planweave_errors.ErrResourceNotFound {
			return "", err
		}
		logger.Error("Failed to create allocation",
			zap.String("resource", allocation.Resource), zap.Error(err))
		return "", fmt.Errorf("%w: %v", planweave_errors.ErrDatabaseOperation, err)
	}

	logger.Info("Allocation created",
		zap.String("allocationID", allocation.ID),
		zap.Duration("duration", time.Since(start)))
	return allocation.ID, nil
}

func resourceFromProps(props map[string]interface{}) model.Resource {
	return model.Resource{
		ID:                      stringProp(props, "id"),
		Name:                    stringProp(props, "name"),
		TierLevel:               intProp(props, "tier_level"),
		Type:                    stringProp(props, "type"),
		MaxCapacity:             floatProp(props, "max_capacity"),
		OverAllocationThreshold: floatProp(props, "over_allocation_threshold"),
		SkillAreas:              stringSliceProp(props, "skill_areas"),
	}
}

func allocationFromProps(props map[string]interface{}) model.Allocation {
	return model.Allocation{
		ID:                   stringProp(props, "id"),
		ProjectName:          stringProp(props, "project_name"),
		TaskName:             stringProp(props, "task_name"),
		Complexity:           stringProp(props, "complexity"),
		AllocationPercentage: floatProp(props, "allocation_percentage"),
		Workload:             floatProp(props, "workload"),
		Status:               stringProp(props, "status"),
		Plan: model.AllocationPlan{
			TaskStart: stringProp(props, "task_start"),
			TaskEnd:   stringProp(props, "task_end"),
		},
	}
}

func leaveFromProps(props map[string]interface{}) model.LeaveRecord {
	return model.LeaveRecord{
		ID:        stringProp(props, "id"),
		Type:      stringProp(props, "type"),
		StartDate: stringProp(props, "start_date"),
		EndDate:   stringProp(props, "end_date"),
	}
}

func stringProp(props map[string]interface{}, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}

func intProp(props map[string]interface{}, key string) int {
	if v, ok := props[key].(int64); ok {
		return int(v)
	}
	return 0
}

func floatProp(props map[string]interface{}, key string) float64 {
	switch v := props[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	default:
		return 0
	}
}

func stringSliceProp(props map[string]interface{}, key string) []string {
	raw, ok := props[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
