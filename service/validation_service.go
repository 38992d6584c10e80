package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/planweave/api/audit"
	"github.com/planweave/api/dao"
	"github.com/planweave/api/engine"
	planweave_errors "github.com/planweave/api/errors"
	logger "github.com/planweave/api/logging"
	"github.com/planweave/api/model"
	"github.com/planweave/api/util"
)

// IValidationService is the application-facing surface of the validation
// engine: it joins stored planning data with the pure checks.
type IValidationService interface {
	ValidateAllocation(ctx context.Context, request model.AllocationRequest, userID string) ([]model.ValidationResult, error)
	CheckAvailability(ctx context.Context, resourceID string, rng model.DateRange) (model.ValidationResult, error)
	CheckSkillMatch(ctx context.Context, resourceID string, requiredSkills []string, complexity string) (model.ValidationResult, error)
	CheckCapacity(ctx context.Context, resourceID string, requestedPercentage float64) (model.ValidationResult, error)
	CheckWorkload(ctx context.Context, request model.AllocationRequest) (model.ValidationResult, error)
	GetValidationReport(ctx context.Context, reportID string) ([]model.ValidationResult, error)
}

// ValidationEvent is the payload published on the event bus after a
// validation run.
type ValidationEvent struct {
	ReportID            string
	Request             model.AllocationRequest
	OverallRisk         string
	FinalRecommendation string
}

// ValidationService handles business logic for allocation validation
type ValidationService struct {
	engine          *engine.Engine
	planningDAO     *dao.PlanningDAO
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
	auditService    audit.Service
}

// NewValidationService creates a new instance of ValidationService
func NewValidationService(
	eng *engine.Engine,
	planningDAO *dao.PlanningDAO,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
	auditService audit.Service,
) *ValidationService {
	service := &ValidationService{
		engine:          eng,
		planningDAO:     planningDAO,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		auditService:    auditService,
	}

	// Set up event subscriptions
	eventBus.Subscribe("validation.completed", service.handleValidationCompleted)

	return service
}

func (s *ValidationService) handleValidationCompleted(ctx context.Context, event util.Event) error {
	payload, ok := event.Payload.(ValidationEvent)
	if !ok {
		logger.Error("Invalid event payload type", zap.Any("payload", event.Payload))
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}

	logger.Info("Validation completed event received",
		zap.String("reportID", payload.ReportID),
		zap.String("risk", payload.OverallRisk))

	if err := s.notificationSvc.NotifyValidationOutcome(ctx, payload.Request, payload.OverallRisk, payload.FinalRecommendation); err != nil {
		logger.Warn("Failed to send validation notification",
			zap.Error(err), zap.String("reportID", payload.ReportID))
	}

	return nil
}

// fetchPlanningData loads resources, allocations and leave records
// concurrently from the planning store.
func (s *ValidationService) fetchPlanningData(ctx context.Context) ([]model.Resource, []model.Allocation, []model.LeaveRecord, error) {
	var (
		resources   []model.Resource
		allocations []model.Allocation
		leaves      []model.LeaveRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resources, err = s.planningDAO.GetResources(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		allocations, err = s.planningDAO.GetAllocations(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		leaves, err = s.planningDAO.GetLeaveRecords(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return resources, allocations, leaves, nil
}

// ValidateAllocation runs the full validation pipeline for a candidate
// allocation against the stored planning data.
func (s *ValidationService) ValidateAllocation(ctx context.Context, request model.AllocationRequest, userID string) ([]model.ValidationResult, error) {
	if err := s.validationUtil.ValidateAllocationRequest(request); err != nil {
		logger.Warn("Rejected malformed allocation request", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", planweave_errors.ErrInvalidAllocationData, err)
	}

	resources, allocations, leaves, err := s.fetchPlanningData(ctx)
	if err != nil {
		return nil, err
	}

	results := s.engine.ValidateAllocationCreation(ctx, request, allocations, resources, leaves)

	reportID := uuid.New().String()
	if err := s.cacheService.SetValidationReport(ctx, reportID, results); err != nil {
		logger.Warn("Failed to cache validation report",
			zap.Error(err), zap.String("reportID", reportID))
	}

	risk, recommendation := overallOutcome(results)
	s.eventBus.Publish(ctx, "validation.completed", ValidationEvent{
		ReportID:            reportID,
		Request:             request,
		OverallRisk:         risk,
		FinalRecommendation: recommendation,
	})

	s.recordAudit(ctx, request, userID, risk, recommendation, results)

	return results, nil
}

func (s *ValidationService) recordAudit(ctx context.Context, request model.AllocationRequest, userID, risk, recommendation string, results []model.ValidationResult) {
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		logger.Warn("Failed to marshal validation results for audit", zap.Error(err))
		resultsJSON = nil
	}
	entry := audit.ValidationAudit{
		Timestamp:           time.Now(),
		UserID:              userID,
		MemberName:          request.Resource,
		ProjectName:         request.ProjectName,
		TaskName:            request.TaskName,
		OverallRisk:         risk,
		FinalRecommendation: recommendation,
		ResultCount:         len(results),
		Results:             resultsJSON,
	}
	if err := s.auditService.LogValidation(ctx, entry); err != nil {
		logger.Warn("Failed to write validation audit entry", zap.Error(err))
	}
}

// overallOutcome pulls the risk classification out of the cross-validation
// result at the tail of the pipeline output.
func overallOutcome(results []model.ValidationResult) (string, string) {
	for i := len(results) - 1; i >= 0; i-- {
		if results[i].Type != model.ValidationTypeCrossValidation {
			continue
		}
		if details, ok := results[i].Details.(*model.CrossValidationDetails); ok {
			return details.OverallRisk, details.FinalRecommendation
		}
	}
	return model.RiskHigh, model.RecommendReject
}

// CheckAvailability runs the availability check against stored data.
func (s *ValidationService) CheckAvailability(ctx context.Context, resourceID string, rng model.DateRange) (model.ValidationResult, error) {
	resources, allocations, leaves, err := s.fetchPlanningData(ctx)
	if err != nil {
		return model.ValidationResult{}, err
	}
	return s.engine.ValidateResourceAvailability(resourceID, rng, allocations, resources, leaves)
}

// CheckSkillMatch runs the skill match check against stored data.
func (s *ValidationService) CheckSkillMatch(ctx context.Context, resourceID string, requiredSkills []string, complexity string) (model.ValidationResult, error) {
	resources, err := s.planningDAO.GetResources(ctx)
	if err != nil {
		return model.ValidationResult{}, err
	}
	return s.engine.ValidateSkillMatch(resourceID, requiredSkills, complexity, resources)
}

// CheckCapacity runs the capacity limit check against stored data.
func (s *ValidationService) CheckCapacity(ctx context.Context, resourceID string, requestedPercentage float64) (model.ValidationResult, error) {
	resources, allocations, _, err := s.fetchPlanningData(ctx)
	if err != nil {
		return model.ValidationResult{}, err
	}
	return s.engine.ValidateCapacityLimits(resourceID, requestedPercentage, allocations, resources)
}

// CheckWorkload runs the workload constraint check against stored data.
func (s *ValidationService) CheckWorkload(ctx context.Context, request model.AllocationRequest) (model.ValidationResult, error) {
	resources, allocations, _, err := s.fetchPlanningData(ctx)
	if err != nil {
		return model.ValidationResult{}, err
	}
	return s.engine.ValidateWorkloadConstraints(request, allocations, resources)
}

// GetValidationReport re-fetches a cached validation report.
func (s *ValidationService) GetValidationReport(ctx context.Context, reportID string) ([]model.ValidationResult, error) {
	results, err := s.cacheService.GetValidationReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if results == nil {
		return nil, planweave_errors.ErrReportNotFound
	}
	return results, nil
}
