// api/util/notification_service.go

package util

import (
	"context"

	"go.uber.org/zap"

	logger "github.com/planweave/api/logging"
	"github.com/planweave/api/model"
)

type NotificationService struct {
	// You might want to add dependencies here, such as a message queue client
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyValidationOutcome informs planners about the outcome of a completed
// allocation validation run.
func (n *NotificationService) NotifyValidationOutcome(ctx context.Context, request model.AllocationRequest, risk, recommendation string) error {
	switch risk {
	case model.RiskHigh:
		logger.Warn("NOTIFICATION: Allocation flagged as high risk",
			zap.String("resource", request.Resource),
			zap.String("project", request.ProjectName),
			zap.String("recommendation", recommendation))
	case model.RiskMedium:
		logger.Info("NOTIFICATION: Allocation needs caution",
			zap.String("resource", request.Resource),
			zap.String("project", request.ProjectName),
			zap.String("recommendation", recommendation))
	default:
		logger.Info("NOTIFICATION: Allocation validated",
			zap.String("resource", request.Resource),
			zap.String("project", request.ProjectName),
			zap.String("recommendation", recommendation))
	}

	// Here you would implement the actual notification logic
	// This could involve sending messages to a queue, calling an external API, etc.

	return nil
}

// NotifyPlanners sends a broadcast message to the planning team.
func (n *NotificationService) NotifyPlanners(ctx context.Context, message string) error {
	logger.Info("Notifying planners", zap.String("message", message))
	return nil
}
