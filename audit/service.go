// api/audit/service.go
package audit

import (
	"context"
	"time"
)

type Service interface {
	LogValidation(ctx context.Context, log ValidationAudit) error
	QueryLogs(ctx context.Context, from, to time.Time, userID, memberName string) ([]ValidationAudit, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogValidation(ctx context.Context, log ValidationAudit) error {
	return s.repo.LogValidation(ctx, log)
}

func (s *service) QueryLogs(ctx context.Context, from, to time.Time, userID, memberName string) ([]ValidationAudit, error) {
	return s.repo.QueryLogs(ctx, from, to, userID, memberName)
}
