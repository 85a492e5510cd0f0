package auditlog

import (
	"context"
	"encoding/json"
	"log"
)

type Service interface {
	LogAction(ctx context.Context, userID *uint, action string, details map[string]interface{}, ip string, status string) error
	List(ctx context.Context, filter Filter) ([]AuditLog, int64, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// LogAction appends an audit entry. Audit failures are logged but never
// propagated as request failures.
func (s *service) LogAction(ctx context.Context, userID *uint, action string, details map[string]interface{}, ip string, status string) error {
	if details == nil {
		details = map[string]interface{}{}
	}

	detailsJSON, err := json.Marshal(details)
	if err != nil {
		detailsJSON = []byte("{}")
	}

	entry := &AuditLog{
		UserID:    userID,
		Action:    action,
		Details:   string(detailsJSON),
		IPAddress: ip,
		Status:    status,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		log.Printf("audit log write failed for action %s: %v", action, err)
		return err
	}
	return nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]AuditLog, int64, error) {
	return s.repo.List(ctx, filter)
}
