package service

import (
	"context"

	"home-visit-planner/internal/domain/entity"
	"home-visit-planner/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RouteAuditService persists an aggregate trail of planning requests.
type RouteAuditService interface {
	Record(ctx context.Context, audit *entity.RouteAudit) error
}

type routeAuditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.RouteAuditRepository
}

func NewRouteAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.RouteAuditRepository) RouteAuditService {
	return &routeAuditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

// Record writes one planning outcome. Failures are logged and returned, but
// callers treat the audit trail as best-effort.
func (s *routeAuditService) Record(ctx context.Context, audit *entity.RouteAudit) error {
	if audit.ID == uuid.Nil {
		audit.ID = uuid.New()
	}

	if err := s.auditRepo.Create(s.db.WithContext(ctx), audit); err != nil {
		s.log.Warnf("Failed to create route audit: %+v", err)
		return err
	}

	return nil
}
