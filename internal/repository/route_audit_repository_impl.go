package repository

import (
	"home-visit-planner/internal/domain/entity"
	domainRepo "home-visit-planner/internal/domain/repository"

	"gorm.io/gorm"
)

type routeAuditRepository struct{}

func NewRouteAuditRepository() domainRepo.RouteAuditRepository {
	return &routeAuditRepository{}
}

func (r *routeAuditRepository) Create(db *gorm.DB, audit *entity.RouteAudit) error {
	return db.Create(audit).Error
}
