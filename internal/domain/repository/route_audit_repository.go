package repository

import (
	"home-visit-planner/internal/domain/entity"

	"gorm.io/gorm"
)

type RouteAuditRepository interface {
	Create(db *gorm.DB, audit *entity.RouteAudit) error
}
