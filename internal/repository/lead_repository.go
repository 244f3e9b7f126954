package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sefazor/textback-landing/internal/models"
)

const defaultLeadLimit = 100

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{
		db: db,
	}
}

func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

// List returns leads newest first.
func (r *LeadRepository) List(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error) {
	limit := filter.Limit
	if limit <= 0 || limit > defaultLeadLimit {
		limit = defaultLeadLimit
	}

	q := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if filter.Plan != "" {
		q = q.Where("plan = ?", filter.Plan)
	}

	var leads []models.Lead
	err := q.Find(&leads).Error
	return leads, err
}
