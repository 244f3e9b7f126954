package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sefazor/textback-landing/internal/models"
)

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{
		db: db,
	}
}

func (r *PlanRepository) GetBySlug(ctx context.Context, slug string) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) GetAll(ctx context.Context) ([]models.Plan, error) {
	var plans []models.Plan
	err := r.db.WithContext(ctx).Order("position ASC").Find(&plans).Error
	return plans, err
}
