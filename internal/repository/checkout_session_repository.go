package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sefazor/textback-landing/internal/models"
)

type CheckoutSessionRepository struct {
	db *gorm.DB
}

func NewCheckoutSessionRepository(db *gorm.DB) *CheckoutSessionRepository {
	return &CheckoutSessionRepository{
		db: db,
	}
}

func (r *CheckoutSessionRepository) Create(ctx context.Context, session *models.CheckoutSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *CheckoutSessionRepository) GetByStripeID(ctx context.Context, stripeSessionID string) (*models.CheckoutSession, error) {
	var session models.CheckoutSession
	err := r.db.WithContext(ctx).Where("stripe_session_id = ?", stripeSessionID).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *CheckoutSessionRepository) Update(ctx context.Context, session *models.CheckoutSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}
