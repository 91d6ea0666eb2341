package services

import (
	"time"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"gorm.io/gorm"
)

// PaymentService is read-only: payments are created by the return and
// deposit flows and never mutated afterwards.
type PaymentService struct {
	db *gorm.DB
}

// NewPaymentService creates a new instance of PaymentService
func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

type PaymentFilter struct {
	CardId *int
	From   *time.Time
	To     *time.Time
}

// GetPayments retrieves Payment records, optionally filtered by card and
// payment date range.
func (s *PaymentService) GetPayments(filter PaymentFilter) ([]models.PaymentModel, error) {
	query := s.db.Preload("Card").Order("payment_date DESC")
	if filter.CardId != nil {
		query = query.Where("card_id = ?", *filter.CardId)
	}
	if filter.From != nil {
		query = query.Where("payment_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("payment_date <= ?", *filter.To)
	}

	var payments []models.PaymentModel
	if err := query.Find(&payments).Error; err != nil {
		return nil, apperrors.Wrap(err, "listing payments")
	}
	return payments, nil
}
