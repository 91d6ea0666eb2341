package services

import (
	"testing"
	"time"

	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createPayment(t *testing.T, db *gorm.DB, cardId int, amount string, ref models.PaymentReference, when time.Time) models.PaymentModel {
	t.Helper()

	payment := models.PaymentModel{
		CardId:        cardId,
		Amount:        decimal.RequireFromString(amount),
		ReferenceType: ref,
		PaymentMethod: "cash",
		PaymentDate:   when,
		ReceiptNumber: uuid.NewString(),
	}
	require.NoError(t, db.Create(&payment).Error)
	return payment
}

func TestGetPaymentsFilters(t *testing.T) {
	db := newTestDB(t)
	service := NewPaymentService(db)

	first := createCard(t, db, "0")
	second := createCard(t, db, "0")

	jan := time.Date(2026, 1, 15, 10, 0, 0, 0, time.Local)
	mar := time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local)

	createPayment(t, db, first.Id, "10000", models.PaymentDeposit, jan)
	createPayment(t, db, first.Id, "5000", models.PaymentFine, mar)
	createPayment(t, db, second.Id, "20000", models.PaymentDeposit, mar)

	all, err := service.GetPayments(PaymentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byCard, err := service.GetPayments(PaymentFilter{CardId: &first.Id})
	require.NoError(t, err)
	assert.Len(t, byCard, 2)

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local)
	recent, err := service.GetPayments(PaymentFilter{From: &from})
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	narrow, err := service.GetPayments(PaymentFilter{CardId: &first.Id, From: &from})
	require.NoError(t, err)
	require.Len(t, narrow, 1)
	assert.Equal(t, models.PaymentFine, narrow[0].ReferenceType)
}

func TestGetPaymentsOrdering(t *testing.T) {
	db := newTestDB(t)
	service := NewPaymentService(db)

	card := createCard(t, db, "0")
	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)
	newer := time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local)

	createPayment(t, db, card.Id, "1000", models.PaymentDeposit, older)
	latest := createPayment(t, db, card.Id, "2000", models.PaymentDeposit, newer)

	payments, err := service.GetPayments(PaymentFilter{})
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, latest.ReceiptNumber, payments[0].ReceiptNumber, "newest payment comes first")
}
