package services

import (
	"testing"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueCard(t *testing.T) {
	db := newTestDB(t)
	service := NewCardService(db, NewCardLocks())

	reader := models.ReaderModel{Fullname: "New Member"}
	require.NoError(t, db.Create(&reader).Error)

	card, err := service.IssueCard(reader.Id)
	require.NoError(t, err)
	assert.Equal(t, models.CardActive, card.Status)
	assert.True(t, card.DepositBalance.IsZero())
	assert.Equal(t, reader.Id, card.ReaderId)

	_, err = service.IssueCard(999)
	assertKind(t, err, apperrors.KindNotFound)
}

func TestDepositCreditsBalanceAndRecordsPayment(t *testing.T) {
	db := newTestDB(t)
	service := NewCardService(db, NewCardLocks())

	card := createCard(t, db, "10000")

	result, err := service.Deposit(card.Id, &DepositRequest{
		Amount:        decimal.RequireFromString("40000"),
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.True(t, result.NewBalance.Equal(decimal.RequireFromString("50000")))
	assert.NotEmpty(t, result.ReceiptNumber)

	var cardAfter models.LibraryCardModel
	require.NoError(t, db.First(&cardAfter, card.Id).Error)
	assert.True(t, cardAfter.DepositBalance.Equal(decimal.RequireFromString("50000")))

	var payment models.PaymentModel
	require.NoError(t, db.Where("receipt_number = ?", result.ReceiptNumber).First(&payment).Error)
	assert.Equal(t, models.PaymentDeposit, payment.ReferenceType)
	assert.True(t, payment.Amount.Equal(decimal.RequireFromString("40000")))
}

func TestDepositValidation(t *testing.T) {
	db := newTestDB(t)
	service := NewCardService(db, NewCardLocks())

	card := createCard(t, db, "0")

	_, err := service.Deposit(card.Id, &DepositRequest{
		Amount: decimal.Zero, PaymentMethod: "cash",
	})
	assertKind(t, err, apperrors.KindValidation)

	_, err = service.Deposit(card.Id, &DepositRequest{
		Amount: decimal.RequireFromString("1000"), PaymentMethod: "",
	})
	assertKind(t, err, apperrors.KindValidation)
}

func TestDepositOnClosedCard(t *testing.T) {
	db := newTestDB(t)
	service := NewCardService(db, NewCardLocks())

	card := createCard(t, db, "0")
	_, err := service.UpdateStatus(card.Id, models.CardClosed)
	require.NoError(t, err)

	_, err = service.Deposit(card.Id, &DepositRequest{
		Amount: decimal.RequireFromString("1000"), PaymentMethod: "cash",
	})
	assertKind(t, err, apperrors.KindState)
}

func TestUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	service := NewCardService(db, NewCardLocks())

	card := createCard(t, db, "0")

	updated, err := service.UpdateStatus(card.Id, models.CardSuspended)
	require.NoError(t, err)
	assert.Equal(t, models.CardSuspended, updated.Status)

	_, err = service.UpdateStatus(card.Id, "Frozen")
	assertKind(t, err, apperrors.KindValidation)

	_, err = service.UpdateStatus(999, models.CardActive)
	assertKind(t, err, apperrors.KindNotFound)
}
