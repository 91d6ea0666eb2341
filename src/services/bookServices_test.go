package services

import (
	"testing"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCopyDefaults(t *testing.T) {
	db := newTestDB(t)
	service := NewBookService(db)

	title := createTitle(t, db, "Field Guide")

	copy, err := service.CreateCopy(&models.BookCopyModel{
		BookTitleId: title.Id,
		Price:       decimal.RequireFromString("15000"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ConditionNormal, copy.Condition)
	assert.Equal(t, models.CopyAvailable, copy.AvailabilityStatus)

	_, err = service.CreateCopy(&models.BookCopyModel{
		BookTitleId: title.Id,
		Condition:   "Pristine",
		Price:       decimal.RequireFromString("15000"),
	})
	assertKind(t, err, apperrors.KindValidation)

	_, err = service.CreateCopy(&models.BookCopyModel{
		BookTitleId: 999,
		Price:       decimal.RequireFromString("15000"),
	})
	assertKind(t, err, apperrors.KindNotFound)
}

func TestDeleteTitleWithCopies(t *testing.T) {
	db := newTestDB(t)
	service := NewBookService(db)

	title := createTitle(t, db, "Keeper")
	copy := createCopy(t, db, title.Id, "10000", models.ConditionNormal)

	err := service.DeleteTitle(title.Id)
	assertKind(t, err, apperrors.KindState)

	require.NoError(t, service.DeleteCopy(copy.Id))
	require.NoError(t, service.DeleteTitle(title.Id))

	_, err = service.GetTitleByID(title.Id)
	assertKind(t, err, apperrors.KindNotFound)
}

func TestDeleteCopyOnLoan(t *testing.T) {
	db := newTestDB(t)
	seedPolicy(t, db, nil)
	service := NewBookService(db)

	txn := borrowCopies(t, db, 1)

	err := service.DeleteCopy(txn.Details[0].CopyId)
	assertKind(t, err, apperrors.KindState)
}
