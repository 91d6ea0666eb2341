package services

import (
	"testing"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// borrowCopies creates a card with plenty of deposit and an open loan over
// freshly created copies, returning the transaction.
func borrowCopies(t *testing.T, db *gorm.DB, copyCount int) *models.LoanTransactionModel {
	t.Helper()

	card := createCard(t, db, "1000000")
	staff := createStaff(t, db)
	title := createTitle(t, db, "Renewable Reading")

	copyIds := make([]int, 0, copyCount)
	for i := 0; i < copyCount; i++ {
		copy := createCopy(t, db, title.Id, "10000", models.ConditionNormal)
		copyIds = append(copyIds, copy.Id)
	}

	result, err := newLoanService(db).CreateLoan(&CreateLoanRequest{
		CardId:     card.Id,
		StaffId:    staff.Id,
		CopyIds:    copyIds,
		BorrowType: "standard",
	})
	require.NoError(t, err)
	return &result.Transaction
}

func TestRenewExtendsDueDateAndCounters(t *testing.T) {
	db := newTestDB(t)
	seedPolicy(t, db, nil)
	service := NewRenewalService(db, NewSettingService(db))

	txn := borrowCopies(t, db, 2)

	result, err := service.Renew(txn.Id)
	require.NoError(t, err)
	assert.Equal(t, 2, result.RenewedCopies)
	assert.Equal(t, txn.DueDate.AddDate(0, 0, 7).Format("2006-01-02"), result.NewDueDate.Format("2006-01-02"))

	var after models.LoanTransactionModel
	require.NoError(t, db.First(&after, txn.Id).Error)
	assert.Equal(t, result.NewDueDate.Format("2006-01-02"), after.DueDate.Format("2006-01-02"))
	assert.Equal(t, models.LoanBorrowing, after.Status)

	var details []models.LoanDetailModel
	require.NoError(t, db.Where("loan_transaction_id = ?", txn.Id).Find(&details).Error)
	for _, d := range details {
		assert.Equal(t, 1, d.RenewalCount)
	}
}

func TestRenewLimitReached(t *testing.T) {
	db := newTestDB(t)
	seedPolicy(t, db, map[string]string{SettingMaxRenewalCount: "1"})
	service := NewRenewalService(db, NewSettingService(db))

	txn := borrowCopies(t, db, 1)

	_, err := service.Renew(txn.Id)
	require.NoError(t, err)

	eligibility, err := service.CheckEligibility(txn.Id)
	require.NoError(t, err)
	assert.False(t, eligibility.Eligible)
	assert.Equal(t, "renewal limit of 1 reached", eligibility.Reason)

	_, err = service.Renew(txn.Id)
	assertKind(t, err, apperrors.KindState)
}

func TestRenewOverdueIneligible(t *testing.T) {
	db := newTestDB(t)
	seedPolicy(t, db, nil)
	service := NewRenewalService(db, NewSettingService(db))

	txn := borrowCopies(t, db, 1)
	require.NoError(t, db.Model(&models.LoanTransactionModel{}).
		Where("id = ?", txn.Id).
		Update("status", models.LoanOverdue).Error)

	eligibility, err := service.CheckEligibility(txn.Id)
	require.NoError(t, err)
	assert.False(t, eligibility.Eligible)
	assert.Equal(t, "loan is already overdue", eligibility.Reason)

	_, err = service.Renew(txn.Id)
	assertKind(t, err, apperrors.KindState)

	// Nothing mutated
	var detail models.LoanDetailModel
	require.NoError(t, db.Where("loan_transaction_id = ?", txn.Id).First(&detail).Error)
	assert.Equal(t, 0, detail.RenewalCount)

	var after models.LoanTransactionModel
	require.NoError(t, db.First(&after, txn.Id).Error)
	assert.Equal(t, txn.DueDate.Format("2006-01-02"), after.DueDate.Format("2006-01-02"))
}

func TestRenewAllReturned(t *testing.T) {
	db := newTestDB(t)
	seedPolicy(t, db, nil)
	service := NewRenewalService(db, NewSettingService(db))

	txn := borrowCopies(t, db, 1)
	require.NoError(t, db.Model(&models.LoanDetailModel{}).
		Where("loan_transaction_id = ?", txn.Id).
		Update("return_date", txn.DueDate).Error)

	eligibility, err := service.CheckEligibility(txn.Id)
	require.NoError(t, err)
	assert.False(t, eligibility.Eligible)
	assert.Equal(t, "all copies already returned", eligibility.Reason)
	assert.Zero(t, eligibility.OutstandingCopies)
}

func TestRenewUnknownLoan(t *testing.T) {
	db := newTestDB(t)
	seedPolicy(t, db, nil)
	service := NewRenewalService(db, NewSettingService(db))

	_, err := service.Renew(42)
	assertKind(t, err, apperrors.KindNotFound)
}
