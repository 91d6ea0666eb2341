package services

import (
	"testing"

	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCirculationSummary(t *testing.T) {
	db := newTestDB(t)
	seedPolicy(t, db, nil)
	service := NewReportService(db)

	borrowCopies(t, db, 2)
	closed := borrowCopies(t, db, 1)

	returnService := newReturnService(db)
	_, err := returnService.ReturnBooks(&ReturnRequest{
		LoanTransactionId: closed.Id,
		Items: []ReturnItem{
			{LoanDetailId: closed.Details[0].Id, NewCondition: models.ConditionNormal, Disposition: models.CopyAvailable},
		},
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	summary, err := service.GetCirculationSummary()
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.ActiveLoans)
	assert.Equal(t, int64(1), summary.ReturnedLoans)
	assert.Zero(t, summary.OverdueLoans)
	assert.Equal(t, int64(2), summary.OutstandingCopies)
	assert.True(t, summary.FinesCollected.IsZero())

	// Two borrowing cards were seeded with 1000000 each; the loans debited
	// three copies at 10000 apiece.
	wantDeposits := decimal.RequireFromString("1970000")
	assert.True(t, summary.DepositsHeld.Equal(wantDeposits),
		"deposits held %s, want %s", summary.DepositsHeld, wantDeposits)
}

func TestExportLoanLedger(t *testing.T) {
	db := newTestDB(t)
	seedPolicy(t, db, nil)
	service := NewReportService(db)

	txn := borrowCopies(t, db, 2)

	f, err := service.ExportLoanLedger()
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Loan Ledger")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per loan detail")

	assert.Equal(t, "Loan ID", rows[0][0])
	assert.Equal(t, "Title", rows[0][7])
	assert.Equal(t, txn.TransactionDate.Format("2006-01-02"), rows[1][3])
	assert.Equal(t, string(models.LoanBorrowing), rows[1][5])
}

func TestExportLoanLedgerEmpty(t *testing.T) {
	db := newTestDB(t)
	service := NewReportService(db)

	f, err := service.ExportLoanLedger()
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Loan Ledger")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "no loans recorded", rows[1][0])
}
