package workers

import (
	"testing"
	"time"

	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.LoanTransactionModel{}))
	return db
}

func createLoan(t *testing.T, db *gorm.DB, status models.LoanStatus, dueDate time.Time) models.LoanTransactionModel {
	t.Helper()

	txn := models.LoanTransactionModel{
		CardId:          1,
		StaffId:         1,
		BorrowType:      "standard",
		Status:          status,
		TransactionDate: dueDate.AddDate(0, 0, -14),
		DueDate:         dueDate,
	}
	require.NoError(t, db.Create(&txn).Error)
	return txn
}

func TestSweepFlagsPastDueLoans(t *testing.T) {
	db := newTestDB(t)
	today := time.Now().Truncate(24 * time.Hour)

	pastDue := createLoan(t, db, models.LoanBorrowing, today.AddDate(0, 0, -1))
	current := createLoan(t, db, models.LoanBorrowing, today.AddDate(0, 0, 7))
	returned := createLoan(t, db, models.LoanReturned, today.AddDate(0, 0, -10))

	NewOverdueWorker(db).Sweep()

	var flagged, untouched, closed models.LoanTransactionModel
	require.NoError(t, db.First(&flagged, pastDue.Id).Error)
	require.NoError(t, db.First(&untouched, current.Id).Error)
	require.NoError(t, db.First(&closed, returned.Id).Error)

	assert.Equal(t, models.LoanOverdue, flagged.Status)
	assert.Equal(t, models.LoanBorrowing, untouched.Status)
	assert.Equal(t, models.LoanReturned, closed.Status)
}

func TestSweepIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	today := time.Now().Truncate(24 * time.Hour)

	pastDue := createLoan(t, db, models.LoanBorrowing, today.AddDate(0, 0, -1))

	worker := NewOverdueWorker(db)
	worker.Sweep()
	worker.Sweep()

	var after models.LoanTransactionModel
	require.NoError(t, db.First(&after, pastDue.Id).Error)
	assert.Equal(t, models.LoanOverdue, after.Status)
}
