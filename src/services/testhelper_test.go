package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.StaffModel{},
		&models.ReaderModel{},
		&models.LibraryCardModel{},
		&models.BookTitleModel{},
		&models.BookCopyModel{},
		&models.LoanTransactionModel{},
		&models.LoanDetailModel{},
		&models.PaymentModel{},
		&models.ReservationModel{},
		&models.SystemSettingModel{},
	))

	return db
}

// seedPolicy writes the default policy settings, then applies overrides.
func seedPolicy(t *testing.T, db *gorm.DB, overrides map[string]string) {
	t.Helper()

	settings := map[string]string{
		SettingMaxBooksPerCard:   "5",
		SettingLoanPeriodDays:    "14",
		SettingMaxRenewalCount:   "2",
		SettingRenewalPeriodDays: "7",
		SettingLateFeePerDay:     "5000",
		SettingLateFeeGraceDays:  "0",
	}
	for name, value := range overrides {
		settings[name] = value
	}
	for name, value := range settings {
		require.NoError(t, db.Create(&models.SystemSettingModel{
			SettingName:  name,
			SettingValue: value,
		}).Error)
	}
}

func createCard(t *testing.T, db *gorm.DB, balance string) models.LibraryCardModel {
	t.Helper()

	reader := models.ReaderModel{Fullname: "Test Reader", CreatedAt: time.Now()}
	require.NoError(t, db.Create(&reader).Error)

	card := models.LibraryCardModel{
		ReaderId:       reader.Id,
		Status:         models.CardActive,
		DepositBalance: decimal.RequireFromString(balance),
		IssuedAt:       time.Now(),
	}
	require.NoError(t, db.Create(&card).Error)
	return card
}

func createTitle(t *testing.T, db *gorm.DB, name string) models.BookTitleModel {
	t.Helper()

	title := models.BookTitleModel{Title: name, Author: "Test Author", CreatedAt: time.Now()}
	require.NoError(t, db.Create(&title).Error)
	return title
}

func createCopy(t *testing.T, db *gorm.DB, titleId int, price string, condition models.CopyCondition) models.BookCopyModel {
	t.Helper()

	copy := models.BookCopyModel{
		BookTitleId:        titleId,
		Condition:          condition,
		AvailabilityStatus: models.CopyAvailable,
		Price:              decimal.RequireFromString(price),
	}
	require.NoError(t, db.Create(&copy).Error)
	return copy
}

var staffSeq int

func createStaff(t *testing.T, db *gorm.DB) models.StaffModel {
	t.Helper()

	staffSeq++
	staff := models.StaffModel{
		Username: fmt.Sprintf("librarian-%d", staffSeq),
		Password: "x",
		Fullname: "Librarian",
		Role:     "staff",
	}
	require.NoError(t, db.Create(&staff).Error)
	return staff
}
