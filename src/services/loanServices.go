package services

import (
	"errors"
	"strings"
	"time"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type LoanService struct {
	db       *gorm.DB
	settings *SettingService
	locks    *CardLocks
}

// NewLoanService creates a new instance of LoanService
func NewLoanService(db *gorm.DB, settings *SettingService, locks *CardLocks) *LoanService {
	return &LoanService{
		db:       db,
		settings: settings,
		locks:    locks,
	}
}

type CreateLoanRequest struct {
	CardId     int    `json:"cardId"`
	StaffId    int    `json:"staffId"`
	CopyIds    []int  `json:"copyIds"`
	BorrowType string `json:"borrowType"`
}

type CreateLoanResult struct {
	Transaction       models.LoanTransactionModel `json:"transaction"`
	NewDepositBalance decimal.Decimal             `json:"newDepositBalance"`
}

// dateOnly truncates a timestamp to its calendar date.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CreateLoan validates a borrow request and, when it passes, creates the
// loan transaction with one detail per copy, debits the card's deposit
// balance and marks the copies on loan. All writes happen in one database
// transaction, so a failing step leaves nothing behind.
func (s *LoanService) CreateLoan(req *CreateLoanRequest) (*CreateLoanResult, error) {
	if req.CardId <= 0 || req.StaffId <= 0 || len(req.CopyIds) == 0 || strings.TrimSpace(req.BorrowType) == "" {
		return nil, apperrors.Validationf("cardId, staffId, borrowType and at least one copyId are required")
	}
	seen := make(map[int]bool, len(req.CopyIds))
	for _, id := range req.CopyIds {
		if seen[id] {
			return nil, apperrors.Validationf("copy %d is listed more than once", id)
		}
		seen[id] = true
	}

	unlock := s.locks.Lock(req.CardId)
	defer unlock()

	// Card must exist and be active
	var card models.LibraryCardModel
	if err := s.db.First(&card, req.CardId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("library card %d not found", req.CardId)
		}
		return nil, apperrors.Wrap(err, "reading library card")
	}
	if card.Status != models.CardActive {
		return nil, apperrors.Statef("library card %d is not active (status %s)", card.Id, card.Status)
	}

	// Every requested copy must exist and be available
	var copies []models.BookCopyModel
	if err := s.db.Where("id IN ?", req.CopyIds).Find(&copies).Error; err != nil {
		return nil, apperrors.Wrap(err, "reading book copies")
	}
	if len(copies) != len(req.CopyIds) {
		found := make(map[int]bool, len(copies))
		for _, c := range copies {
			found[c.Id] = true
		}
		missing := []int{}
		for _, id := range req.CopyIds {
			if !found[id] {
				missing = append(missing, id)
			}
		}
		return nil, apperrors.NotFoundf("book copies not found: %v", missing)
	}

	unavailable := []int{}
	damaged := []int{}
	for _, c := range copies {
		if c.AvailabilityStatus != models.CopyAvailable {
			unavailable = append(unavailable, c.Id)
		}
		if c.Condition == models.ConditionDamaged {
			damaged = append(damaged, c.Id)
		}
	}
	// Availability is the determining check; damaged ids are echoed for diagnostics
	if len(unavailable) > 0 {
		if len(damaged) > 0 {
			return nil, apperrors.Conflictf("book copies not available for loan: %v (damaged copies in request: %v)", unavailable, damaged)
		}
		return nil, apperrors.Conflictf("book copies not available for loan: %v", unavailable)
	}

	// Borrowing quota
	quota, err := s.settings.GetInt(SettingMaxBooksPerCard)
	if err != nil {
		return nil, err
	}
	outstanding, err := s.countOutstanding(req.CardId)
	if err != nil {
		return nil, err
	}
	if outstanding+len(req.CopyIds) > quota {
		return nil, apperrors.QuotaExceededf("card %d has %d copies outstanding; borrowing %d more exceeds the limit of %d",
			req.CardId, outstanding, len(req.CopyIds), quota)
	}

	// Deposit balance must cover the total value of the copies
	totalValue := decimal.Zero
	for _, c := range copies {
		totalValue = totalValue.Add(c.Price)
	}
	if card.DepositBalance.LessThan(totalValue) {
		return nil, apperrors.InsufficientFundsf("deposit balance %s does not cover the required %s",
			card.DepositBalance.StringFixed(2), totalValue.StringFixed(2))
	}

	loanDays, err := s.settings.GetInt(SettingLoanPeriodDays)
	if err != nil {
		return nil, err
	}
	today := dateOnly(time.Now())

	txn := models.LoanTransactionModel{
		CardId:          req.CardId,
		StaffId:         req.StaffId,
		TransactionDate: today,
		DueDate:         today.AddDate(0, 0, loanDays),
		Status:          models.LoanBorrowing,
		BorrowType:      strings.TrimSpace(req.BorrowType),
	}
	newBalance := card.DepositBalance.Sub(totalValue)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// 1) Create the loan transaction
		if err := tx.Create(&txn).Error; err != nil {
			return apperrors.Wrap(err, "creating loan transaction")
		}

		// 2) One detail per requested copy
		details := make([]models.LoanDetailModel, 0, len(copies))
		for _, c := range copies {
			details = append(details, models.LoanDetailModel{
				LoanTransactionId: txn.Id,
				CopyId:            c.Id,
			})
		}
		if err := tx.Create(&details).Error; err != nil {
			return apperrors.Wrap(err, "creating loan details")
		}

		// 3) Debit the deposit balance
		if err := tx.Model(&models.LibraryCardModel{}).
			Where("id = ?", card.Id).
			Update("deposit_balance", newBalance).Error; err != nil {
			return apperrors.Wrap(err, "debiting deposit balance")
		}

		// 4) Flip the copies to OnLoan. The availability condition guards
		// against a concurrent borrow of the same copy through another card.
		result := tx.Model(&models.BookCopyModel{}).
			Where("id IN ? AND availability_status = ?", req.CopyIds, models.CopyAvailable).
			Update("availability_status", models.CopyOnLoan)
		if result.Error != nil {
			return apperrors.Wrap(result.Error, "marking copies on loan")
		}
		if result.RowsAffected != int64(len(req.CopyIds)) {
			return apperrors.Conflictf("book copies were loaned out concurrently")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("Details.Copy").Preload("Card").First(&txn, txn.Id).Error; err != nil {
		return nil, apperrors.Wrap(err, "reloading created loan")
	}

	return &CreateLoanResult{Transaction: txn, NewDepositBalance: newBalance}, nil
}

// countOutstanding counts the card's loan details that are still out,
// across transactions that are currently in Borrowing status.
func (s *LoanService) countOutstanding(cardId int) (int, error) {
	var outstanding int64
	err := s.db.Model(&models.LoanDetailModel{}).
		Joins("JOIN loan_transactions ON loan_transactions.id = loan_details.loan_transaction_id").
		Where("loan_transactions.card_id = ? AND loan_transactions.status = ? AND loan_details.return_date IS NULL",
			cardId, models.LoanBorrowing).
		Count(&outstanding).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "counting outstanding loan details")
	}
	return int(outstanding), nil
}

// GetAllLoans retrieves all LoanTransaction records from the database
func (s *LoanService) GetAllLoans() ([]models.LoanTransactionModel, error) {
	var loans []models.LoanTransactionModel

	result := s.db.
		Preload("Card.Reader").
		Preload("Details.Copy").
		Find(&loans)
	if result.Error != nil {
		return nil, apperrors.Wrap(result.Error, "listing loans")
	}

	return loans, nil
}

// GetLoanByID retrieves a LoanTransaction record by its ID
func (s *LoanService) GetLoanByID(id int) (*models.LoanTransactionModel, error) {
	var loan models.LoanTransactionModel

	result := s.db.
		Preload("Card.Reader").
		Preload("Details.Copy").
		First(&loan, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("loan transaction %d not found", id)
		}
		return nil, apperrors.Wrap(result.Error, "reading loan transaction")
	}
	return &loan, nil
}
