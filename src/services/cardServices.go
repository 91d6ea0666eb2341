package services

import (
	"errors"
	"time"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CardService struct {
	db    *gorm.DB
	locks *CardLocks
}

// NewCardService creates a new instance of CardService
func NewCardService(db *gorm.DB, locks *CardLocks) *CardService {
	return &CardService{db: db, locks: locks}
}

// GetAllCards retrieves all LibraryCard records from the database
func (s *CardService) GetAllCards() ([]models.LibraryCardModel, error) {
	var cards []models.LibraryCardModel
	result := s.db.Preload("Reader").Find(&cards)
	if result.Error != nil {
		return nil, apperrors.Wrap(result.Error, "listing library cards")
	}
	return cards, nil
}

// GetCardByID retrieves a LibraryCard record by its ID
func (s *CardService) GetCardByID(id int) (*models.LibraryCardModel, error) {
	var card models.LibraryCardModel
	result := s.db.Preload("Reader").First(&card, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("library card %d not found", id)
		}
		return nil, apperrors.Wrap(result.Error, "reading library card")
	}
	return &card, nil
}

// IssueCard creates an active card with a zero deposit balance for a reader
func (s *CardService) IssueCard(readerId int) (*models.LibraryCardModel, error) {
	if readerId <= 0 {
		return nil, apperrors.Validationf("readerId is required")
	}

	var reader models.ReaderModel
	if err := s.db.First(&reader, readerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("reader %d not found", readerId)
		}
		return nil, apperrors.Wrap(err, "reading reader")
	}

	card := models.LibraryCardModel{
		ReaderId:       readerId,
		Status:         models.CardActive,
		DepositBalance: decimal.Zero,
		IssuedAt:       time.Now(),
	}
	if err := s.db.Create(&card).Error; err != nil {
		return nil, apperrors.Wrap(err, "creating library card")
	}
	card.Reader = reader
	return &card, nil
}

type DepositRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
}

type DepositResult struct {
	NewBalance    decimal.Decimal `json:"newBalance"`
	ReceiptNumber string          `json:"receiptNumber"`
}

// Deposit credits the card's deposit balance and records the payment.
func (s *CardService) Deposit(cardId int, req *DepositRequest) (*DepositResult, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.Validationf("deposit amount must be positive")
	}
	if req.PaymentMethod == "" {
		return nil, apperrors.Validationf("paymentMethod is required")
	}

	unlock := s.locks.Lock(cardId)
	defer unlock()

	var card models.LibraryCardModel
	if err := s.db.First(&card, cardId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("library card %d not found", cardId)
		}
		return nil, apperrors.Wrap(err, "reading library card")
	}
	if card.Status == models.CardClosed {
		return nil, apperrors.Statef("library card %d is closed", cardId)
	}

	newBalance := card.DepositBalance.Add(req.Amount)
	receipt := uuid.NewString()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.LibraryCardModel{}).
			Where("id = ?", cardId).
			Update("deposit_balance", newBalance).Error; err != nil {
			return apperrors.Wrap(err, "crediting deposit balance")
		}

		payment := models.PaymentModel{
			CardId:        cardId,
			Amount:        req.Amount,
			ReferenceType: models.PaymentDeposit,
			PaymentMethod: req.PaymentMethod,
			PaymentDate:   time.Now(),
			ReceiptNumber: receipt,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return apperrors.Wrap(err, "recording deposit payment")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DepositResult{NewBalance: newBalance, ReceiptNumber: receipt}, nil
}

// UpdateStatus moves the card to a new status
func (s *CardService) UpdateStatus(cardId int, status models.CardStatus) (*models.LibraryCardModel, error) {
	if status != models.CardActive && status != models.CardSuspended && status != models.CardClosed {
		return nil, apperrors.Validationf("unknown card status %q", status)
	}

	var card models.LibraryCardModel
	if err := s.db.First(&card, cardId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("library card %d not found", cardId)
		}
		return nil, apperrors.Wrap(err, "reading library card")
	}

	if err := s.db.Model(&card).Update("status", status).Error; err != nil {
		return nil, apperrors.Wrap(err, "updating card status")
	}
	card.Status = status
	return &card, nil
}
