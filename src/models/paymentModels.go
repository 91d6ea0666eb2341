package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentReference string

const (
	PaymentFine    PaymentReference = "Fine"
	PaymentDeposit PaymentReference = "Deposit"
	PaymentCardFee PaymentReference = "CardFee"
)

// PaymentModel rows are immutable once created.
type PaymentModel struct {
	Id            int               `json:"id" gorm:"primaryKey;autoIncrement"`
	CardId        int               `json:"cardId" gorm:"column:card_id;not null"`
	Card          *LibraryCardModel `json:"card,omitempty" gorm:"foreignKey:CardId;references:Id"`
	Amount        decimal.Decimal   `json:"amount" gorm:"type:numeric(14,2);not null"`
	ReferenceType PaymentReference  `json:"referenceType" gorm:"column:reference_type;type:varchar(20);not null"`
	PaymentMethod string            `json:"paymentMethod" gorm:"column:payment_method;type:varchar(50);not null"`
	PaymentDate   time.Time         `json:"paymentDate" gorm:"column:payment_date;not null"`
	ReceiptNumber string            `json:"receiptNumber" gorm:"column:receipt_number;type:varchar(64);not null"`
}

func (PaymentModel) TableName() string { return "payments" }
