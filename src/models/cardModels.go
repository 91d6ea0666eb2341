package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CardStatus string

const (
	CardActive    CardStatus = "Active"
	CardSuspended CardStatus = "Suspended"
	CardClosed    CardStatus = "Closed"
)

type LibraryCardModel struct {
	Id             int             `json:"id" gorm:"primaryKey;autoIncrement"`
	ReaderId       int             `json:"readerId" gorm:"column:reader_id;not null"`
	Reader         ReaderModel     `json:"reader" gorm:"foreignKey:ReaderId;references:Id"`
	Status         CardStatus      `json:"status" gorm:"type:varchar(20);not null;default:Active"`
	DepositBalance decimal.Decimal `json:"depositBalance" gorm:"column:deposit_balance;type:numeric(14,2);not null"`
	IssuedAt       time.Time       `json:"issuedAt" gorm:"column:issued_at"`
}

func (LibraryCardModel) TableName() string { return "library_cards" }
