package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CopyCondition is ordered: once a copy degrades it never improves again.
type CopyCondition string

const (
	ConditionNormal  CopyCondition = "Normal"
	ConditionDamaged CopyCondition = "Damaged"
	ConditionLost    CopyCondition = "Lost"
)

// Rank returns the position of the condition in the degradation order,
// or -1 for an unknown value.
func (c CopyCondition) Rank() int {
	switch c {
	case ConditionNormal:
		return 0
	case ConditionDamaged:
		return 1
	case ConditionLost:
		return 2
	default:
		return -1
	}
}

type AvailabilityStatus string

const (
	CopyAvailable AvailabilityStatus = "Available"
	CopyOnLoan    AvailabilityStatus = "OnLoan"
	CopyLost      AvailabilityStatus = "Lost"
)

type BookTitleModel struct {
	Id            int             `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string          `json:"title" gorm:"type:varchar(255);not null"`
	Author        string          `json:"author" gorm:"type:varchar(100);not null"`
	Publisher     *string         `json:"publisher" gorm:"type:varchar(100)"`
	Isbn          *string         `json:"isbn" gorm:"column:isbn;type:varchar(20)"`
	PublishedYear *int            `json:"publishedYear" gorm:"column:published_year"`
	Copies        []BookCopyModel `json:"copies,omitempty" gorm:"foreignKey:BookTitleId"`
	CreatedAt     time.Time       `json:"createdAt" gorm:"column:created_at"`
}

func (BookTitleModel) TableName() string { return "book_titles" }

type BookCopyModel struct {
	Id                 int                `json:"id" gorm:"primaryKey;autoIncrement"`
	BookTitleId        int                `json:"bookTitleId" gorm:"column:book_title_id;not null"`
	BookTitle          *BookTitleModel    `json:"bookTitle,omitempty" gorm:"foreignKey:BookTitleId;references:Id"`
	Barcode            *string            `json:"barcode" gorm:"type:varchar(50)"`
	Condition          CopyCondition      `json:"condition" gorm:"type:varchar(20);not null;default:Normal"`
	AvailabilityStatus AvailabilityStatus `json:"availabilityStatus" gorm:"column:availability_status;type:varchar(20);not null;default:Available"`
	Price              decimal.Decimal    `json:"price" gorm:"type:numeric(14,2);not null"`
}

func (BookCopyModel) TableName() string { return "book_copies" }
