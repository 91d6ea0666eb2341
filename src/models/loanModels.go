package models

import "time"

type LoanStatus string

const (
	LoanBorrowing LoanStatus = "Borrowing"
	LoanOverdue   LoanStatus = "Overdue"
	LoanReturned  LoanStatus = "Returned"
)

type LoanTransactionModel struct {
	Id              int               `json:"id" gorm:"primaryKey;autoIncrement"`
	CardId          int               `json:"cardId" gorm:"column:card_id;not null"`
	Card            *LibraryCardModel `json:"card,omitempty" gorm:"foreignKey:CardId;references:Id"`
	StaffId         int               `json:"staffId" gorm:"column:staff_id;not null"`
	Staff           *StaffModel       `json:"staff,omitempty" gorm:"foreignKey:StaffId;references:Id"`
	TransactionDate time.Time         `json:"transactionDate" gorm:"column:transaction_date;type:date;not null"`
	DueDate         time.Time         `json:"dueDate" gorm:"column:due_date;type:date;not null"`
	Status          LoanStatus        `json:"status" gorm:"type:varchar(20);not null"`
	BorrowType      string            `json:"borrowType" gorm:"column:borrow_type;type:varchar(50);not null"`
	Details         []LoanDetailModel `json:"details,omitempty" gorm:"foreignKey:LoanTransactionId"`
}

func (LoanTransactionModel) TableName() string { return "loan_transactions" }

type LoanDetailModel struct {
	Id                int            `json:"id" gorm:"primaryKey;autoIncrement"`
	LoanTransactionId int            `json:"loanTransactionId" gorm:"column:loan_transaction_id;not null"`
	CopyId            int            `json:"copyId" gorm:"column:copy_id;not null"`
	Copy              *BookCopyModel `json:"copy,omitempty" gorm:"foreignKey:CopyId;references:Id"`
	RenewalCount      int            `json:"renewalCount" gorm:"column:renewal_count;not null;default:0"`
	ReturnDate        *time.Time     `json:"returnDate" gorm:"column:return_date;type:date"`
}

func (LoanDetailModel) TableName() string { return "loan_details" }
