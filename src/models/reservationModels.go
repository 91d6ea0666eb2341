package models

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "Pending"
	ReservationReady     ReservationStatus = "Ready"
	ReservationCancelled ReservationStatus = "Cancelled"
)

type ReservationModel struct {
	Id          int               `json:"id" gorm:"primaryKey;autoIncrement"`
	ReaderId    int               `json:"readerId" gorm:"column:reader_id;not null"`
	Reader      *ReaderModel      `json:"reader,omitempty" gorm:"foreignKey:ReaderId;references:Id"`
	BookTitleId int               `json:"bookTitleId" gorm:"column:book_title_id;not null"`
	BookTitle   *BookTitleModel   `json:"bookTitle,omitempty" gorm:"foreignKey:BookTitleId;references:Id"`
	Status      ReservationStatus `json:"status" gorm:"type:varchar(20);not null;default:Pending"`
	ReservedAt  time.Time         `json:"reservedAt" gorm:"column:reserved_at;not null"`
}

func (ReservationModel) TableName() string { return "reservations" }
