package models

import "time"

type ReaderModel struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Fullname  string    `json:"fullname" gorm:"type:varchar(100);not null"`
	Email     *string   `json:"email" gorm:"type:varchar(100)"`
	Phone     *string   `json:"phone" gorm:"type:varchar(20)"`
	Address   *string   `json:"address" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (ReaderModel) TableName() string { return "readers" }
