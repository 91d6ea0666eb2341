package models

type StaffModel struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"type:varchar(100);not null;uniqueIndex"`
	Password string `json:"password" gorm:"type:varchar(100);not null"`
	Fullname string `json:"fullname" gorm:"type:varchar(100);not null"`
	Role     string `json:"role" gorm:"type:varchar(20);not null;default:staff"`
}

func (StaffModel) TableName() string { return "staff" }

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}
