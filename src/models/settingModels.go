package models

type SystemSettingModel struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	SettingName  string `json:"settingName" gorm:"column:setting_name;type:varchar(100);not null;uniqueIndex"`
	SettingValue string `json:"settingValue" gorm:"column:setting_value;type:varchar(255);not null"`
}

func (SystemSettingModel) TableName() string { return "system_settings" }
