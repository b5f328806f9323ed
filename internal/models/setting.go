// internal/models/setting.go
package models

type Setting struct {
	BaseModel
	SettingKey   string `json:"setting_key" gorm:"uniqueIndex;size:100;not null"`
	SettingValue string `json:"setting_value" gorm:"size:2000"`
}
