// internal/models/audit_log.go
package models

// AuditLog records mutating admin-panel requests.
type AuditLog struct {
	BaseModel
	UserID       *uint  `json:"user_id" gorm:"index"`
	Action       string `json:"action" gorm:"size:255;not null"`
	ResourceType string `json:"resource_type" gorm:"size:100;index"`
	ResourceID   string `json:"resource_id" gorm:"size:100"`
	IPAddress    string `json:"ip_address" gorm:"size:45"`
	UserAgent    string `json:"user_agent" gorm:"size:500"`
	NewValues    JSONB  `json:"new_values" gorm:"type:jsonb"`
}
