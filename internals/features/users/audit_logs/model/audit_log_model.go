package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditLogModel struct {
	AuditLogID       uuid.UUID      `gorm:"column:audit_log_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"audit_log_id"`
	AuditLogUserID   *uuid.UUID     `gorm:"column:audit_log_user_id;type:uuid;index"                           json:"audit_log_user_id,omitempty"`
	AuditLogUserName string         `gorm:"column:audit_log_user_name;type:varchar(120);not null;default:'Unknown User'" json:"audit_log_user_name"`
	AuditLogAction   string         `gorm:"column:audit_log_action;type:varchar(80);not null"                  json:"audit_log_action"`
	AuditLogEntityID string         `gorm:"column:audit_log_entity_id;type:varchar(60);not null"               json:"audit_log_entity_id"`
	AuditLogDetails  datatypes.JSON `gorm:"column:audit_log_details;type:jsonb"                                json:"audit_log_details,omitempty"`

	AuditLogCreatedAt time.Time `gorm:"column:audit_log_created_at;not null;autoCreateTime" json:"audit_log_created_at"`
}

// TableName overrides the table name used by GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
