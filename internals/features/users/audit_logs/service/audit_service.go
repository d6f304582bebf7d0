// internals/features/users/audit_logs/service/audit_service.go
package service

import (
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	auditModel "readquest_backend/internals/features/users/audit_logs/model"
	userModel "readquest_backend/internals/features/users/users/model"
)

const unknownUser = "Unknown User"

// LogAudit records an audit entry, resolving the acting user's display name.
// Returns an error only so callers that want to know can inspect it; most
// call sites go through LogAuditAsync and never fail the request on it.
func LogAudit(db *gorm.DB, userID *uuid.UUID, action, entityID string, details any) error {
	entry := auditModel.AuditLogModel{
		AuditLogUserID:   userID,
		AuditLogUserName: unknownUser,
		AuditLogAction:   action,
		AuditLogEntityID: entityID,
	}

	if userID != nil {
		var u userModel.UserModel
		if err := db.Select("user_name").First(&u, "user_id = ?", *userID).Error; err == nil {
			entry.AuditLogUserName = u.UserName
		}
	}

	if details != nil {
		if raw, err := sonic.Marshal(details); err == nil {
			entry.AuditLogDetails = datatypes.JSON(raw)
		}
	}

	return db.Create(&entry).Error
}

// LogAuditAsync is the best-effort variant used after mutating handlers:
// a failed audit write is logged and swallowed, never surfaced to the user.
func LogAuditAsync(db *gorm.DB, userID *uuid.UUID, action, entityID string, details any) {
	if err := LogAudit(db, userID, action, entityID, details); err != nil {
		log.Printf("[AUDIT] write failed action=%s entity=%s: %v", action, entityID, err)
	}
}
