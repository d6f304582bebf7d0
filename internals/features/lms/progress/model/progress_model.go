package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentProgressModel stores one progress value per (student, module),
// written by the client as the student moves through a module.
type StudentProgressModel struct {
	ProgressID uuid.UUID `gorm:"column:progress_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"progress_id"`

	ProgressStudentID uuid.UUID `gorm:"column:progress_student_id;type:uuid;not null;uniqueIndex:uq_progress_student_module" json:"progress_student_id"`
	ProgressModuleID  uuid.UUID `gorm:"column:progress_module_id;type:uuid;not null;uniqueIndex:uq_progress_student_module"  json:"progress_module_id"`

	ProgressValue float64 `gorm:"column:progress_value;not null;default:0" json:"progress_value"`

	ProgressUpdatedAt time.Time `gorm:"column:progress_updated_at;not null;autoUpdateTime" json:"progress_updated_at"`
}

func (StudentProgressModel) TableName() string {
	return "student_progress"
}
