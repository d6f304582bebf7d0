package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID     uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	StudentUserID uuid.UUID `gorm:"column:student_user_id;type:uuid;not null;index"                  json:"student_user_id"`

	StudentLrnNo      string  `gorm:"column:student_lrn_no;type:varchar(20);not null"     json:"student_lrn_no"`
	StudentFirstname  string  `gorm:"column:student_firstname;type:varchar(80);not null"  json:"student_firstname"`
	StudentLastname   string  `gorm:"column:student_lastname;type:varchar(80);not null"   json:"student_lastname"`
	StudentMiddlename *string `gorm:"column:student_middlename;type:varchar(80)"          json:"student_middlename,omitempty"`

	StudentGrade        string  `gorm:"column:student_grade;type:varchar(20);not null;index" json:"student_grade"`
	StudentSex          string  `gorm:"column:student_sex;type:varchar(10);not null"         json:"student_sex"`
	StudentBdate        string  `gorm:"column:student_bdate;type:varchar(20);not null"       json:"student_bdate"`
	StudentAge          int     `gorm:"column:student_age;not null"                          json:"student_age"`
	StudentGuardianName string  `gorm:"column:student_guardian_name;type:varchar(120);not null" json:"student_guardian_name"`
	StudentImage        *string `gorm:"column:student_image"                                 json:"student_image,omitempty"`

	StudentUsername string `gorm:"column:student_username;type:varchar(60);uniqueIndex;not null" json:"student_username"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index"                   json:"student_deleted_at,omitempty"`
}

// TableName overrides the table name used by GORM.
func (StudentModel) TableName() string {
	return "students"
}
