package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	AwardStarBadge   = "Star Badge"
	AwardGoldBadge   = "Gold Badge"
	AwardSilverBadge = "Silver Badge"
	AwardBronzeBadge = "Bronze Badge"
)

const (
	CategoryQuiz  = "Quiz"
	CategoryVoice = "Voice"
)

type AwardModel struct {
	AwardID uuid.UUID `gorm:"column:award_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"award_id"`

	AwardStudentID uuid.UUID `gorm:"column:award_student_id;type:uuid;not null;uniqueIndex:uq_award_student_category_type" json:"award_student_id"`
	AwardCategory  string    `gorm:"column:award_category;type:varchar(20);not null;uniqueIndex:uq_award_student_category_type" json:"award_category"`
	AwardType      string    `gorm:"column:award_type;type:varchar(30);not null;uniqueIndex:uq_award_student_category_type" json:"award_type"`

	AwardCreatedAt time.Time `gorm:"column:award_created_at;not null;autoCreateTime" json:"award_created_at"`
}

func (AwardModel) TableName() string {
	return "awards"
}
