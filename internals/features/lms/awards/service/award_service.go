package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "readquest_backend/internals/features/lms/awards/model"
	auditService "readquest_backend/internals/features/users/audit_logs/service"
)

/* =========================================================
   PURE EVALUATION LAYER (no DB)
   ========================================================= */

// PendingAward is an award that a student has earned but that may or may
// not already exist in the table.
type PendingAward struct {
	StudentID uuid.UUID
	Category  string
	Type      string
	Average   float64
}

// AssignAwardType maps an average score to a badge tier. Lower bounds are
// inclusive: 95 is a Star, 90 a Gold, 80 a Silver, 70 a Bronze.
func AssignAwardType(avg float64) (string, bool) {
	switch {
	case avg >= 95:
		return model.AwardStarBadge, true
	case avg >= 90:
		return model.AwardGoldBadge, true
	case avg >= 80:
		return model.AwardSilverBadge, true
	case avg >= 70:
		return model.AwardBronzeBadge, true
	default:
		return "", false
	}
}

// AverageScore returns the mean of scores, or 0 for an empty slice.
func AverageScore(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// EvaluateAwards computes the pending awards for one student from their
// full quiz and voice score history. A category with no history produces
// nothing; a category whose average sits below the lowest tier produces
// nothing. Returns nil when the student earned no badge at all.
func EvaluateAwards(studentID uuid.UUID, quizScores, voiceScores []float64) []PendingAward {
	var pending []PendingAward

	if len(quizScores) > 0 {
		avg := AverageScore(quizScores)
		if awardType, ok := AssignAwardType(avg); ok {
			pending = append(pending, PendingAward{
				StudentID: studentID,
				Category:  model.CategoryQuiz,
				Type:      awardType,
				Average:   avg,
			})
		}
	}

	if len(voiceScores) > 0 {
		avg := AverageScore(voiceScores)
		if awardType, ok := AssignAwardType(avg); ok {
			pending = append(pending, PendingAward{
				StudentID: studentID,
				Category:  model.CategoryVoice,
				Type:      awardType,
				Average:   avg,
			})
		}
	}

	return pending
}

/* =========================================================
   PERSISTENCE WRAPPER
   ========================================================= */

type AwardService struct {
	DB *gorm.DB
}

func NewAwardService(db *gorm.DB) *AwardService {
	return &AwardService{DB: db}
}

// EvaluateStudent re-reads the student's all-time quiz and voice scores,
// runs the tier evaluation and upserts the earned badges in a single
// transaction keyed on (student, category, type). Re-running with an
// unchanged history leaves the table untouched.
func (s *AwardService) EvaluateStudent(studentID uuid.UUID, actorID *uuid.UUID) ([]PendingAward, error) {
	var quizScores []float64
	if err := s.DB.Table("student_quiz_attempts").
		Where("quiz_attempt_student_id = ?", studentID).
		Pluck("quiz_attempt_score", &quizScores).Error; err != nil {
		return nil, err
	}

	var voiceScores []float64
	if err := s.DB.Table("voice_exercise_attempts").
		Where("voice_attempt_student_id = ?", studentID).
		Pluck("voice_attempt_score", &voiceScores).Error; err != nil {
		return nil, err
	}

	pending := EvaluateAwards(studentID, quizScores, voiceScores)
	if len(pending) == 0 {
		return nil, nil
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, p := range pending {
			award := model.AwardModel{
				AwardStudentID: p.StudentID,
				AwardCategory:  p.Category,
				AwardType:      p.Type,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "award_student_id"},
					{Name: "award_category"},
					{Name: "award_type"},
				},
				DoNothing: true,
			}).Create(&award).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, p := range pending {
		if err := auditService.LogAudit(s.DB, actorID, "Award Evaluation", p.StudentID.String(), map[string]any{
			"category": p.Category,
			"type":     p.Type,
			"average":  p.Average,
		}); err != nil {
			log.Printf("[AUDIT] award evaluation log failed: %v", err)
		}
	}

	return pending, nil
}
