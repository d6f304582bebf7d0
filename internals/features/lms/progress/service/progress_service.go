package service

import (
	"fmt"

	"github.com/google/uuid"
)

// CompletedAttempt is the slice of an attempt row the aggregator needs:
// which module it touched and whether the run was completed.
type CompletedAttempt struct {
	ModuleID  uuid.UUID
	Completed bool
}

// ModuleProgress summarizes a student's path through the module catalog.
type ModuleProgress struct {
	TotalModules     int    `json:"total_modules"`
	CompletedModules int    `json:"completed_modules"`
	Percentage       string `json:"percentage"`
}

// GradeCompletion is the grade-scoped three-way rollup shown on the
// completion pages.
type GradeCompletion struct {
	TotalModules          int     `json:"total_modules"`
	AverageModuleProgress float64 `json:"average_module_progress"`
	AverageQuizScore      float64 `json:"average_quiz_score"`
	AverageVoiceScore     float64 `json:"average_voice_score"`
	CombinedAverage       float64 `json:"combined_average"`
}

// ScoredAttempt is the slice of an attempt row the score averages need.
type ScoredAttempt struct {
	Score     float64
	Completed bool
}

// ProgressRecord is one student_progress row: the module it belongs to
// and the stored value.
type ProgressRecord struct {
	ModuleID uuid.UUID
	Value    float64
}

// CompletedScores keeps only the scores of completed attempts; abandoned
// runs never reach the averages.
func CompletedScores(attempts []ScoredAttempt) []float64 {
	var scores []float64
	for _, a := range attempts {
		if a.Completed {
			scores = append(scores, a.Score)
		}
	}
	return scores
}

// GradeScopedProgressValues keeps progress values recorded against
// modules of the grade catalog; rows pointing at another grade's modules
// are ignored.
func GradeScopedProgressValues(records []ProgressRecord, gradeModules map[uuid.UUID]struct{}) []float64 {
	var values []float64
	for _, r := range records {
		if _, ok := gradeModules[r.ModuleID]; ok {
			values = append(values, r.Value)
		}
	}
	return values
}

// CompletedModuleSet collects the distinct module IDs reachable through
// completed quiz or voice attempts. Duplicates and ordering are
// irrelevant: an attempt only adds its module once.
func CompletedModuleSet(quiz, voice []CompletedAttempt) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{})
	for _, a := range quiz {
		if a.Completed {
			set[a.ModuleID] = struct{}{}
		}
	}
	for _, a := range voice {
		if a.Completed {
			set[a.ModuleID] = struct{}{}
		}
	}
	return set
}

// ComputeModuleProgress turns a completed-module set into the overview
// row. Percentage is fixed to two decimals; an empty catalog yields
// "0.00" rather than a division error.
func ComputeModuleProgress(totalModules int, completed map[uuid.UUID]struct{}) ModuleProgress {
	mp := ModuleProgress{
		TotalModules:     totalModules,
		CompletedModules: len(completed),
		Percentage:       "0.00",
	}
	if totalModules > 0 {
		mp.Percentage = fmt.Sprintf("%.2f", float64(len(completed))/float64(totalModules)*100)
	}
	return mp
}

// ComputeGradeCompletion rolls module progress, quiz scores and voice
// scores into one grade-scoped summary. The module-progress denominator
// is always the grade catalog size, even when a student has progress
// rows for only some of those modules. Empty inputs contribute 0, and
// the combined figure is the plain mean of the three averages.
func ComputeGradeCompletion(gradeModuleCount int, progressValues, quizScores, voiceScores []float64) GradeCompletion {
	gc := GradeCompletion{TotalModules: gradeModuleCount}

	if gradeModuleCount > 0 {
		var sum float64
		for _, v := range progressValues {
			sum += v
		}
		gc.AverageModuleProgress = sum / float64(gradeModuleCount)
	}
	gc.AverageQuizScore = mean(quizScores)
	gc.AverageVoiceScore = mean(voiceScores)
	gc.CombinedAverage = (gc.AverageModuleProgress + gc.AverageQuizScore + gc.AverageVoiceScore) / 3

	return gc
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
