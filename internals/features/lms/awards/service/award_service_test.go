package service

import (
	"testing"

	"github.com/google/uuid"

	model "readquest_backend/internals/features/lms/awards/model"
)

func TestAssignAwardType(t *testing.T) {
	tests := []struct {
		name     string
		avg      float64
		wantType string
		wantOK   bool
	}{
		{"star lower bound", 95, model.AwardStarBadge, true},
		{"perfect score", 100, model.AwardStarBadge, true},
		{"just under star", 94.99, model.AwardGoldBadge, true},
		{"gold lower bound", 90, model.AwardGoldBadge, true},
		{"just under gold", 89.99, model.AwardSilverBadge, true},
		{"silver lower bound", 80, model.AwardSilverBadge, true},
		{"just under silver", 79.99, model.AwardBronzeBadge, true},
		{"bronze lower bound", 70, model.AwardBronzeBadge, true},
		{"just under bronze", 69.99, "", false},
		{"zero", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotOK := AssignAwardType(tt.avg)
			if gotType != tt.wantType || gotOK != tt.wantOK {
				t.Errorf("AssignAwardType(%v) = (%q, %v), want (%q, %v)",
					tt.avg, gotType, gotOK, tt.wantType, tt.wantOK)
			}
		})
	}
}

func TestAverageScore(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   float64
	}{
		{"empty history", nil, 0},
		{"single score", []float64{88}, 88},
		{"mixed", []float64{90, 100}, 95},
		{"all in gold band", []float64{90, 92, 94}, 92},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AverageScore(tt.scores); got != tt.want {
				t.Errorf("AverageScore(%v) = %v, want %v", tt.scores, got, tt.want)
			}
		})
	}
}

func TestEvaluateAwards(t *testing.T) {
	studentID := uuid.New()

	t.Run("no history is a no-op", func(t *testing.T) {
		if got := EvaluateAwards(studentID, nil, nil); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("scores in 90..100 earn at least gold", func(t *testing.T) {
		got := EvaluateAwards(studentID, []float64{90, 100}, nil)
		if len(got) != 1 {
			t.Fatalf("expected 1 pending award, got %d", len(got))
		}
		if got[0].Category != model.CategoryQuiz {
			t.Errorf("category = %q, want %q", got[0].Category, model.CategoryQuiz)
		}
		if got[0].Type != model.AwardStarBadge {
			t.Errorf("type = %q, want %q (avg 95 is star territory)", got[0].Type, model.AwardStarBadge)
		}
	})

	t.Run("both categories emit independently", func(t *testing.T) {
		got := EvaluateAwards(studentID, []float64{96, 98}, []float64{72, 75})
		if len(got) != 2 {
			t.Fatalf("expected 2 pending awards, got %d", len(got))
		}
		if got[0].Category != model.CategoryQuiz || got[0].Type != model.AwardStarBadge {
			t.Errorf("quiz award = %+v", got[0])
		}
		if got[1].Category != model.CategoryVoice || got[1].Type != model.AwardBronzeBadge {
			t.Errorf("voice award = %+v", got[1])
		}
	})

	t.Run("below the lowest tier nothing is earned", func(t *testing.T) {
		if got := EvaluateAwards(studentID, []float64{50, 60}, []float64{65}); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("one empty category does not block the other", func(t *testing.T) {
		got := EvaluateAwards(studentID, nil, []float64{85})
		if len(got) != 1 {
			t.Fatalf("expected 1 pending award, got %d", len(got))
		}
		if got[0].Category != model.CategoryVoice || got[0].Type != model.AwardSilverBadge {
			t.Errorf("voice award = %+v", got[0])
		}
	})
}
