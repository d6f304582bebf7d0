package service

import (
	"math"
	"testing"

	"github.com/google/uuid"
)

func attempts(completed bool, ids ...uuid.UUID) []CompletedAttempt {
	out := make([]CompletedAttempt, 0, len(ids))
	for _, id := range ids {
		out = append(out, CompletedAttempt{ModuleID: id, Completed: completed})
	}
	return out
}

func TestCompletedModuleSet(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	t.Run("overlapping categories deduplicate", func(t *testing.T) {
		set := CompletedModuleSet(attempts(true, a, b), attempts(true, b, c))
		if len(set) != 3 {
			t.Fatalf("set size = %d, want 3", len(set))
		}
		for _, id := range []uuid.UUID{a, b, c} {
			if _, ok := set[id]; !ok {
				t.Errorf("module %s missing from set", id)
			}
		}
	})

	t.Run("repeat attempts on one module count once", func(t *testing.T) {
		set := CompletedModuleSet(attempts(true, a, a, a), nil)
		if len(set) != 1 {
			t.Errorf("set size = %d, want 1", len(set))
		}
	})

	t.Run("incomplete attempts are ignored", func(t *testing.T) {
		set := CompletedModuleSet(attempts(false, a, b), attempts(true, c))
		if len(set) != 1 {
			t.Errorf("set size = %d, want 1", len(set))
		}
		if _, ok := set[c]; !ok {
			t.Errorf("module %s missing from set", c)
		}
	})

	t.Run("input order does not matter", func(t *testing.T) {
		s1 := CompletedModuleSet(attempts(true, a, b, c), nil)
		s2 := CompletedModuleSet(attempts(true, c, a, b), nil)
		if len(s1) != len(s2) {
			t.Errorf("set sizes differ: %d vs %d", len(s1), len(s2))
		}
	})
}

func TestComputeModuleProgress(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	set := map[uuid.UUID]struct{}{a: {}, b: {}, c: {}}

	tests := []struct {
		name      string
		total     int
		completed map[uuid.UUID]struct{}
		wantPct   string
	}{
		{"three of ten", 10, set, "30.00"},
		{"all done", 3, set, "100.00"},
		{"empty catalog", 0, set, "0.00"},
		{"nothing completed", 10, map[uuid.UUID]struct{}{}, "0.00"},
		{"repeating fraction", 3, map[uuid.UUID]struct{}{a: {}}, "33.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeModuleProgress(tt.total, tt.completed)
			if got.Percentage != tt.wantPct {
				t.Errorf("Percentage = %q, want %q", got.Percentage, tt.wantPct)
			}
			if got.TotalModules != tt.total {
				t.Errorf("TotalModules = %d, want %d", got.TotalModules, tt.total)
			}
			if got.CompletedModules != len(tt.completed) {
				t.Errorf("CompletedModules = %d, want %d", got.CompletedModules, len(tt.completed))
			}
		})
	}
}

func TestCompletedScores(t *testing.T) {
	t.Run("incomplete attempts never reach the average", func(t *testing.T) {
		scores := CompletedScores([]ScoredAttempt{{Score: 100, Completed: false}})
		if scores != nil {
			t.Fatalf("expected no scores, got %v", scores)
		}
		got := ComputeGradeCompletion(1, nil, scores, nil)
		if got.AverageQuizScore != 0 {
			t.Errorf("AverageQuizScore = %v, want 0", got.AverageQuizScore)
		}
	})

	t.Run("completed attempts survive, abandoned ones drop", func(t *testing.T) {
		scores := CompletedScores([]ScoredAttempt{
			{Score: 80, Completed: true},
			{Score: 100, Completed: false},
			{Score: 90, Completed: true},
		})
		if len(scores) != 2 {
			t.Fatalf("len = %d, want 2", len(scores))
		}
		if scores[0] != 80 || scores[1] != 90 {
			t.Errorf("scores = %v, want [80 90]", scores)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := CompletedScores(nil); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}

func TestGradeScopedProgressValues(t *testing.T) {
	inGrade, otherGrade := uuid.New(), uuid.New()
	catalog := map[uuid.UUID]struct{}{inGrade: {}}

	t.Run("rows on another grade's module are ignored", func(t *testing.T) {
		values := GradeScopedProgressValues(
			[]ProgressRecord{{ModuleID: otherGrade, Value: 100}}, catalog)
		if values != nil {
			t.Fatalf("expected no values, got %v", values)
		}
		got := ComputeGradeCompletion(1, values, nil, nil)
		if got.AverageModuleProgress != 0 {
			t.Errorf("AverageModuleProgress = %v, want 0", got.AverageModuleProgress)
		}
		if got.CombinedAverage != 0 {
			t.Errorf("CombinedAverage = %v, want 0", got.CombinedAverage)
		}
	})

	t.Run("in-catalog rows pass through", func(t *testing.T) {
		values := GradeScopedProgressValues([]ProgressRecord{
			{ModuleID: inGrade, Value: 40},
			{ModuleID: otherGrade, Value: 100},
		}, catalog)
		if len(values) != 1 || values[0] != 40 {
			t.Errorf("values = %v, want [40]", values)
		}
	})

	t.Run("empty catalog keeps nothing", func(t *testing.T) {
		values := GradeScopedProgressValues(
			[]ProgressRecord{{ModuleID: inGrade, Value: 50}}, map[uuid.UUID]struct{}{})
		if values != nil {
			t.Errorf("expected nil, got %v", values)
		}
	})
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeGradeCompletion(t *testing.T) {
	t.Run("no data at all yields zeros", func(t *testing.T) {
		got := ComputeGradeCompletion(0, nil, nil, nil)
		if got.AverageModuleProgress != 0 || got.AverageQuizScore != 0 ||
			got.AverageVoiceScore != 0 || got.CombinedAverage != 0 {
			t.Errorf("expected all zeros, got %+v", got)
		}
	})

	t.Run("catalog size is the denominator even with partial records", func(t *testing.T) {
		// 2 progress rows against a 4-module catalog: (100+50)/4 = 37.5
		got := ComputeGradeCompletion(4, []float64{100, 50}, nil, nil)
		if !almostEqual(got.AverageModuleProgress, 37.5) {
			t.Errorf("AverageModuleProgress = %v, want 37.5", got.AverageModuleProgress)
		}
	})

	t.Run("combined is the plain mean of the three averages", func(t *testing.T) {
		got := ComputeGradeCompletion(2, []float64{100, 100}, []float64{80, 90}, []float64{70})
		if !almostEqual(got.AverageModuleProgress, 100) {
			t.Errorf("AverageModuleProgress = %v, want 100", got.AverageModuleProgress)
		}
		if !almostEqual(got.AverageQuizScore, 85) {
			t.Errorf("AverageQuizScore = %v, want 85", got.AverageQuizScore)
		}
		if !almostEqual(got.AverageVoiceScore, 70) {
			t.Errorf("AverageVoiceScore = %v, want 70", got.AverageVoiceScore)
		}
		if !almostEqual(got.CombinedAverage, (100.0+85+70)/3) {
			t.Errorf("CombinedAverage = %v, want %v", got.CombinedAverage, (100.0+85+70)/3)
		}
	})

	t.Run("empty categories contribute zero to the mean", func(t *testing.T) {
		got := ComputeGradeCompletion(2, []float64{90, 90}, nil, nil)
		if !almostEqual(got.CombinedAverage, 30) {
			t.Errorf("CombinedAverage = %v, want 30", got.CombinedAverage)
		}
	})
}
