package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSpeechClientScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/score" {
			t.Errorf("path = %q, want /score", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"recognized_text": "the quick brown fox",
			"accuracy": 92.5,
			"pronunciation": 88,
			"fluency": 90,
			"speed": 85,
			"overall_score": 89.1
		}`))
	}))
	defer srv.Close()

	client := &SpeechClient{BaseURL: srv.URL, HTTP: srv.Client()}

	score, err := client.Score(context.Background(), "the quick brown fox", "aGVsbG8=")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if score.RecognizedText != "the quick brown fox" {
		t.Errorf("RecognizedText = %q", score.RecognizedText)
	}
	if score.OverallScore != 89.1 {
		t.Errorf("OverallScore = %v, want 89.1", score.OverallScore)
	}
	if score.Accuracy != 92.5 {
		t.Errorf("Accuracy = %v, want 92.5", score.Accuracy)
	}
}

func TestSpeechClientScoreUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := &SpeechClient{BaseURL: srv.URL, HTTP: srv.Client()}

	if _, err := client.Score(context.Background(), "text", "audio"); err == nil {
		t.Fatal("expected an error on a non-200 response")
	}
}

func TestSpeechClientScoreRespectsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := &SpeechClient{BaseURL: srv.URL, HTTP: srv.Client()}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := client.Score(ctx, "text", "audio"); err == nil {
		t.Fatal("expected a context deadline error")
	}
}
