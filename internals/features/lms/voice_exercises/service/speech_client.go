package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"readquest_backend/internals/configs"
)

// SpeechScore is the metric block returned by the external speech scorer.
// The service treats the scorer as a black box and persists the block as-is.
type SpeechScore struct {
	RecognizedText string         `json:"recognized_text"`
	Accuracy       float64        `json:"accuracy"`
	Pronunciation  float64        `json:"pronunciation"`
	Fluency        float64        `json:"fluency"`
	Speed          float64        `json:"speed"`
	OverallScore   float64        `json:"overall_score"`
	Phonemes       map[string]any `json:"phonemes,omitempty"`
}

type SpeechClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewSpeechClient() *SpeechClient {
	return &SpeechClient{
		BaseURL: configs.SpeechAPIURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Score sends the reference text plus the recorded audio (base64-encoded
// by the client app) to the scorer and decodes the metric block.
func (sc *SpeechClient) Score(ctx context.Context, referenceText, audioBase64 string) (*SpeechScore, error) {
	payload, err := sonic.Marshal(map[string]string{
		"reference_text": referenceText,
		"audio_base64":   audioBase64,
	})
	if err != nil {
		return nil, fmt.Errorf("speech scorer: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sc.BaseURL+"/score", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("speech scorer: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := sc.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("speech scorer: request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("speech scorer: read response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("speech scorer: status %d: %s", res.StatusCode, body)
	}

	var score SpeechScore
	if err := sonic.Unmarshal(body, &score); err != nil {
		return nil, fmt.Errorf("speech scorer: decode response: %w", err)
	}
	return &score, nil
}
