package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

// ProgressEvent mirrors the pipeline's stage callbacks. Percent is 0
// when the run failed.
type ProgressEvent struct {
	Type      string `json:"type"`
	Stage     string `json:"stage"`
	Percent   int    `json:"percent"`
	Timestamp string `json:"timestamp"`
}

// AnalysisCompletedEvent is pushed once per finished run.
type AnalysisCompletedEvent struct {
	Type            string  `json:"type"`
	AnalysisID      int64   `json:"analysis_id"`
	MatchPercentage float64 `json:"match_percentage"`
	Timestamp       string  `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyProgress(stage string, percent int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := ProgressEvent{
		Type:      "progress",
		Stage:     stage,
		Percent:   percent,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}

func NotifyAnalysisCompleted(analysisID int64, matchPercentage float64) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := AnalysisCompletedEvent{
		Type:            "analysis_completed",
		AnalysisID:      analysisID,
		MatchPercentage: matchPercentage,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
