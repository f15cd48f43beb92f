package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/osukit/pp-api/internal/calc"
	"github.com/osukit/pp-api/internal/models"
)

func newTestHandler(mock *MockCalculator, queue *MockQueue) *Handler {
	return New(Config{
		Calculator: mock,
		WorkerPool: queue,
		Logger:     zap.NewNop(),
	})
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(*MockCalculator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Happy Path",
			body:           `{"path": "maps/test.osu", "mode": 0, "accuracy": 97.5}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"pp":123.4`,
		},
		{
			name:           "Invalid JSON",
			body:           `{"path": `,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error"`,
		},
		{
			name:           "Missing Path",
			body:           `{"mode": 0, "accuracy": 99}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "validation failed",
		},
		{
			name:           "Mode Out Of Range",
			body:           `{"path": "maps/test.osu", "mode": 9}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "validation failed",
		},
		{
			name:           "Negative Misses",
			body:           `{"path": "maps/test.osu", "mode": 0, "misses": -2}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "validation failed",
		},
		{
			name: "File Not Found Maps To 404",
			body: `{"path": "maps/missing.osu", "mode": 0}`,
			mockSetup: func(m *MockCalculator) {
				m.CalculateFunc = func(ctx context.Context, req models.CalculationRequest) (*models.CalculationResult, error) {
					return nil, &calc.Error{Code: calc.CodeFileNotFound, Message: "file not found: /abs/maps/missing.osu"}
				}
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "/abs/maps/missing.osu",
		},
		{
			name: "Engine Failure Maps To 500",
			body: `{"path": "maps/test.osu", "mode": 0}`,
			mockSetup: func(m *MockCalculator) {
				m.CalculateFunc = func(ctx context.Context, req models.CalculationRequest) (*models.CalculationResult, error) {
					return nil, &calc.Error{Code: calc.CodeCalculationFailed, Message: "decode beatmap: bad file"}
				}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockCalculator{}
			if tt.mockSetup != nil {
				tt.mockSetup(mock)
			}
			h := newTestHandler(mock, &MockQueue{})

			r := httptest.NewRequest("POST", "/api/v1/calculate", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.Calculate(w, r)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.expectedStatus, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tt.expectedBody) {
				t.Errorf("body %q should contain %q", w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestCalculateDefaultsAccuracy(t *testing.T) {
	var seen models.CalculationRequest
	mock := &MockCalculator{
		CalculateFunc: func(ctx context.Context, req models.CalculationRequest) (*models.CalculationResult, error) {
			seen = req
			return &models.CalculationResult{Mode: req.Mode, StatsUsed: models.HitCounts{}}, nil
		},
	}
	h := newTestHandler(mock, &MockQueue{})

	r := httptest.NewRequest("POST", "/api/v1/calculate", strings.NewReader(`{"path": "maps/a.osu", "mode": 1}`))
	w := httptest.NewRecorder()
	h.Calculate(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if seen.Accuracy != 100 {
		t.Errorf("omitted accuracy should default to 100, got %v", seen.Accuracy)
	}
}

func TestCalculateArchivesResult(t *testing.T) {
	queue := &MockQueue{}
	h := newTestHandler(&MockCalculator{}, queue)

	r := httptest.NewRequest("POST", "/api/v1/calculate", strings.NewReader(`{"path": "maps/a.osu", "mode": 0, "accuracy": 99}`))
	w := httptest.NewRecorder()
	h.Calculate(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	queue.mu.Lock()
	defer queue.mu.Unlock()
	if len(queue.scores) != 1 {
		t.Fatalf("archived %d scores, want 1", len(queue.scores))
	}
	s := queue.scores[0]
	if s.Beatmap != "maps/a.osu" || s.PP != 123.4 || !s.Simulated {
		t.Errorf("archived score = %+v", s)
	}
}

func TestCalculateExplicitStatisticsMarkedExplicit(t *testing.T) {
	queue := &MockQueue{}
	h := newTestHandler(&MockCalculator{}, queue)

	body := `{"path": "maps/a.osu", "mode": 0, "statistics": {"great": "250", "miss": "1"}}`
	r := httptest.NewRequest("POST", "/api/v1/calculate", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Calculate(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	queue.mu.Lock()
	defer queue.mu.Unlock()
	if len(queue.scores) != 1 || queue.scores[0].Simulated {
		t.Errorf("explicit-statistics score should not be marked simulated: %+v", queue.scores)
	}
}

func TestCalculateBatch(t *testing.T) {
	mock := &MockCalculator{
		CalculateFunc: func(ctx context.Context, req models.CalculationRequest) (*models.CalculationResult, error) {
			if strings.Contains(req.Path, "missing") {
				return nil, &calc.Error{Code: calc.CodeFileNotFound, Message: "file not found"}
			}
			return &models.CalculationResult{Mode: req.Mode, PP: 50, StatsUsed: models.HitCounts{}}, nil
		},
	}
	h := newTestHandler(mock, &MockQueue{})

	body := `[{"path": "maps/a.osu", "mode": 0}, {"path": "maps/missing.osu", "mode": 0}, {"mode": 12}]`
	r := httptest.NewRequest("POST", "/api/v1/calculate/batch", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.CalculateBatch(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Results []struct {
			Result *models.CalculationResult `json:"result"`
			Error  string                    `json:"error"`
		} `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(resp.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(resp.Results))
	}
	if resp.Results[0].Result == nil || resp.Results[0].Error != "" {
		t.Errorf("slot 0 should succeed: %+v", resp.Results[0])
	}
	if resp.Results[1].Error == "" {
		t.Error("slot 1 should carry the file error")
	}
	if resp.Results[2].Error == "" {
		t.Error("slot 2 should fail validation")
	}
}

func TestCalculateBatchRejectsOversize(t *testing.T) {
	h := newTestHandler(&MockCalculator{}, &MockQueue{})

	items := make([]string, batchLimit+1)
	for i := range items {
		items[i] = `{"path": "maps/a.osu", "mode": 0}`
	}
	body := "[" + strings.Join(items, ",") + "]"

	r := httptest.NewRequest("POST", "/api/v1/calculate/batch", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.CalculateBatch(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
