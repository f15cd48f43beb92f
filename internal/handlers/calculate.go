package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"

	"github.com/osukit/pp-api/internal/calc"
	"github.com/osukit/pp-api/internal/models"
	"github.com/osukit/pp-api/internal/store"
)

const batchLimit = 50

var (
	calculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ppapi_calculations_total",
		Help: "Total number of calculations by mode and statistics source",
	}, []string{"mode", "source", "status"})

	calculationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ppapi_calculation_duration_seconds",
		Help:    "Duration of single calculations",
		Buckets: prometheus.DefBuckets,
	})
)

// Calculate handles POST /api/v1/calculate
// @Summary Calculate performance for a play
// @Description Reconstructs the judgment breakdown (explicit or simulated) and scores it
// @Tags Calculation
// @Accept json
// @Produce json
// @Param body body models.CalculationRequest true "Calculation request"
// @Success 200 {object} models.CalculationResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /calculate [post]
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	req, err := decodeCalculationRequest(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}

	start := time.Now()
	result, calcErr := h.calc.Calculate(r.Context(), req)
	calculationDuration.Observe(time.Since(start).Seconds())

	source := "simulated"
	if req.Statistics.HasValidHits() {
		source = "explicit"
	}

	if calcErr != nil {
		calculationsTotal.WithLabelValues(models.Mode(req.Mode).String(), source, "error").Inc()
		h.calculationError(w, calcErr)
		return
	}
	calculationsTotal.WithLabelValues(models.Mode(req.Mode).String(), source, "ok").Inc()

	h.archiveResult(req, result, source == "simulated")
	h.jsonResponse(w, http.StatusOK, result)
}

// CalculateBatch handles POST /api/v1/calculate/batch. Items are calculated
// concurrently; each slot carries either the result or its own error object.
// @Summary Calculate a batch of plays
// @Tags Calculation
// @Accept json
// @Produce json
// @Router /calculate/batch [post]
func (h *Handler) CalculateBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var raw []json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if len(raw) == 0 {
		h.errorResponse(w, http.StatusBadRequest, "empty batch")
		return
	}
	if len(raw) > batchLimit {
		h.errorResponse(w, http.StatusBadRequest, "batch too large")
		return
	}

	type slot struct {
		Result *models.CalculationResult `json:"result,omitempty"`
		Error  string                    `json:"error,omitempty"`
	}
	results := make([]slot, len(raw))

	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(4)
	for i, item := range raw {
		i, item := i, item
		g.Go(func() error {
			req := models.CalculationRequest{Accuracy: 100}
			if err := json.Unmarshal(item, &req); err != nil {
				results[i] = slot{Error: "invalid request: " + err.Error()}
				return nil
			}
			if err := h.validator.StructCtx(ctx, &req); err != nil {
				results[i] = slot{Error: "validation failed: " + err.Error()}
				return nil
			}

			res, err := h.calc.Calculate(ctx, req)
			if err != nil {
				results[i] = slot{Error: err.Error()}
				return nil
			}
			results[i] = slot{Result: res}
			h.archiveResult(req, res, !req.Statistics.HasValidHits())
			return nil
		})
	}
	g.Wait()

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"results": results,
	})
}

func decodeCalculationRequest(r *http.Request) (models.CalculationRequest, error) {
	// Accuracy defaults to 100 when the field is omitted; the decoder only
	// overwrites fields present in the body.
	req := models.CalculationRequest{Accuracy: 100}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, errors.New("invalid JSON body: " + err.Error())
	}
	return req, nil
}

// calculationError maps a calc error onto an HTTP status, always with the
// {"error": message} body shape.
func (h *Handler) calculationError(w http.ResponseWriter, err error) {
	var calcErr *calc.Error
	if !errors.As(err, &calcErr) {
		h.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	status := http.StatusInternalServerError
	switch calcErr.Code {
	case calc.CodeFileNotFound:
		status = http.StatusNotFound
	case calc.CodeInvalidMode:
		status = http.StatusBadRequest
	}
	h.errorResponse(w, status, calcErr.Message)
}

// archiveResult queues a calculation for the score archive. Best effort:
// a full queue or a disabled archive never affects the response.
func (h *Handler) archiveResult(req models.CalculationRequest, res *models.CalculationResult, simulated bool) {
	if h.pool == nil {
		return
	}

	score := store.Score{
		Mode:      res.Mode,
		Beatmap:   req.Path,
		Accuracy:  req.Accuracy,
		Misses:    res.StatsUsed[models.HitMiss],
		MaxCombo:  res.MaxCombo,
		Stars:     res.Stars,
		PP:        res.PP,
		Simulated: simulated,
		CreatedAt: time.Now().UTC(),
	}
	if !h.pool.Enqueue(score) {
		h.logger.Warn("Archive queue full, dropping score")
	}
}
