package handlers

import (
	"net/http"

	"github.com/marksentry/marksentry/internal/application/comparison"
	"github.com/marksentry/marksentry/internal/domain/trademark"
	appErrors "github.com/marksentry/marksentry/pkg/errors"
)

const maxCompareBodyBytes = 1 << 20

// CompareHandler serves the comparison endpoints.
type CompareHandler struct {
	svc *comparison.Service
}

// NewCompareHandler constructs a CompareHandler.
func NewCompareHandler(svc *comparison.Service) *CompareHandler {
	return &CompareHandler{svc: svc}
}

// CompareRequest is the body of POST /compare/trademark.
type CompareRequest struct {
	Trademark           trademark.Record `json:"trademark"`
	SimilarityThreshold *float64         `json:"similarity_threshold"`
}

// Compare scores the submitted record against the stored corpus.
func (h *CompareHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := decodeJSON(w, r, &req, maxCompareBodyBytes); err != nil {
		writeAppError(w, err)
		return
	}
	if len(req.Trademark) == 0 {
		writeAppError(w, appErrors.New(appErrors.ErrCodeMarkRecordMissing,
			"request body must carry a \"trademark\" object"))
		return
	}

	report, err := h.svc.Compare(req.Trademark, req.SimilarityThreshold)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// ScorePairRequest is the body of POST /compare/names.
type ScorePairRequest struct {
	Name1 string `json:"name1"`
	Name2 string `json:"name2"`
}

// ScorePair scores two bare names against each other.
func (h *CompareHandler) ScorePair(w http.ResponseWriter, r *http.Request) {
	var req ScorePairRequest
	if err := decodeJSON(w, r, &req, maxCompareBodyBytes); err != nil {
		writeAppError(w, err)
		return
	}
	sim := h.svc.ScorePair(req.Name1, req.Name2)
	writeJSON(w, http.StatusOK, map[string]any{
		"name1":      req.Name1,
		"name2":      req.Name2,
		"similarity": sim,
		"level":      trademark.Classify(sim.Overall),
	})
}
