package handlers

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/marksentry/marksentry/internal/application/comparison"
	"github.com/marksentry/marksentry/internal/application/extraction"
	"github.com/marksentry/marksentry/internal/domain/trademark"
	"github.com/marksentry/marksentry/internal/infrastructure/monitoring/prometheus"
	appErrors "github.com/marksentry/marksentry/pkg/errors"
)

// DocumentExtractor is the slice of the extraction service the handler needs.
type DocumentExtractor interface {
	ExtractFromText(ctx context.Context, text string) (trademark.Record, error)
	ExtractFromImage(ctx context.Context, base64Image, mediaType string) (trademark.Record, error)
	ExtractFromPDF(ctx context.Context, pdf []byte) ([]trademark.Record, error)
}

// Media types accepted by the image endpoints.
var imageMediaTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
}

// ExtractHandler serves the document extraction endpoints.  When the
// extractor is nil (no API key configured) every endpoint answers 503.
type ExtractHandler struct {
	extractor DocumentExtractor
	compare   *comparison.Service
	metrics   *prometheus.Metrics
	maxUpload int64
}

// NewExtractHandler constructs an ExtractHandler.  metrics may be nil.
func NewExtractHandler(extractor DocumentExtractor, compare *comparison.Service, metrics *prometheus.Metrics, maxUpload int64) *ExtractHandler {
	return &ExtractHandler{
		extractor: extractor,
		compare:   compare,
		metrics:   metrics,
		maxUpload: maxUpload,
	}
}

func (h *ExtractHandler) ready(w http.ResponseWriter) bool {
	if h.extractor == nil {
		writeAppError(w, appErrors.New(appErrors.ErrCodeExtractUnavailable,
			"document extraction is not configured"))
		return false
	}
	return true
}

func (h *ExtractHandler) observe(kind string, start time.Time, err error) {
	if h.metrics == nil {
		return
	}
	h.metrics.ExtractionsTotal.WithLabelValues(kind).Inc()
	h.metrics.ExtractionDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if err != nil {
		h.metrics.ExtractionFailures.WithLabelValues(kind).Inc()
	}
}

// TextRequest is the body of POST /extract/trademark/text.
type TextRequest struct {
	Text string `json:"text"`
}

// FromText extracts a structured record from raw document text.
func (h *ExtractHandler) FromText(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	var req TextRequest
	if err := decodeJSON(w, r, &req, h.maxUpload); err != nil {
		writeAppError(w, err)
		return
	}

	start := time.Now()
	rec, err := h.extractor.ExtractFromText(r.Context(), req.Text)
	h.observe("text", start, err)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"document_type":  extraction.ClassifyDocument(req.Text),
		"trademark_data": rec,
	})
}

// Base64Request is the body of POST /extract/trademark/base64.
type Base64Request struct {
	Image     string `json:"image"`
	MediaType string `json:"media_type"`
}

// FromBase64 extracts a record from a base64-encoded image.  A data-URL
// prefix, if present, is stripped.
func (h *ExtractHandler) FromBase64(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	var req Base64Request
	if err := decodeJSON(w, r, &req, h.maxUpload); err != nil {
		writeAppError(w, err)
		return
	}

	data := req.Image
	mediaType := req.MediaType
	if strings.HasPrefix(data, "data:") {
		if idx := strings.IndexByte(data, ','); idx != -1 {
			header := data[len("data:"):idx]
			if semi := strings.IndexByte(header, ';'); semi != -1 {
				header = header[:semi]
			}
			if mediaType == "" {
				mediaType = header
			}
			data = data[idx+1:]
		}
	}

	start := time.Now()
	rec, err := h.extractor.ExtractFromImage(r.Context(), data, mediaType)
	h.observe("base64", start, err)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"trademark_data": rec})
}

// FromImage extracts a record from an uploaded image file.
func (h *ExtractHandler) FromImage(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	data, filename, err := h.readUpload(w, r)
	if err != nil {
		writeAppError(w, err)
		return
	}
	mediaType, ok := imageMediaTypes[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		writeAppError(w, appErrors.Newf(appErrors.ErrCodeExtractUnsupported,
			"unsupported image type %q (expected jpg, png, bmp, or tiff)", filepath.Ext(filename)))
		return
	}

	start := time.Now()
	rec, err := h.extractor.ExtractFromImage(r.Context(), base64.StdEncoding.EncodeToString(data), mediaType)
	h.observe("image", start, err)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"trademark_data": rec})
}

// FromPDF extracts records from an uploaded PDF.
func (h *ExtractHandler) FromPDF(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	recs, err := h.extractPDFUpload(w, r)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total_trademarks": len(recs),
		"trademark_data":   recs,
	})
}

// FromPDFWithComparison extracts records from an uploaded PDF and compares
// each against the stored corpus.  The form field similarity_threshold
// overrides the default.
func (h *ExtractHandler) FromPDFWithComparison(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	recs, err := h.extractPDFUpload(w, r)
	if err != nil {
		writeAppError(w, err)
		return
	}

	var threshold *float64
	if v := r.FormValue("similarity_threshold"); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeAppError(w, appErrors.Wrap(err, appErrors.ErrCodeMarkThresholdInvalid,
				"similarity_threshold is not a number"))
			return
		}
		threshold = &t
	}

	reports, err := h.compare.CompareAll(recs, threshold)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total_trademarks": len(recs),
		"trademark_data":   recs,
		"comparisons":      reports,
	})
}

func (h *ExtractHandler) extractPDFUpload(w http.ResponseWriter, r *http.Request) ([]trademark.Record, error) {
	data, filename, err := h.readUpload(w, r)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return nil, appErrors.New(appErrors.ErrCodeExtractUnsupported, "uploaded file is not a PDF")
	}

	start := time.Now()
	recs, err := h.extractor.ExtractFromPDF(r.Context(), data)
	h.observe("pdf", start, err)
	return recs, err
}

// readUpload reads the "file" part of a multipart upload.
func (h *ExtractHandler) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrCodeBadRequest,
			"request must carry a multipart \"file\" field")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrCodeBadRequest, "read uploaded file")
	}
	return data, header.Filename, nil
}
