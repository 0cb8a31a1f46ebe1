// Package extraction turns trademark documents (raw text, scanned images,
// PDFs) into structured records using the Anthropic Messages API.  The engine
// core never depends on this package; extraction feeds it records and owns
// all of the error handling that entails.
package extraction

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/marksentry/marksentry/internal/config"
	"github.com/marksentry/marksentry/internal/domain/trademark"
	"github.com/marksentry/marksentry/internal/infrastructure/monitoring/logging"
	appErrors "github.com/marksentry/marksentry/pkg/errors"
)

// Messager is the slice of the Anthropic client the extractor needs.  Tests
// inject stubs through it.
type Messager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// Extractor performs LLM-backed document extraction.  Safe for concurrent
// use.
type Extractor struct {
	messages    Messager
	model       anthropic.Model
	visionModel anthropic.Model
	maxTokens   int64
	timeout     time.Duration
	log         logging.Logger
}

// NewExtractor builds an Extractor with a real Anthropic client.  Returns an
// unavailable error when no API key is configured so callers can degrade
// gracefully at startup.
func NewExtractor(cfg config.ExtractionConfig, log logging.Logger) (*Extractor, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, appErrors.New(appErrors.ErrCodeExtractUnavailable, "extraction API key not configured")
	}
	client := anthropic.NewClient(option.WithAPIKey(key))
	return NewExtractorWithMessager(&client.Messages, cfg, log), nil
}

// NewExtractorWithMessager builds an Extractor over an existing Messager.
func NewExtractorWithMessager(m Messager, cfg config.ExtractionConfig, log logging.Logger) *Extractor {
	if log == nil {
		log = logging.NewNopLogger()
	}
	vision := cfg.VisionModel
	if vision == "" {
		vision = cfg.Model
	}
	return &Extractor{
		messages:    m,
		model:       anthropic.Model(cfg.Model),
		visionModel: anthropic.Model(vision),
		maxTokens:   int64(cfg.MaxTokens),
		timeout:     cfg.Timeout,
		log:         log.Named("extraction"),
	}
}

// complete sends one user message and returns the concatenated text content
// of the response.
func (e *Extractor) complete(ctx context.Context, model anthropic.Model, system string, blocks ...anthropic.ContentBlockParamUnion) (string, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := e.messages.New(ctx, anthropic.MessageNewParams{
		Model:       model,
		MaxTokens:   e.maxTokens,
		System:      []anthropic.TextBlockParam{{Text: system}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(blocks...)},
		Temperature: anthropic.Float(0),
	})
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrCodeExtractLLMFailed, "messages API call failed")
	}

	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	out := sb.String()
	e.log.Debug("completion finished",
		logging.String("model", string(model)),
		logging.Int("response_chars", len(out)),
		logging.Duration("elapsed", time.Since(start)))
	return out, nil
}

// ExtractFromText structures raw document text into a trademark record.
func (e *Extractor) ExtractFromText(ctx context.Context, text string) (trademark.Record, error) {
	if strings.TrimSpace(text) == "" {
		return nil, appErrors.New(appErrors.ErrCodeExtractEmptyDocument, "document text is empty")
	}

	raw, err := e.complete(ctx, e.model, structuredSystemPrompt,
		anthropic.NewTextBlock(structuredUserPromptPrefix+text))
	if err != nil {
		return nil, err
	}
	return parseRecord(raw)
}

// ExtractTextFromImage runs the vision pass over a base64-encoded image and
// returns the raw text it contains.  mediaType defaults to image/png.
func (e *Extractor) ExtractTextFromImage(ctx context.Context, base64Image, mediaType string) (string, error) {
	if strings.TrimSpace(base64Image) == "" {
		return "", appErrors.New(appErrors.ErrCodeExtractEmptyDocument, "image data is empty")
	}
	if mediaType == "" {
		mediaType = "image/png"
	}

	text, err := e.complete(ctx, e.visionModel, textExtractSystemPrompt,
		anthropic.NewTextBlock(textExtractUserPrompt),
		anthropic.NewImageBlockBase64(mediaType, base64Image))
	if err != nil {
		return "", err
	}
	return text, nil
}

// ExtractFromImage runs both passes: vision text extraction, then structuring.
func (e *Extractor) ExtractFromImage(ctx context.Context, base64Image, mediaType string) (trademark.Record, error) {
	text, err := e.ExtractTextFromImage(ctx, base64Image, mediaType)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, appErrors.New(appErrors.ErrCodeExtractEmptyDocument, "no text found in image")
	}
	return e.ExtractFromText(ctx, text)
}

// ExtractFromPDF extracts records from a PDF document.  The whole file is
// sent as one document block, so multi-page filings come back as a single
// consolidated record.
func (e *Extractor) ExtractFromPDF(ctx context.Context, pdf []byte) ([]trademark.Record, error) {
	if len(pdf) == 0 {
		return nil, appErrors.New(appErrors.ErrCodeExtractEmptyDocument, "PDF data is empty")
	}

	text, err := e.complete(ctx, e.visionModel, textExtractSystemPrompt,
		anthropic.NewTextBlock(textExtractUserPrompt),
		anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{
			Data: base64.StdEncoding.EncodeToString(pdf),
		}))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, appErrors.New(appErrors.ErrCodeExtractEmptyDocument, "no text found in PDF")
	}

	rec, err := e.ExtractFromText(ctx, text)
	if err != nil {
		return nil, err
	}
	return []trademark.Record{rec}, nil
}

// parseRecord cleans a model response and decodes it into a flat string
// record.  Non-string scalar values are stringified; nulls become empty
// strings.
func parseRecord(raw string) (trademark.Record, error) {
	clean := CleanJSONResponse(raw)

	var fields map[string]any
	if err := json.Unmarshal([]byte(clean), &fields); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrCodeExtractBadResponse, "model returned invalid JSON")
	}

	rec := make(trademark.Record, len(fields))
	for k, v := range fields {
		switch val := v.(type) {
		case string:
			rec[k] = val
		case nil:
			rec[k] = ""
		default:
			rec[k] = fmt.Sprint(val)
		}
	}
	return rec, nil
}
