package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"quotation-service/internal/models"
)

const extractionPrompt = `You are reading a purchase enquiry or quotation request document.
Extract the following as JSON with exactly these fields:
{
  "customer": {"name": "", "address": "", "gstin": "", "state": ""},
  "date": "YYYY-MM-DD",
  "placeOfSupply": "",
  "items": [{"description": "", "qty": "", "rate": "", "unit": "", "gstRate": ""}]
}
All item numbers must be plain decimal strings. Leave any field you
cannot determine as an empty string. Do not invent values.`

// Extractor asks a generative model for a best-effort structured read
// of an uploaded document. The result is a guess: every field goes
// through the same validation as manually entered data before it can
// reach storage.
type Extractor struct {
	client *genai.Client
	model  string
	logger *logrus.Entry
}

// New creates a document extractor. Returns nil (feature disabled)
// when no API key is configured.
func New(ctx context.Context, apiKey, model string, logger *logrus.Logger) (*Extractor, error) {
	if apiKey == "" {
		logger.Warn("GEMINI_API_KEY not set, document extraction disabled")
		return nil, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Extractor{
		client: client,
		model:  model,
		logger: logger.WithField("component", "extraction"),
	}, nil
}

// Extract reads quotation fields out of an uploaded document. The
// returned structure may be partial or wrong; callers must never
// bypass quotation validation for it.
func (e *Extractor) Extract(ctx context.Context, data []byte, mimeType string) (*models.ExtractedQuotation, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(data, mimeType),
		genai.NewPartFromText(extractionPrompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := e.client.Models.GenerateContent(ctx, e.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("extraction request failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var extracted models.ExtractedQuotation
	if err := json.Unmarshal([]byte(text), &extracted); err != nil {
		e.logger.WithError(err).Warn("Model returned unparseable extraction output")
		return nil, fmt.Errorf("unparseable extraction output: %w", err)
	}

	return &extracted, nil
}
