/*
Package ai asks Gemini for a short digest of a ticker's recent SENS headlines.
*/
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

// ErrNoAPIKey is returned when no Gemini API key is configured.
var ErrNoAPIKey = errors.New("gemini API key is required")

type Event struct {
	Category string `json:"category"`
	Details  string `json:"details"`
}

type Digest struct {
	Summary       []string `json:"summary"`
	NotableEvents []Event  `json:"notable_events"`
}

// Summarize sends the ticker's headline lines to Gemini and decodes the JSON
// digest. contextURLs are offered to the model's URL context tool.
func Summarize(ctx context.Context, ticker string, lines []string, contextURLs []string, apiKey string, modelName string) (*Digest, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	userContent := &genai.Content{
		Parts: []*genai.Part{
			{Text: buildPrompt(ticker, lines, contextURLs)},
		},
		Role: "user",
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		ResponseMIMEType: "application/json",
		ResponseSchema:   getResponseSchema(),
	}
	if len(contextURLs) > 0 {
		config.Tools = []*genai.Tool{{URLContext: &genai.URLContext{}}}
	}

	resp, err := client.Models.GenerateContent(ctx, modelName, []*genai.Content{userContent}, config)
	if err != nil {
		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}

	return parseDigest(resp.Text())
}

func parseDigest(respText string) (*Digest, error) {
	var digest Digest
	if err := json.Unmarshal([]byte(respText), &digest); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gemini JSON response: %w. Raw text: %s", err, respText)
	}
	return &digest, nil
}

func getResponseSchema() *genai.Schema {
	eventSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"category": {Type: genai.TypeString, Description: "One of the defined event categories."},
			"details":  {Type: genai.TypeString, Description: "What happened and when, citing the headline date."},
		},
		Required: []string{"category", "details"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "A list of 3-5 concise bullet points summarizing the headlines.",
			},
			"notable_events": {
				Type:        genai.TypeArray,
				Items:       eventSchema,
				Description: "Corporate actions or events worth a closer look.",
			},
		},
		Required: []string{"summary", "notable_events"},
	}
}
