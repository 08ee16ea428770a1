package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gorm.io/gorm"
)

// Ollama is the shared client for the external generation service, wired up
// in main (and swapped for a test double in handler tests).
var Ollama *OllamaClient

// OllamaClient talks to a local Ollama instance. Every call is bounded by the
// HTTP client timeout and the caller's context.
type OllamaClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewOllamaClient builds a client for the given base URL (trailing slash
// expected, endpoint paths are appended directly).
func NewOllamaClient(baseURL string) *OllamaClient {
	return &OllamaClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// ModelOption is the model list shape used by the AI page dropdown
type ModelOption struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}

type ollamaTagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}

// ListModels fetches the installed model tags from the Ollama instance
func (c *OllamaClient) ListModels(ctx context.Context) ([]ModelOption, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"api/tags", nil)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Message: fmt.Sprintf("Failed to connect to Ollama API for tags: %v", err)}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return nil, &UpstreamError{
			StatusCode: res.StatusCode,
			Message:    fmt.Sprintf("Ollama API tags error: Status %d, Body: %s", res.StatusCode, string(body)),
		}
	}

	var tags ollamaTagsResponse
	if err := json.NewDecoder(res.Body).Decode(&tags); err != nil {
		return nil, &UpstreamError{Message: fmt.Sprintf("Failed to parse Ollama API tags response: %v", err)}
	}

	options := make([]ModelOption, 0, len(tags.Models))
	for _, m := range tags.Models {
		options = append(options, ModelOption{ID: m.Name, Name: m.Name})
	}
	return options, nil
}

// Generate sends a non-streaming generation request and returns the model's
// answer. Non-2xx upstream statuses surface as UpstreamError carrying the
// upstream status code.
func (c *OllamaClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	payload, err := json.Marshal(ollamaGenerateRequest{Model: model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", &UpstreamError{Message: fmt.Sprintf("Failed to connect to Ollama API for generation: %v", err)}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(res.Body)
		return "", &UpstreamError{
			StatusCode: res.StatusCode,
			Message:    fmt.Sprintf("Ollama API generation error: Status %d, Body: %s", res.StatusCode, string(body)),
		}
	}

	var generated ollamaGenerateResponse
	if err := json.NewDecoder(res.Body).Decode(&generated); err != nil {
		return "", &UpstreamError{Message: fmt.Sprintf("Failed to parse Ollama API generation response: %v", err)}
	}
	return generated.Response, nil
}

// documentQuestionPrompt frames the extracted document text and the user's
// question the way the frontend expects answers to be grounded.
func documentQuestionPrompt(documentText, question string) string {
	return fmt.Sprintf(
		"Com base no seguinte documento, responda à pergunta do usuário. Se a informação não estiver no documento, diga que não pode responder.\n\nDocumento:\n```\n%s\n```\n\nPergunta do Usuário: %s",
		documentText, question,
	)
}

// AnswerDocumentQuestion runs the document Q&A pipeline: fetch the stored
// document by filename, extract its text, and ask the model.
func AnswerDocumentQuestion(ctx context.Context, dbConn *gorm.DB, client *OllamaClient, extractor TextExtractor, fileName, question, model string) (string, error) {
	content, err := GetDocumentContentByName(ctx, dbConn, fileName)
	if err != nil {
		return "", err
	}

	text, err := extractor.Extract(content)
	if err != nil {
		return "", err
	}

	return client.Generate(ctx, model, documentQuestionPrompt(text, question))
}
