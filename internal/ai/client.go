// Package ai provides the Gemini-backed collaborators: calorie
// estimation from a meal photo and the next-match lookup.
package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hayati-app/hayati/internal/model"
)

const (
	baseURL        = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultModel   = "gemini-2.0-flash"
	requestTimeout = 30 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

var (
	// ErrUnauthorized indicates the API key is invalid or revoked.
	ErrUnauthorized = errors.New("ai: unauthorized (check the API key)")
	// ErrRateLimited indicates the API quota was exhausted.
	ErrRateLimited = errors.New("ai: rate limited")
	// ErrEmptyReply indicates the model returned no usable candidate.
	ErrEmptyReply = errors.New("ai: empty reply")
)

// Client calls the Gemini generateContent API.
type Client struct {
	apiKey string
	model  string
	http   *http.Client
}

// NewClient creates a client for the given API key.
// Returns nil if the key is empty; callers treat a nil client as the
// AI features being switched off.
func NewClient(apiKey, modelName string) *Client {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil
	}
	if modelName == "" {
		modelName = defaultModel
	}
	return &Client{
		apiKey: apiKey,
		model:  modelName,
		http:   &http.Client{},
	}
}

const caloriePrompt = `You are a nutrition assistant. Look at this photo of food and estimate its calories.
Respond with JSON only, in this exact shape:
{"description": "<short description of the food>", "calories": <number>}`

// EstimateCalories estimates the calories in a meal photo.
func (c *Client) EstimateCalories(ctx context.Context, image []byte, mimeType string) (*model.CalorieEstimate, error) {
	if len(image) == 0 {
		return nil, errors.New("ai: empty image")
	}
	req := generateRequest{
		Contents: []content{{Parts: []part{
			{Text: caloriePrompt},
			{InlineData: &inlineData{
				MimeType: mimeType,
				Data:     base64.StdEncoding.EncodeToString(image),
			}},
		}}},
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return nil, err
	}
	return parseCalorieReply(text)
}

const matchPromptFmt = `Today is %s. When is the next scheduled football match for %s?
Respond with JSON only, in this exact shape:
{"found": true, "opponent": "<team>", "competition": "<competition>", "kickoff": "<RFC 3339 timestamp>"}
If no upcoming match is scheduled, respond with {"found": false}.`

// NextMatch looks up the team's next scheduled match. A (nil, nil)
// return means the lookup succeeded and found nothing scheduled.
func (c *Client) NextMatch(ctx context.Context, team string, now time.Time) (*model.Match, error) {
	req := generateRequest{
		Contents: []content{{Parts: []part{
			{Text: fmt.Sprintf(matchPromptFmt, now.Format("2006-01-02"), team)},
		}}},
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return nil, err
	}
	return parseMatchReply(text)
}

// generate posts one request and returns the first candidate's text.
func (c *Client) generate(ctx context.Context, greq generateRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	payload, err := json.Marshal(greq)
	if err != nil {
		return "", fmt.Errorf("ai: encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("ai: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", ErrUnauthorized
	case http.StatusTooManyRequests:
		return "", ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("ai: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("ai: reading response: %w", err)
	}

	var gresp generateResponse
	if err := json.Unmarshal(body, &gresp); err != nil {
		return "", fmt.Errorf("ai: parsing response: %w", err)
	}
	if len(gresp.Candidates) == 0 || len(gresp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyReply
	}
	return gresp.Candidates[0].Content.Parts[0].Text, nil
}

// parseCalorieReply decodes the model's calorie JSON, tolerating code
// fences around the payload.
func parseCalorieReply(text string) (*model.CalorieEstimate, error) {
	var reply calorieReply
	if err := json.Unmarshal([]byte(stripFences(text)), &reply); err != nil {
		return nil, fmt.Errorf("ai: parsing calorie reply: %w", err)
	}
	if reply.Description == "" || reply.Calories <= 0 {
		return nil, fmt.Errorf("ai: implausible calorie reply: %q / %.0f", reply.Description, reply.Calories)
	}
	return &model.CalorieEstimate{Description: reply.Description, Calories: reply.Calories}, nil
}

// parseMatchReply decodes the model's match JSON. An explicit
// not-found answer, or a reply missing the opponent or kickoff, maps
// to (nil, nil) rather than an error.
func parseMatchReply(text string) (*model.Match, error) {
	var reply matchReply
	if err := json.Unmarshal([]byte(stripFences(text)), &reply); err != nil {
		return nil, fmt.Errorf("ai: parsing match reply: %w", err)
	}
	if !reply.Found || reply.Opponent == "" || reply.Kickoff == "" {
		return nil, nil
	}
	kickoff, err := time.Parse(time.RFC3339, reply.Kickoff)
	if err != nil {
		return nil, nil
	}
	return &model.Match{
		ID:          uuid.NewString(),
		Opponent:    reply.Opponent,
		Competition: reply.Competition,
		Kickoff:     kickoff,
	}, nil
}

// stripFences removes a ```json ... ``` wrapper if the model added one.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
