package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
	extractTimeout = 90 * time.Second // resume parsing is slow on cold starts
)

// Client handles communication with the external ML recommendation and
// resume-parsing service.
type Client struct {
	baseURL       string
	defaultClient *http.Client
	longClient    *http.Client
}

// NewClient creates a new ML service client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		defaultClient: &http.Client{
			Timeout: defaultTimeout,
		},
		longClient: &http.Client{
			Timeout: extractTimeout,
		},
	}
}

// ProfileRequest is the recommendation query.
type ProfileRequest struct {
	Skills         []string `json:"skills"`
	Sectors        []string `json:"sectors"`
	InternshipType string   `json:"internshipType"`
}

// Recommendation is one scored internship reference from the service.
type Recommendation struct {
	InternshipID string  `json:"internship_id"`
	Score        float64 `json:"score"`
}

// ProfileRecommendations fetches scored internship ids for a profile. The
// service answers either with a bare array or wrapped in a "recommendations"
// object; both shapes are accepted.
func (c *Client) ProfileRecommendations(ctx context.Context, req ProfileRequest) ([]Recommendation, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/profile-recommendations", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.defaultClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recommendations failed with status %d", resp.StatusCode)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}

	var recs []Recommendation
	if err := json.Unmarshal(raw, &recs); err == nil {
		return recs, nil
	}

	var wrapped struct {
		Recommendations []Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return wrapped.Recommendations, nil
}

// ExtractResumeContent uploads a resume file and returns the parsed content.
func (c *Client) ExtractResumeContent(ctx context.Context, filename string, file io.Reader) (map[string]any, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/resume-content-extractor", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.longClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("resume extraction failed with status %d", resp.StatusCode)
	}

	var content map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&content); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return content, nil
}
