// Package pestdetect proxies crop images to an external detection model and
// normalizes its predictions.
package pestdetect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

// Detector analyzes a crop image and returns the model's predictions.
type Detector interface {
	Detect(ctx context.Context, filename string, image io.Reader) ([]map[string]interface{}, error)
}

// Client calls a hosted inference endpoint over multipart HTTP.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Detect uploads the image and returns normalized predictions. The upstream
// "confidence" field is renamed to "score"; other fields pass through.
func (c *Client) Detect(ctx context.Context, filename string, image io.Reader) ([]map[string]interface{}, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("copying image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalizing upload form: %w", err)
	}

	endpoint := c.endpoint
	if c.apiKey != "" {
		endpoint += "?api_key=" + url.QueryEscape(c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("building detection request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling detection service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("detection service returned %d: %s", resp.StatusCode, payload)
	}

	return decodePredictions(resp.Body)
}

// decodePredictions handles both response shapes the service is known to
// emit: a bare array of predictions, or an object wrapping one.
func decodePredictions(r io.Reader) ([]map[string]interface{}, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding detection response: %w", err)
	}

	var list []map[string]interface{}
	if err := json.Unmarshal(raw, &list); err == nil {
		return normalize(list), nil
	}

	var wrapper struct {
		Predictions []map[string]interface{} `json:"predictions"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("decoding detection response: %w", err)
	}

	return normalize(wrapper.Predictions), nil
}

func normalize(predictions []map[string]interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(predictions))
	for _, p := range predictions {
		normalized := make(map[string]interface{}, len(p))
		for k, v := range p {
			if k == "confidence" {
				normalized["score"] = v
				continue
			}
			normalized[k] = v
		}
		out = append(out, normalized)
	}
	return out
}
