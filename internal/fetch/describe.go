package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/google/uuid"

	applog "github.com/RoroDev2023/RizzTheGrid/internal/log"
)

// ErrNoDescribeKey is returned when no API key is configured.
var ErrNoDescribeKey = errors.New("describe key not configured")

type describeResponse struct {
	Summary string `json:"summary"`
}

// Describe uploads an encoded image to the describe service and
// returns its one-paragraph summary.
func (c *Client) Describe(ctx context.Context, img []byte, contentType string) (string, error) {
	if c.Key == "" {
		return "", ErrNoDescribeKey
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoints.DescribeURL, bytes.NewReader(img))
	if err != nil {
		return "", err
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+c.Key)
	req.Header.Set("X-Request-Id", reqID)
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		applog.WithComponent("fetch").Warn("describe failed",
			"status", resp.Status, "request_id", reqID)
		return "", fmt.Errorf("describe: %s", resp.Status)
	}
	var out describeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Summary, nil
}

// DescribeFile reads an image file, sniffs its content type and asks
// the service to summarize it.
func (c *Client) DescribeFile(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return c.Describe(ctx, data, http.DetectContentType(data))
}
