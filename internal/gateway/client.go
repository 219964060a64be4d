package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fundalabs/funda/internal/model"
)

// Client is the HTTP implementation of ContentGateway, speaking the lesson
// backend's wire API. Every call takes a context so an abandoned session does
// not leave requests running.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ContentGateway = (*Client)(nil)

// NewClient builds a gateway client for the given base URL. A zero timeout
// defaults to 10 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) LessonQuestions(ctx context.Context, lessonID uint) ([]model.Question, error) {
	url := fmt.Sprintf("%s/api/language-questions/lesson/%d", c.baseURL, lessonID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching questions for lesson %d: %w", lessonID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching questions for lesson %d: unexpected status %d", lessonID, resp.StatusCode)
	}

	var questions []model.Question
	if err := json.NewDecoder(resp.Body).Decode(&questions); err != nil {
		return nil, fmt.Errorf("decoding question list for lesson %d: %w", lessonID, err)
	}
	return questions, nil
}

func (c *Client) IncrementPoints(ctx context.Context, learnerID uint, inc PointsIncrement) error {
	url := fmt.Sprintf("%s/api/language-learners/%d/increment-points", c.baseURL, learnerID)
	return c.post(ctx, url, inc)
}

func (c *Client) UpdateProgress(ctx context.Context, learnerID uint, upd ProgressUpdate) error {
	url := fmt.Sprintf("%s/api/language-learners/%d/progress", c.baseURL, learnerID)
	return c.post(ctx, url, upd)
}

func (c *Client) ReportQuestion(ctx context.Context, questionID uint, learnerID *uint, reason string) error {
	url := fmt.Sprintf("%s/api/language-questions/%d/report", c.baseURL, questionID)
	body := map[string]interface{}{"reason": reason}
	if learnerID != nil {
		body["learnerId"] = *learnerID
	}
	return c.post(ctx, url, body)
}

// AudioURL resolves a remote audio filename to its fetch URL.
func (c *Client) AudioURL(filename string) string {
	return fmt.Sprintf("%s/api/word/audio/get/%s", c.baseURL, filename)
}

func (c *Client) post(ctx context.Context, url string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posting to %s: %w", url, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("posting to %s: unexpected status %d", url, resp.StatusCode)
	}
	return nil
}
