package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const commentsPath = "/api/comments"

// AddComment posts a comment to a video. Empty or whitespace-only text is
// rejected here, before any network traffic.
func (c *Client) AddComment(ctx context.Context, videoID, text string) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("comment cannot be empty")
	}

	body := struct {
		Text    string `json:"text"`
		VideoID string `json:"videoId"`
	}{text, videoID}

	var created Comment
	if err := c.do(ctx, http.MethodPost, commentsPath, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
