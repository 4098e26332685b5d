package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const (
	videosPath    = "/api/videos"
	uploadPath    = "/api/videos/upload"
	analyticsPath = "/api/videos/all-analytics"
)

// ListVideos fetches one page of the video collection.
func (c *Client) ListVideos(ctx context.Context, q ListQuery) (*VideoPage, error) {
	path := videosPath
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page VideoPage
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// VideoDetail fetches a single video with its comments and like list.
func (c *Client) VideoDetail(ctx context.Context, videoID string) (*VideoDetail, error) {
	var detail VideoDetail
	path := fmt.Sprintf("%s/%s", videosPath, videoID)
	if err := c.do(ctx, http.MethodGet, path, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// VideoStats fetches the engagement view of a single video (detail plus
// comments, as surfaced on the management dashboard).
func (c *Client) VideoStats(ctx context.Context, videoID string) (*VideoDetail, error) {
	var detail VideoDetail
	path := fmt.Sprintf("%s/%s/stats", videosPath, videoID)
	if err := c.do(ctx, http.MethodGet, path, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ToggleLike flips the viewer's like on a video and returns the server's
// authoritative like state.
func (c *Client) ToggleLike(ctx context.Context, videoID string) (*LikeResult, error) {
	var result LikeResult
	path := fmt.Sprintf("%s/%s/like", videosPath, videoID)
	if err := c.do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteVideo removes a video. Management-only; the server enforces the role.
func (c *Client) DeleteVideo(ctx context.Context, videoID string) error {
	path := fmt.Sprintf("%s/%s", videosPath, videoID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// Analytics fetches one page of per-video analytics plus platform totals.
func (c *Client) Analytics(ctx context.Context, q ListQuery) (*AnalyticsPage, error) {
	path := analyticsPath
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page AnalyticsPage
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// UploadRequest describes a multipart video upload. Validation happens in the
// forms package before this is ever constructed; the client only transports.
type UploadRequest struct {
	Title         string
	Description   string
	Tags          []string
	VideoPath     string
	ThumbnailPath string // optional
}

// Upload sends the video (and optional thumbnail) as multipart form data on
// the long-timeout client.
func (c *Client) Upload(ctx context.Context, req UploadRequest) (*Video, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"title":       req.Title,
		"description": req.Description,
		"tags":        strings.Join(req.Tags, ","),
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}

	if err := attachFile(writer, "video", req.VideoPath); err != nil {
		return nil, err
	}
	if req.ThumbnailPath != "" {
		if err := attachFile(writer, "thumbnail", req.ThumbnailPath); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+uploadPath, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(httpReq)

	var created Video
	if err := c.send(c.uploadClient, httpReq, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// attachFile streams the file at path into a multipart part named field.
func attachFile(writer *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s file: %w", field, err)
	}
	defer f.Close()

	part, err := writer.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to create %s part: %w", field, err)
	}

	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("failed to copy %s data: %w", field, err)
	}

	return nil
}
