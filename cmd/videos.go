package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/beatly/internal/api"
	"github.com/desertthunder/beatly/internal/auth"
	"github.com/desertthunder/beatly/internal/formatter"
	"github.com/desertthunder/beatly/internal/forms"
	"github.com/desertthunder/beatly/internal/shared"
	"github.com/urfave/cli/v3"
)

var sortFields = map[string]bool{"createdAt": true, "views": true, "likes": true}

// queryFromFlags builds a list query from the common pagination flags.
func queryFromFlags(cmd *cli.Command) (api.ListQuery, error) {
	q := api.DefaultListQuery()

	if page := cmd.Int("page"); page > 0 {
		q.Page = page
	}
	if limit := cmd.Int("limit"); limit > 0 {
		q.Limit = limit
	}

	if sort := cmd.String("sort"); sort != "" {
		if !sortFields[sort] {
			return q, fmt.Errorf("%w: unknown sort field %q", shared.ErrInvalidFlag, sort)
		}
		q.SortBy = sort
	}

	switch order := cmd.String("order"); order {
	case "", "desc":
		q.Order = api.SortDesc
	case "asc":
		q.Order = api.SortAsc
	default:
		return q, fmt.Errorf("%w: order must be asc or desc, got %q", shared.ErrInvalidFlag, order)
	}

	return q, nil
}

// VideosList fetches a page of the catalog.
func (r *Runner) VideosList(ctx context.Context, cmd *cli.Command) error {
	q, err := queryFromFlags(cmd)
	if err != nil {
		return err
	}

	r.logger.Debug("listing videos", "page", q.Page, "limit", q.Limit, "sort", q.SortBy, "order", q.Order)

	page, err := r.client.ListVideos(ctx, q)
	if err != nil {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, api.ErrorMessage(err))
	}

	if cmd.Bool("json") {
		return r.writeJSON(page, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Videos · page %d/%d · %d total",
		page.Pagination.CurrentPage, page.Pagination.TotalPages, page.Pagination.TotalVideos))
	r.writePlain("%s", formatter.VideosToText(page.Videos))
	return nil
}

// VideosGet fetches one video with its comments and likes.
func (r *Runner) VideosGet(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: video id", shared.ErrMissingArgument)
	}

	detail, err := r.client.VideoDetail(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, api.ErrorMessage(err))
	}

	if cmd.Bool("json") {
		return r.writeJSON(detail, cmd.Bool("pretty"))
	}

	r.writePlain("%s", formatter.DetailToText(detail))

	if session := r.storeSession(); session != nil && detail.LikedBy(session.UserID) {
		r.writePlain("\nYou liked this video\n")
	}
	return nil
}

// VideosStats fetches one video's full stats.
func (r *Runner) VideosStats(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: video id", shared.ErrMissingArgument)
	}

	detail, err := r.client.VideoStats(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, api.ErrorMessage(err))
	}

	if cmd.Bool("json") {
		return r.writeJSON(detail, cmd.Bool("pretty"))
	}

	r.writePlain("%s", formatter.DetailToText(detail))
	return nil
}

// VideosLike toggles the caller's like on a video.
func (r *Runner) VideosLike(ctx context.Context, cmd *cli.Command) error {
	session, err := r.session()
	if err != nil {
		return err
	}

	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: video id", shared.ErrMissingArgument)
	}

	result, err := r.client.ToggleLike(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, api.ErrorMessage(err))
	}

	liked := false
	for _, uid := range result.Likes {
		if uid == session.UserID {
			liked = true
			break
		}
	}

	if liked {
		return r.writePlain("✓ Liked (%d total)\n", result.TotalLikes)
	}
	return r.writePlain("✓ Like removed (%d total)\n", result.TotalLikes)
}

// VideosComment posts a comment on a video.
func (r *Runner) VideosComment(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.session(); err != nil {
		return err
	}

	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: video id", shared.ErrMissingArgument)
	}

	comment, err := r.client.AddComment(ctx, id, cmd.String("text"))
	if err != nil {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, api.ErrorMessage(err))
	}

	return r.writePlain("✓ Comment posted as %s\n", comment.UserName)
}

// VideosDelete removes a video from the catalog. Requires the manage feature.
func (r *Runner) VideosDelete(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.requireFeature(auth.FeatureManage); err != nil {
		return err
	}

	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: video id", shared.ErrMissingArgument)
	}

	if !cmd.Bool("yes") {
		return fmt.Errorf("%w: pass --yes to confirm deletion of %s", shared.ErrInvalidArgument, id)
	}

	if err := r.client.DeleteVideo(ctx, id); err != nil {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, api.ErrorMessage(err))
	}

	r.logger.Info("video deleted", "id", id)
	return r.writePlain("✓ Deleted %s\n", id)
}

// VideosUpload validates the metadata locally, then uploads the file.
func (r *Runner) VideosUpload(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.session(); err != nil {
		return err
	}

	form := forms.NewUploadForm()
	form.Title = strings.TrimSpace(cmd.String("title"))
	form.Description = strings.TrimSpace(cmd.String("description"))
	form.VideoPath = cmd.String("file")
	form.ThumbnailPath = cmd.String("thumbnail")
	form.Tags = forms.ParseTagSet(cmd.String("tags"))

	if errs := form.Validate(); !errs.Ok() {
		return fmt.Errorf("%w: %s", shared.ErrInvalidInput, errs.First())
	}

	r.logger.Info("uploading video", "title", form.Title, "file", form.VideoPath)

	video, err := r.client.Upload(ctx, api.UploadRequest{
		Title:         form.Title,
		Description:   form.Description,
		Tags:          form.Tags.List(),
		VideoPath:     form.VideoPath,
		ThumbnailPath: form.ThumbnailPath,
	})
	if err != nil {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, api.ErrorMessage(err))
	}

	return r.writePlain("✓ Uploaded %s (%s)\n", video.Title, video.ID)
}

// storeSession returns the stored session without treating absence as an error.
func (r *Runner) storeSession() *auth.Session {
	if r.store == nil {
		return nil
	}
	return r.store.Current()
}
