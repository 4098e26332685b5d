package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/beatly/internal/api"
	"github.com/desertthunder/beatly/internal/auth"
	"github.com/desertthunder/beatly/internal/formatter"
	"github.com/desertthunder/beatly/internal/shared"
	"github.com/desertthunder/beatly/internal/tasks"
	"github.com/urfave/cli/v3"
)

// AnalyticsShow fetches platform totals and per-video performance.
// Requires the analytics feature.
func (r *Runner) AnalyticsShow(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.requireFeature(auth.FeatureAnalytics); err != nil {
		return err
	}

	q, err := queryFromFlags(cmd)
	if err != nil {
		return err
	}

	page, err := r.client.Analytics(ctx, q)
	if err != nil {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, api.ErrorMessage(err))
	}

	if cmd.Bool("json") {
		return r.writeJSON(page, cmd.Bool("pretty"))
	}

	if cmd.Bool("markdown") {
		return r.writePlain("%s", formatter.AnalyticsToMarkdown(page))
	}

	r.writePlainHeader("Analytics")
	r.writePlain("Videos: %d  Views: %d  Likes: %d  Comments: %d\n\n",
		page.OverallStats.TotalVideos, page.OverallStats.TotalViews,
		page.OverallStats.TotalLikes, page.OverallStats.TotalComments)
	r.writePlain("%s", formatter.VideosToText(page.Videos))
	r.writePlain("\npage %d/%d · %d videos\n",
		page.Pagination.CurrentPage, page.Pagination.TotalPages, page.Pagination.TotalVideos)
	return nil
}

// AnalyticsExport runs a bulk per-video stats export with progress reporting.
func (r *Runner) AnalyticsExport(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.requireFeature(auth.FeatureAnalytics); err != nil {
		return err
	}

	opts := tasks.ExportOpts{
		Format:     cmd.String("format"),
		OutputDir:  cmd.String("output"),
		NumWorkers: cmd.Int("workers"),
		RateLimit:  cmd.Float("rate"),
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = r.config.Export.NumWorkers
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = r.config.Export.RateLimit
	}

	r.logger.Info("starting bulk export", "format", opts.Format, "workers", opts.NumWorkers)

	progress := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.writePlain("%s\n", update.Message)
		}
	}()

	result, err := r.engine.Export(ctx, progress, opts)
	close(progress)
	<-done
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	r.writePlainln("Export complete")
	r.writePlain("Job:       %s\n", result.JobID)
	r.writePlain("Exported:  %d/%d videos\n", result.SuccessfulExports, result.TotalVideos)
	if result.FailedExports > 0 {
		r.writePlain("Failed:    %d\n", result.FailedExports)
	}
	r.writePlain("Output:    %s\n", result.OutputDirectory)
	r.writePlain("Manifest:  %s\n", result.ManifestPath)
	return nil
}

// AnalyticsJobs lists recorded export runs.
func (r *Runner) AnalyticsJobs(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.requireFeature(auth.FeatureAnalytics); err != nil {
		return err
	}

	jobs, err := r.engine.ListJobs()
	if err != nil {
		return fmt.Errorf("failed to list export jobs: %w", err)
	}

	if len(jobs) == 0 {
		return r.writePlain("No export runs recorded\n")
	}

	r.writePlainHeader("Export runs")
	for _, j := range jobs {
		r.writePlain("%s  %s  %s  %d/%d ok  %s\n",
			j.CreatedAt, j.ID, j.Format, j.Succeeded, j.Total, j.OutputDir)
	}
	return nil
}
