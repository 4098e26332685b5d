package tasks

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/desertthunder/beatly/internal/api"
	"github.com/desertthunder/beatly/internal/formatter"
	"github.com/desertthunder/beatly/internal/shared"
	"golang.org/x/time/rate"
)

// VideoClient defines the API surface the engine needs to fetch analytics data.
// This abstraction allows for easier testing and decoupling from the concrete client.
type VideoClient interface {
	Analytics(ctx context.Context, query api.ListQuery) (*api.AnalyticsPage, error)
	VideoStats(ctx context.Context, id string) (*api.VideoDetail, error)
}

// ExportOpts contains configuration for bulk video stat exports.
type ExportOpts struct {
	Format     string  // Export format: json, csv, txt
	OutputDir  string  // Base output directory (default: beatly_export_{epoch})
	NumWorkers int     // Concurrent workers (default: 5)
	RateLimit  float64 // Requests per second (default: 5)
}

// VideoExportJob is a unit of work for an export worker.
type VideoExportJob struct {
	VideoID string
	Title   string
}

// VideoExportResult records the outcome of exporting a single video.
type VideoExportResult struct {
	VideoID string
	Title   string
	Success bool
	Files   []string
	Error   error
}

// ExportResult contains aggregate results from a bulk export run.
type ExportResult struct {
	JobID             string
	TotalVideos       int
	SuccessfulExports int
	FailedExports     int
	OutputDirectory   string
	ManifestPath      string
	Results           []VideoExportResult
}

// StatsEngine orchestrates bulk exports of per-video statistics.
//
// Exports run through a worker pool with a shared rate limiter so large
// catalogs do not hammer the API. Each run is recorded in the export_jobs
// table for later inspection.
type StatsEngine struct {
	client VideoClient
	db     *sql.DB
}

// NewStatsEngine creates a StatsEngine. db may be nil, in which case runs are
// not recorded.
func NewStatsEngine(client VideoClient, db *sql.DB) *StatsEngine {
	return &StatsEngine{client: client, db: db}
}

// Export fetches the full analytics listing and exports every video's stats
// concurrently with rate limiting and progress tracking.
func (e *StatsEngine) Export(ctx context.Context, prog chan<- ProgressUpdate, opts ExportOpts) (*ExportResult, error) {
	if e.client == nil {
		return nil, fmt.Errorf("%w: API client not initialized", shared.ErrServiceUnavailable)
	}

	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("beatly_export_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 5
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}
	if opts.Format == "" {
		opts.Format = "json"
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	e.sendProgress(prog, fetchingAnalyticsUpdate(0, 0))

	query := api.DefaultListQuery()
	query.Limit = 100

	var videos []api.Video
	for {
		page, err := e.client.Analytics(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch analytics: %w", err)
		}
		videos = append(videos, page.Videos...)
		if query.Page >= page.Pagination.TotalPages {
			break
		}
		query.Page++
	}

	result := &ExportResult{
		JobID:           shared.GenerateID(),
		TotalVideos:     len(videos),
		OutputDirectory: opts.OutputDir,
		Results:         make([]VideoExportResult, 0, len(videos)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan VideoExportJob, len(videos))
	results := make(chan VideoExportResult, len(videos))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.exportWorker(ctx, &wg, limiter, jobs, results, opts)
	}

	go func() {
		for i, v := range videos {
			select {
			case <-ctx.Done():
				close(jobs)
				return
			default:
			}

			jobs <- VideoExportJob{VideoID: v.ID, Title: v.Title}
			e.sendProgress(prog, exportingVideoUpdate(i+1, len(videos), v.Title))
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Success {
			result.SuccessfulExports++
			e.sendProgress(prog, exportCompletedUpdate(completed, len(videos), res.Title, len(res.Files)))
		} else {
			result.FailedExports++
			e.sendProgress(prog, exportFailedUpdate(completed, len(videos), res.Title, res.Error))
		}
	}

	manifest := formatter.ExportManifest{
		TotalVideos:       result.TotalVideos,
		SuccessfulExports: result.SuccessfulExports,
		FailedExports:     result.FailedExports,
		Videos:            make([]formatter.ExportManifestEntry, 0, len(result.Results)),
	}
	for _, res := range result.Results {
		entry := formatter.ExportManifestEntry{
			VideoID: res.VideoID,
			Title:   res.Title,
			Success: res.Success,
			Files:   res.Files,
		}
		if res.Error != nil {
			entry.Error = res.Error.Error()
		}
		manifest.Videos = append(manifest.Videos, entry)
	}

	manifestPath := filepath.Join(opts.OutputDir, "export_manifest.json")
	if err := formatter.WriteExportManifest(manifest, opts.Format, manifestPath); err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath

	if err := e.recordJob(result, opts); err != nil {
		return result, fmt.Errorf("export completed but failed to record job: %w", err)
	}

	return result, nil
}

// exportWorker is a worker goroutine that exports videos from the jobs channel.
func (e *StatsEngine) exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	limiter *rate.Limiter,
	jobs <-chan VideoExportJob,
	results chan<- VideoExportResult,
	opts ExportOpts,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if err := limiter.Wait(ctx); err != nil {
			return
		}

		results <- e.exportSingleVideo(ctx, job, opts)
	}
}

// exportSingleVideo fetches one video's full stats and writes it in the
// requested format.
func (e *StatsEngine) exportSingleVideo(ctx context.Context, j VideoExportJob, opts ExportOpts) VideoExportResult {
	result := VideoExportResult{
		VideoID: j.VideoID,
		Title:   j.Title,
		Success: false,
		Files:   []string{},
	}

	detail, err := e.client.VideoStats(ctx, j.VideoID)
	if err != nil {
		result.Error = fmt.Errorf("failed to fetch video stats: %w", err)
		return result
	}

	base := filepath.Join(opts.OutputDir, j.VideoID)

	switch opts.Format {
	case "csv":
		statsFile, err := formatter.WriteCSVExport(detail, base)
		if err != nil {
			result.Error = fmt.Errorf("CSV export failed: %w", err)
			return result
		}
		result.Files = []string{statsFile, base + "_metadata.json"}
		result.Success = true

	case "txt":
		file, err := formatter.WriteTextExport(detail, base)
		if err != nil {
			result.Error = fmt.Errorf("text export failed: %w", err)
			return result
		}
		result.Files = []string{file}
		result.Success = true

	case "json":
		fallthrough
	default:
		file, err := formatter.WriteJSONExport(detail, base)
		if err != nil {
			result.Error = fmt.Errorf("JSON export failed: %w", err)
			return result
		}
		result.Files = []string{file}
		result.Success = true
	}

	return result
}

// recordJob persists a summary row for this export run.
func (e *StatsEngine) recordJob(result *ExportResult, opts ExportOpts) error {
	if e.db == nil {
		return nil
	}

	_, err := e.db.Exec(
		`INSERT INTO export_jobs (id, format, output_dir, total, succeeded, failed, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		result.JobID, opts.Format, result.OutputDirectory,
		result.TotalVideos, result.SuccessfulExports, result.FailedExports,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// ListJobs returns previously recorded export runs, newest first.
func (e *StatsEngine) ListJobs() ([]ExportJobRecord, error) {
	if e.db == nil {
		return nil, nil
	}

	rows, err := e.db.Query(
		`SELECT id, format, output_dir, total, succeeded, failed, created_at FROM export_jobs ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query export jobs: %w", err)
	}
	defer rows.Close()

	var records []ExportJobRecord
	for rows.Next() {
		var rec ExportJobRecord
		if err := rows.Scan(&rec.ID, &rec.Format, &rec.OutputDir, &rec.Total, &rec.Succeeded, &rec.Failed, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan export job: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ExportJobRecord is a persisted summary of one export run.
type ExportJobRecord struct {
	ID        string
	Format    string
	OutputDir string
	Total     int
	Succeeded int
	Failed    int
	CreatedAt string
}

func (e *StatsEngine) sendProgress(prog chan<- ProgressUpdate, update ProgressUpdate) {
	if prog == nil {
		return
	}
	select {
	case prog <- update:
	default:
	}
}
