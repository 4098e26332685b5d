package formatter

import (
	"fmt"
	"os"
	"time"

	"github.com/desertthunder/beatly/internal/shared"
)

// ExportManifest summarizes a bulk export run for the manifest file written
// alongside the exported videos.
type ExportManifest struct {
	ExportDate        string                `json:"export_date"`
	Format            string                `json:"format"`
	TotalVideos       int                   `json:"total_videos"`
	SuccessfulExports int                   `json:"successful_exports"`
	FailedExports     int                   `json:"failed_exports"`
	Videos            []ExportManifestEntry `json:"videos"`
}

// ExportManifestEntry records the outcome of a single video export.
type ExportManifestEntry struct {
	VideoID string   `json:"video_id"`
	Title   string   `json:"title"`
	Success bool     `json:"success"`
	Files   []string `json:"files,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// WriteExportManifest writes the manifest JSON to the given path.
func WriteExportManifest(manifest ExportManifest, format, path string) error {
	manifest.ExportDate = time.Now().Format(time.RFC3339)
	manifest.Format = format

	data, err := shared.MarshalJSON(manifest, true)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest file: %w", err)
	}

	return nil
}
