package formatter

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/beatly/internal/api"
	th "github.com/desertthunder/beatly/internal/testing"
)

func sampleVideos() []api.Video {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []api.Video{
		{ID: "v1", Title: "First", Views: 100, Likes: 10, Comments: 3, CreatedAt: created},
		{ID: "v2", Title: "Second, with comma", Views: 5, Likes: 0, Comments: 0, CreatedAt: created},
	}
}

func TestVideosToCSV(t *testing.T) {
	data, err := VideosToCSV(sampleVideos())
	if err != nil {
		t.Fatalf("VideosToCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "ID,Title,Views,Likes,Comments,Uploaded" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "v1,First,100,10,3") {
		t.Errorf("unexpected row: %s", lines[1])
	}
	if !strings.Contains(lines[2], `"Second, with comma"`) {
		t.Errorf("expected comma-bearing title to be quoted: %s", lines[2])
	}
}

func TestAnalyticsToMarkdown(t *testing.T) {
	page := &api.AnalyticsPage{
		Videos: sampleVideos(),
		OverallStats: api.OverallStats{
			TotalVideos: 2, TotalViews: 105, TotalLikes: 10, TotalComments: 3,
		},
	}

	md := string(AnalyticsToMarkdown(page))
	for _, want := range []string{
		"# Analytics",
		"**Total videos**: 2",
		"**Total views**: 105",
		"| First | 100 | 10 | 3 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestVideosToText(t *testing.T) {
	text := string(VideosToText(sampleVideos()))
	if !strings.Contains(text, "1. First") || !strings.Contains(text, "views 100") {
		t.Errorf("unexpected text:\n%s", text)
	}
}

func TestDetailToText(t *testing.T) {
	detail := &api.VideoDetail{
		Video:    sampleVideos()[0],
		Comments: []api.Comment{{UserName: "Ada", Text: "nice"}},
	}
	detail.Video.Description = "a description"
	detail.Video.UploaderName = "Grace"

	text := string(DetailToText(detail))
	for _, want := range []string{"Title: First", "Uploaded by: Grace", "Comments: 1", "Ada", "nice"} {
		if !strings.Contains(text, want) {
			t.Errorf("text missing %q:\n%s", want, text)
		}
	}
}

func TestWriteExports(t *testing.T) {
	detail := &api.VideoDetail{Video: sampleVideos()[0]}

	t.Run("CSV export writes stats and metadata", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "v1")
		statsFile, err := WriteCSVExport(detail, base)
		if err != nil {
			t.Fatalf("WriteCSVExport failed: %v", err)
		}
		th.AssertFileExists(t, statsFile)
		th.AssertFileExists(t, base+"_metadata.json")

		content := th.MustReadFile(t, statsFile)
		if !strings.Contains(content, "v1,First") {
			t.Errorf("unexpected CSV content: %s", content)
		}
	})

	t.Run("JSON export round-trips the detail", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "v1")
		file, err := WriteJSONExport(detail, base)
		if err != nil {
			t.Fatalf("WriteJSONExport failed: %v", err)
		}
		content := th.MustReadFile(t, file)
		if !strings.Contains(content, `"First"`) {
			t.Errorf("unexpected JSON content: %s", content)
		}
	})

	t.Run("text export writes the rendering", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "v1")
		file, err := WriteTextExport(detail, base)
		if err != nil {
			t.Fatalf("WriteTextExport failed: %v", err)
		}
		if !strings.Contains(th.MustReadFile(t, file), "Title: First") {
			t.Error("unexpected text content")
		}
	})
}

func TestWriteExportManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export_manifest.json")
	manifest := ExportManifest{
		TotalVideos:       2,
		SuccessfulExports: 1,
		FailedExports:     1,
		Videos: []ExportManifestEntry{
			{VideoID: "v1", Title: "First", Success: true, Files: []string{"v1.json"}},
			{VideoID: "v2", Title: "Second", Success: false, Error: "fetch failed"},
		},
	}

	if err := WriteExportManifest(manifest, "json", path); err != nil {
		t.Fatalf("WriteExportManifest failed: %v", err)
	}

	content := th.MustReadFile(t, path)
	for _, want := range []string{`"format": "json"`, `"total_videos": 2`, `"fetch failed"`} {
		if !strings.Contains(content, want) {
			t.Errorf("manifest missing %q", want)
		}
	}
}
