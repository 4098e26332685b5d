// package formatter renders video listings and analytics to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/desertthunder/beatly/internal/api"
	"github.com/desertthunder/beatly/internal/shared"
)

// VideosToCSV converts a list of videos to CSV with columns: ID, Title, Views, Likes, Comments, Uploaded
func VideosToCSV(videos []api.Video) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Views", "Likes", "Comments", "Uploaded"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, v := range videos {
		record := []string{
			v.ID,
			v.Title,
			strconv.Itoa(v.Views),
			strconv.Itoa(v.Likes),
			strconv.Itoa(v.Comments),
			v.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// AnalyticsToMarkdown renders an analytics page as a Markdown report with the
// platform totals block followed by the per-video table.
func AnalyticsToMarkdown(page *api.AnalyticsPage) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Analytics\n\n")
	buf.WriteString(fmt.Sprintf("**Total videos**: %d\n", page.OverallStats.TotalVideos))
	buf.WriteString(fmt.Sprintf("**Total views**: %d\n", page.OverallStats.TotalViews))
	buf.WriteString(fmt.Sprintf("**Total likes**: %d\n", page.OverallStats.TotalLikes))
	buf.WriteString(fmt.Sprintf("**Total comments**: %d\n\n", page.OverallStats.TotalComments))

	buf.WriteString("## Videos\n\n")
	buf.WriteString("| Title | Views | Likes | Comments | Uploaded |\n")
	buf.WriteString("|---|---|---|---|---|\n")
	for _, v := range page.Videos {
		buf.WriteString(fmt.Sprintf("| %s | %d | %d | %d | %s |\n",
			v.Title, v.Views, v.Likes, v.Comments, v.CreatedAt.Format("2006-01-02")))
	}

	return buf.Bytes()
}

// VideosToText converts a list of videos to an aligned plain text listing.
func VideosToText(videos []api.Video) []byte {
	var buf bytes.Buffer

	for i, v := range videos {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, v.Title))
		buf.WriteString(fmt.Sprintf("   views %d · likes %d · comments %d · %s\n",
			v.Views, v.Likes, v.Comments, v.CreatedAt.Format("2006-01-02")))
	}

	return buf.Bytes()
}

// DetailToText renders a video detail (stats view) as plain text.
func DetailToText(detail *api.VideoDetail) []byte {
	var buf bytes.Buffer

	v := detail.Video
	buf.WriteString(fmt.Sprintf("Title: %s\n", v.Title))
	buf.WriteString(fmt.Sprintf("Description: %s\n", v.Description))
	if v.UploaderName != "" {
		buf.WriteString(fmt.Sprintf("Uploaded by: %s\n", v.UploaderName))
	}
	buf.WriteString(fmt.Sprintf("Uploaded on: %s\n", v.CreatedAt.Format("2006-01-02")))
	buf.WriteString(fmt.Sprintf("Views: %d  Likes: %d  Comments: %d\n", v.Views, v.Likes, len(detail.Comments)))

	if len(detail.Comments) > 0 {
		buf.WriteString("\nRecent comments:\n")
		for _, c := range detail.Comments {
			buf.WriteString(fmt.Sprintf("  %s (%s)\n    %s\n", c.UserName, c.CreatedAt.Format("2006-01-02 15:04"), c.Text))
		}
	}

	return buf.Bytes()
}

// WriteCSVExport writes one video's stats rows to {base}_stats.csv alongside a
// {base}_metadata.json file.
func WriteCSVExport(detail *api.VideoDetail, baseFilepath string) (string, error) {
	if baseFilepath == "" {
		baseFilepath = detail.Video.ID
	}

	csvData, err := VideosToCSV([]api.Video{detail.Video})
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	statsFile := baseFilepath + "_stats.csv"
	if err := os.WriteFile(statsFile, csvData, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	metadataJSON, err := shared.MarshalJSON(detail.Video, true)
	if err != nil {
		return "", fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	metadataFile := baseFilepath + "_metadata.json"
	if err := os.WriteFile(metadataFile, metadataJSON, 0644); err != nil {
		return "", fmt.Errorf("failed to write metadata file: %w", err)
	}

	return statsFile, nil
}

// WriteJSONExport writes one video's full detail to {base}.json.
func WriteJSONExport(detail *api.VideoDetail, baseFilepath string) (string, error) {
	if baseFilepath == "" {
		baseFilepath = detail.Video.ID
	}

	data, err := shared.MarshalJSON(detail, true)
	if err != nil {
		return "", fmt.Errorf("failed to generate JSON: %w", err)
	}

	file := baseFilepath + ".json"
	if err := os.WriteFile(file, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write JSON file: %w", err)
	}

	return file, nil
}

// WriteTextExport writes one video's detail to {base}.txt.
func WriteTextExport(detail *api.VideoDetail, baseFilepath string) (string, error) {
	if baseFilepath == "" {
		baseFilepath = detail.Video.ID
	}

	file := baseFilepath + ".txt"
	if err := os.WriteFile(file, DetailToText(detail), 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return file, nil
}
