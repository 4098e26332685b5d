package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchAnalytics Phase = iota
	FetchVideo
	ExportVideo
)

func (p Phase) String() string {
	switch p {
	case FetchAnalytics:
		return "fetch_analytics"
	case FetchVideo:
		return "fetch_video"
	case ExportVideo:
		return "export_video"
	default:
		return ""
	}
}

func fetchingAnalyticsUpdate(step, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchAnalytics,
		Step:    step,
		Total:   total,
		Message: "Fetching analytics from the platform...",
	}
}

func exportingVideoUpdate(step, total int, title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportVideo,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Exporting: %s...", step, total, title),
	}
}

func exportCompletedUpdate(step, total int, title string, filesCount int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportVideo,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s (%d files)", step, total, title, filesCount),
	}
}

func exportFailedUpdate(step, total int, title string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportVideo,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, title, err),
	}
}
