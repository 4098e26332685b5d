package ui

import (
	"github.com/desertthunder/beatly/internal/api"
	"github.com/desertthunder/beatly/internal/auth"
	"github.com/desertthunder/beatly/internal/listctl"
)

// authDoneMsg reports the outcome of a login or signup request.
type authDoneMsg struct {
	session auth.Session
	err     error
}

// videosLoadedMsg carries a completed catalog page fetch for the controller
// that issued it.
type videosLoadedMsg struct {
	ctl  *listctl.Controller[api.Video]
	done listctl.Completion[api.Video]
}

// analyticsLoadedMsg carries a completed analytics page fetch.
type analyticsLoadedMsg struct {
	done  listctl.Completion[api.Video]
	stats *api.OverallStats
}

// detailLoadedMsg carries a fetched video detail.
type detailLoadedMsg struct {
	detail *api.VideoDetail
	err    error
}

// likeToggledMsg reports the server's new like state for the open video.
type likeToggledMsg struct {
	result *api.LikeResult
	err    error
}

// commentAddedMsg reports the outcome of posting a comment.
type commentAddedMsg struct {
	err error
}

// videoDeletedMsg reports a catalog deletion.
type videoDeletedMsg struct {
	videoID string
	err     error
}
