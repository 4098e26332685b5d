package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/beatly/internal/api"
)

var (
	_ list.Item = videoItem{}
)

// videoItem wraps [api.Video] to implement [list.Item].
type videoItem struct {
	video api.Video
}

func (i videoItem) FilterValue() string { return i.video.Title }
func (i videoItem) Title() string       { return i.video.Title }
func (i videoItem) Description() string {
	desc := fmt.Sprintf("%d views • %d likes", i.video.Views, i.video.Likes)
	if i.video.UploaderName != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.video.UploaderName)
	}
	return desc
}

// sortPreset pairs a display label with the query parameters it applies.
type sortPreset struct {
	label  string
	sortBy string
	order  api.SortOrder
}

var sortPresets = []sortPreset{
	{"Newest", "createdAt", api.SortDesc},
	{"Oldest", "createdAt", api.SortAsc},
	{"Most viewed", "views", api.SortDesc},
	{"Most liked", "likes", api.SortDesc},
}
