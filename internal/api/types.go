package api

import "time"

// User is the identity payload returned by the auth endpoints.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Video is the server-owned projection of an uploaded video.
//
// The likes count and comment count are read-only here; like state is only
// ever replaced from a [LikeResult].
type Video struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Tags         []string  `json:"tags"`
	Thumbnail    string    `json:"thumbnail"`
	URL          string    `json:"url"`
	Views        int       `json:"views"`
	Likes        int       `json:"likes"`
	Comments     int       `json:"comments"`
	UploaderName string    `json:"uploaderName"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Comment is a single append-only comment on a video.
type Comment struct {
	ID        string    `json:"_id"`
	UserName  string    `json:"userName"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Pagination is the paging metadata block returned by collection endpoints.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalVideos int `json:"totalVideos"`
	Limit       int `json:"limit"`
}

// VideoPage is one page of the video collection.
type VideoPage struct {
	Videos     []Video    `json:"videos"`
	Pagination Pagination `json:"pagination"`
}

// VideoDetail is the full payload for a single video: the video, its comments,
// and the ids of users who liked it (used to derive the viewer's like state).
type VideoDetail struct {
	Video    Video    `json:"video"`
	Comments []Comment `json:"comments"`
	Likes    []string `json:"likes"`
}

// LikedBy reports whether userID appears in the detail's likes.
func (d *VideoDetail) LikedBy(userID string) bool {
	if userID == "" {
		return false
	}
	for _, id := range d.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// LikeResult is the authoritative like state returned by the toggle endpoint.
// The client replaces its local state from this wholesale; it never increments
// locally.
type LikeResult struct {
	Likes      []string `json:"likes"`
	TotalLikes int      `json:"totalLikes"`
}

// OverallStats is the platform-wide totals block on the analytics endpoint.
type OverallStats struct {
	TotalVideos   int `json:"totalVideos"`
	TotalViews    int `json:"totalViews"`
	TotalLikes    int `json:"totalLikes"`
	TotalComments int `json:"totalComments"`
}

// AnalyticsPage is one page of per-video analytics rows plus platform totals.
type AnalyticsPage struct {
	Videos       []Video      `json:"videos"`
	OverallStats OverallStats `json:"overallStats"`
	Pagination   Pagination   `json:"pagination"`
}

// AuthResponse is the payload of login and register.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
