// Package forms validates user input before it reaches the network.
//
// Validation failures block submission entirely; they are surfaced inline and
// never sent to the server.
package forms

import (
	"strings"
	"unicode/utf8"
)

// Field-level limits enforced by the upload form.
const (
	TitleMin       = 3
	TitleMax       = 100
	DescriptionMin = 10
	DescriptionMax = 500
	TagsMax        = 10
	PasswordMin    = 8
)

// Errors maps field names to validation messages.
type Errors map[string]string

// Ok reports whether validation passed.
func (e Errors) Ok() bool { return len(e) == 0 }

// First returns an arbitrary-but-stable first message for compact display.
func (e Errors) First() string {
	for _, field := range []string{"name", "email", "password", "confirm", "title", "description", "video", "tags"} {
		if msg, ok := e[field]; ok {
			return msg
		}
	}
	for _, msg := range e {
		return msg
	}
	return ""
}

// UploadForm collects the fields of a video upload.
type UploadForm struct {
	Title         string
	Description   string
	Tags          *TagSet
	VideoPath     string
	ThumbnailPath string
}

// NewUploadForm creates an empty upload form.
func NewUploadForm() *UploadForm {
	return &UploadForm{Tags: NewTagSet()}
}

// Validate checks every field and returns the full error map.
func (f *UploadForm) Validate() Errors {
	errs := Errors{}

	// Limits count characters, not bytes, so multibyte titles measure fairly.
	title := strings.TrimSpace(f.Title)
	if title == "" {
		errs["title"] = "Title is required"
	} else if n := utf8.RuneCountInString(f.Title); n < TitleMin || n > TitleMax {
		errs["title"] = "Title must be between 3 and 100 characters"
	}

	desc := strings.TrimSpace(f.Description)
	if desc == "" {
		errs["description"] = "Description is required"
	} else if n := utf8.RuneCountInString(f.Description); n < DescriptionMin || n > DescriptionMax {
		errs["description"] = "Description must be between 10 and 500 characters"
	}

	if f.VideoPath == "" {
		errs["video"] = "Video file is required"
	}

	switch {
	case f.Tags == nil || f.Tags.Len() == 0:
		errs["tags"] = "At least one tag is required"
	case f.Tags.Len() > TagsMax:
		errs["tags"] = "Maximum of 10 tags allowed"
	}

	return errs
}

// SignupForm collects the fields of consumer registration.
type SignupForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Validate checks every field and returns the full error map.
func (f *SignupForm) Validate() Errors {
	errs := Errors{}

	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Full name is required"
	}

	email := strings.TrimSpace(f.Email)
	if email == "" {
		errs["email"] = "Email is required"
	} else if !strings.Contains(email, "@") {
		errs["email"] = "Email is not valid"
	}

	if f.Password == "" {
		errs["password"] = "Password is required"
	} else if len(f.Password) < PasswordMin {
		errs["password"] = "Password must be at least 8 characters"
	}

	if f.Password != f.ConfirmPassword {
		errs["confirm"] = "Passwords do not match"
	}

	return errs
}
