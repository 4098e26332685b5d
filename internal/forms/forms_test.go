package forms

import (
	"strings"
	"testing"
)

func validUpload() *UploadForm {
	f := NewUploadForm()
	f.Title = "My first video"
	f.Description = "A description long enough to pass"
	f.VideoPath = "/tmp/clip.mp4"
	f.Tags.Add("music")
	return f
}

func TestUploadFormValidate(t *testing.T) {
	t.Run("complete form passes", func(t *testing.T) {
		if errs := validUpload().Validate(); !errs.Ok() {
			t.Errorf("unexpected errors: %v", errs)
		}
	})

	t.Run("title boundaries", func(t *testing.T) {
		cases := []struct {
			length int
			ok     bool
		}{
			{2, false},
			{3, true},
			{100, true},
			{101, false},
		}
		for _, c := range cases {
			f := validUpload()
			f.Title = strings.Repeat("a", c.length)
			errs := f.Validate()
			if got := errs.Ok(); got != c.ok {
				t.Errorf("title length %d: ok = %v, want %v (%v)", c.length, got, c.ok, errs)
			}
		}
	})

	t.Run("description boundaries", func(t *testing.T) {
		cases := []struct {
			length int
			ok     bool
		}{
			{9, false},
			{10, true},
			{500, true},
			{501, false},
		}
		for _, c := range cases {
			f := validUpload()
			f.Description = strings.Repeat("d", c.length)
			errs := f.Validate()
			if got := errs.Ok(); got != c.ok {
				t.Errorf("description length %d: ok = %v, want %v", c.length, got, c.ok)
			}
		}
	})

	t.Run("limits count characters, not bytes", func(t *testing.T) {
		f := validUpload()
		// 100 three-byte runes; a byte count would reject this as 300.
		f.Title = strings.Repeat("日", 100)
		if errs := f.Validate(); errs["title"] != "" {
			t.Errorf("expected a 100-rune title to pass, got %q", errs["title"])
		}

		f = validUpload()
		f.Title = strings.Repeat("日", 101)
		if errs := f.Validate(); errs["title"] == "" {
			t.Error("expected a 101-rune title to fail")
		}

		f = validUpload()
		f.Description = strings.Repeat("é", 500)
		if errs := f.Validate(); errs["description"] != "" {
			t.Errorf("expected a 500-rune description to pass, got %q", errs["description"])
		}
	})

	t.Run("whitespace-only title is missing, not short", func(t *testing.T) {
		f := validUpload()
		f.Title = "   "
		errs := f.Validate()
		if errs["title"] != "Title is required" {
			t.Errorf("got %q", errs["title"])
		}
	})

	t.Run("video file is required", func(t *testing.T) {
		f := validUpload()
		f.VideoPath = ""
		if errs := f.Validate(); errs["video"] == "" {
			t.Error("expected a video error")
		}
	})

	t.Run("at least one tag is required", func(t *testing.T) {
		f := validUpload()
		f.Tags = NewTagSet()
		if errs := f.Validate(); errs["tags"] == "" {
			t.Error("expected a tags error")
		}
	})

	t.Run("all errors reported at once", func(t *testing.T) {
		f := NewUploadForm()
		errs := f.Validate()
		for _, field := range []string{"title", "description", "video", "tags"} {
			if errs[field] == "" {
				t.Errorf("expected an error for %s", field)
			}
		}
		if errs.First() == "" {
			t.Error("expected First to pick a message")
		}
	})
}

func TestSignupFormValidate(t *testing.T) {
	valid := SignupForm{Name: "Ada", Email: "ada@example.com", Password: "longenough", ConfirmPassword: "longenough"}

	t.Run("complete form passes", func(t *testing.T) {
		if errs := valid.Validate(); !errs.Ok() {
			t.Errorf("unexpected errors: %v", errs)
		}
	})

	t.Run("password boundaries", func(t *testing.T) {
		cases := []struct {
			length int
			ok     bool
		}{
			{7, false},
			{8, true},
		}
		for _, c := range cases {
			f := valid
			f.Password = strings.Repeat("p", c.length)
			f.ConfirmPassword = f.Password
			if got := f.Validate().Ok(); got != c.ok {
				t.Errorf("password length %d: ok = %v, want %v", c.length, got, c.ok)
			}
		}
	})

	t.Run("mismatched confirmation", func(t *testing.T) {
		f := valid
		f.ConfirmPassword = "different1"
		if errs := f.Validate(); errs["confirm"] == "" {
			t.Error("expected a confirm error")
		}
	})

	t.Run("email must contain an at sign", func(t *testing.T) {
		f := valid
		f.Email = "nope"
		if errs := f.Validate(); errs["email"] == "" {
			t.Error("expected an email error")
		}
	})
}

func TestTagSet(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		s := NewTagSet()
		if !s.Add("  Rock ") {
			t.Fatal("expected Add to succeed")
		}
		if got := s.List(); len(got) != 1 || got[0] != "rock" {
			t.Errorf("List = %v", got)
		}
	})

	t.Run("duplicates are no-ops", func(t *testing.T) {
		s := NewTagSet()
		s.Add("rock")
		if s.Add("ROCK") {
			t.Error("expected case-insensitive duplicate to be rejected")
		}
		if s.Len() != 1 {
			t.Errorf("Len = %d", s.Len())
		}
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		s := NewTagSet()
		if s.Add("   ") {
			t.Error("expected whitespace-only tag to be rejected")
		}
	})

	t.Run("refuses an eleventh tag", func(t *testing.T) {
		s := NewTagSet()
		for i := 0; i < TagsMax; i++ {
			if !s.Add(strings.Repeat("t", i+1)) {
				t.Fatalf("tag %d rejected", i+1)
			}
		}
		if s.Add("overflow") {
			t.Error("expected the set to refuse growth past the limit")
		}
		if s.Len() != TagsMax {
			t.Errorf("Len = %d", s.Len())
		}
	})

	t.Run("remove deletes exactly one", func(t *testing.T) {
		s := NewTagSet()
		s.Add("a")
		s.Add("b")
		if !s.Remove("A") {
			t.Error("expected normalized removal to succeed")
		}
		if s.Remove("a") {
			t.Error("expected second removal to fail")
		}
		if got := s.List(); len(got) != 1 || got[0] != "b" {
			t.Errorf("List = %v", got)
		}
	})

	t.Run("ParseTagSet splits and dedupes", func(t *testing.T) {
		s := ParseTagSet("rock, Pop ,rock,, jazz")
		if got := s.List(); len(got) != 3 || got[0] != "rock" || got[1] != "pop" || got[2] != "jazz" {
			t.Errorf("List = %v", got)
		}
	})

	t.Run("List returns a copy", func(t *testing.T) {
		s := NewTagSet()
		s.Add("a")
		list := s.List()
		list[0] = "mutated"
		if s.List()[0] != "a" {
			t.Error("expected internal state to be unaffected")
		}
	})
}
