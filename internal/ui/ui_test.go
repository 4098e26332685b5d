package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/desertthunder/beatly/internal/api"
	"github.com/desertthunder/beatly/internal/auth"
	th "github.com/desertthunder/beatly/internal/testing"
)

func newTestModel(session *auth.Session) *Model {
	store := &th.MockStore{Session: session}
	client := api.NewClient(api.Opts{Tokens: store})
	return NewModel(context.Background(), store, client)
}

func TestModelInit(t *testing.T) {
	t.Run("no stored session shows login without an error", func(t *testing.T) {
		m := newTestModel(nil)
		m.Init()

		if m.view != LoginView {
			t.Errorf("view = %v, want LoginView", m.view)
		}
		if m.errMsg != "" {
			t.Errorf("expected no error, got %q", m.errMsg)
		}
	})

	t.Run("valid stored session skips login", func(t *testing.T) {
		m := newTestModel(&auth.Session{UserID: "u1", DisplayName: "Ada", Role: auth.RoleConsumer, Token: "tok"})
		cmd := m.Init()

		if m.view != HomeView {
			t.Errorf("view = %v, want HomeView", m.view)
		}
		if cmd == nil {
			t.Error("expected a fetch command for the home feed")
		}
	})

	t.Run("unknown stored role surfaces a login error", func(t *testing.T) {
		m := newTestModel(&auth.Session{UserID: "u1", DisplayName: "Ada", Role: auth.Role("guest"), Token: "tok"})
		m.Init()

		if m.view != LoginView {
			t.Errorf("view = %v, want LoginView", m.view)
		}
		if m.errMsg == "" {
			t.Fatal("expected the unknown role to surface an error")
		}
		if !strings.Contains(m.errMsg, "unknown user role") {
			t.Errorf("errMsg = %q, want the role failure", m.errMsg)
		}
		if m.session != nil {
			t.Error("expected the invalid session to be discarded")
		}
		if !strings.Contains(m.View(), "Error:") {
			t.Error("expected the login screen to render the error")
		}
	})
}
