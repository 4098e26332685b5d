package auth

import (
	"testing"

	"github.com/desertthunder/beatly/internal/shared"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// A pooled :memory: database is per-connection; pin to one.
	shared.ConfigureDatabase(db, 1, 1)

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return NewSQLiteStore(db)
}

func TestSQLiteStore(t *testing.T) {
	sample := Session{UserID: "u1", DisplayName: "Ada", Role: RoleConsumer, Token: "tok-1"}

	t.Run("Current returns nil before any save", func(t *testing.T) {
		store := newTestStore(t)
		if got := store.Current(); got != nil {
			t.Errorf("expected nil session, got %+v", got)
		}
		if tok := store.Token(); tok != "" {
			t.Errorf("expected empty token, got %q", tok)
		}
	})

	t.Run("Save then Current round-trips the session", func(t *testing.T) {
		store := newTestStore(t)
		if err := store.Save(sample); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		got := store.Current()
		if got == nil {
			t.Fatal("expected a session")
		}
		if *got != sample {
			t.Errorf("got %+v, want %+v", *got, sample)
		}
		if store.Token() != "tok-1" {
			t.Errorf("Token() = %q, want tok-1", store.Token())
		}
	})

	t.Run("Save replaces the previous session", func(t *testing.T) {
		store := newTestStore(t)
		if err := store.Save(sample); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		second := Session{UserID: "u2", DisplayName: "Grace", Role: RoleAdmin, Token: "tok-2"}
		if err := store.Save(second); err != nil {
			t.Fatalf("second Save failed: %v", err)
		}

		got := store.Current()
		if got == nil || got.UserID != "u2" || got.Token != "tok-2" {
			t.Errorf("expected replacement session, got %+v", got)
		}
	})

	t.Run("Save rejects sessions without identity or token", func(t *testing.T) {
		store := newTestStore(t)
		bad := []Session{
			{},
			{UserID: "u1", Role: RoleConsumer},
			{Token: "tok", Role: RoleConsumer},
			{UserID: "u1", Token: "tok", Role: Role("mystery")},
		}
		for _, s := range bad {
			if err := store.Save(s); err == nil {
				t.Errorf("expected Save to reject %+v", s)
			}
		}
		if got := store.Current(); got != nil {
			t.Errorf("expected store to stay empty, got %+v", got)
		}
	})

	t.Run("corrupt stored row reads back as no session", func(t *testing.T) {
		store := newTestStore(t)

		// Plant a row with blank identity and token, bypassing Save's guard.
		if _, err := store.db.Exec(
			`INSERT INTO sessions (id, user_id, display_name, role, token) VALUES (1, '', 'x', 'consumer', '')`,
		); err != nil {
			t.Fatalf("failed to plant corrupt row: %v", err)
		}

		if got := store.Current(); got != nil {
			t.Errorf("expected nil for corrupt row, got %+v", got)
		}
	})

	t.Run("unreadable storage reads back as no session", func(t *testing.T) {
		store := newTestStore(t)

		if _, err := store.db.Exec(`DROP TABLE sessions`); err != nil {
			t.Fatalf("failed to drop table: %v", err)
		}

		if got := store.Current(); got != nil {
			t.Errorf("expected nil when storage is unreadable, got %+v", got)
		}
		if tok := store.Token(); tok != "" {
			t.Errorf("expected empty token when storage is unreadable, got %q", tok)
		}
	})

	t.Run("Clear removes the session", func(t *testing.T) {
		store := newTestStore(t)
		if err := store.Save(sample); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if err := store.Clear(); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}
		if got := store.Current(); got != nil {
			t.Errorf("expected nil after Clear, got %+v", got)
		}
		if tok := store.Token(); tok != "" {
			t.Errorf("expected empty token after Clear, got %q", tok)
		}
	})

	t.Run("Clear on an empty store succeeds", func(t *testing.T) {
		store := newTestStore(t)
		if err := store.Clear(); err != nil {
			t.Errorf("Clear failed: %v", err)
		}
	})
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"admin", "consumer", "manager"} {
		if _, err := ParseRole(valid); err != nil {
			t.Errorf("ParseRole(%q) failed: %v", valid, err)
		}
	}

	for _, invalid := range []string{"", "Admin", "root", "superuser"} {
		if _, err := ParseRole(invalid); err == nil {
			t.Errorf("expected ParseRole(%q) to fail", invalid)
		}
	}
}

func TestSessionValid(t *testing.T) {
	cases := []struct {
		name    string
		session *Session
		want    bool
	}{
		{"nil", nil, false},
		{"complete", &Session{UserID: "u", Token: "t", Role: RoleAdmin}, true},
		{"missing token", &Session{UserID: "u", Role: RoleAdmin}, false},
		{"missing user", &Session{Token: "t", Role: RoleAdmin}, false},
		{"unknown role", &Session{UserID: "u", Token: "t", Role: Role("x")}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.session.Valid(); got != c.want {
				t.Errorf("Valid() = %v, want %v", got, c.want)
			}
		})
	}
}
