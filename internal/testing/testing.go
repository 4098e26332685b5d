// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/desertthunder/beatly/internal/api"
	"github.com/desertthunder/beatly/internal/auth"
)

// MockStore is a test double for [auth.Store]
type MockStore struct {
	Session *auth.Session
	SaveErr error
}

func (m *MockStore) Save(s auth.Session) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Session = &s
	return nil
}

func (m *MockStore) Current() *auth.Session {
	return m.Session
}

func (m *MockStore) Token() string {
	if m.Session == nil {
		return ""
	}
	return m.Session.Token
}

func (m *MockStore) Clear() error {
	m.Session = nil
	return nil
}

// MockVideoClient is a test double for [tasks.VideoClient]
type MockVideoClient struct {
	AnalyticsFunc  func(ctx context.Context, query api.ListQuery) (*api.AnalyticsPage, error)
	VideoStatsFunc func(ctx context.Context, id string) (*api.VideoDetail, error)
}

func (m *MockVideoClient) Analytics(ctx context.Context, query api.ListQuery) (*api.AnalyticsPage, error) {
	if m.AnalyticsFunc != nil {
		return m.AnalyticsFunc(ctx, query)
	}
	return &api.AnalyticsPage{}, nil
}

func (m *MockVideoClient) VideoStats(ctx context.Context, id string) (*api.VideoDetail, error) {
	if m.VideoStatsFunc != nil {
		return m.VideoStatsFunc(ctx, id)
	}
	return &api.VideoDetail{}, nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(data)
}
