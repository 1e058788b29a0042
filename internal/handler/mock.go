package handler

import "context"

// MockService is a map-backed gateway for tests: Query returns whatever
// the last SetDefault stored for the mime type.
type MockService struct {
	Defaults   map[string]string
	SetCalls   int
	QueryCalls int
}

// NewMockService creates a mock gateway with no defaults set.
func NewMockService() *MockService {
	return &MockService{Defaults: make(map[string]string)}
}

// Query returns the stored default for a mime type.
func (m *MockService) Query(_ context.Context, mimeType string) (string, bool) {
	m.QueryCalls++
	handler, ok := m.Defaults[mimeType]
	if !ok || handler == "" {
		return "", false
	}
	return handler, true
}

// SetDefault stores the default for a mime type.
func (m *MockService) SetDefault(_ context.Context, mimeType, handler string) {
	m.SetCalls++
	m.Defaults[mimeType] = handler
}

// Available always reports true.
func (m *MockService) Available() bool { return true }
