package usecase

import (
	"context"
	"encoding/json"
)

// mockCaller implements domain.UpstreamCaller for testing.
type mockCaller struct {
	raw    json.RawMessage
	status int
	err    error

	called bool
	calls  int
	token  string
	method string
	path   string
	body   any
}

func (m *mockCaller) Do(_ context.Context, token, method, path string, body any) (json.RawMessage, int, error) {
	m.called = true
	m.calls++
	m.token = token
	m.method = method
	m.path = path
	m.body = body
	return m.raw, m.status, m.err
}

// mockMirror implements domain.WishlistMirror for testing.
type mockMirror struct {
	entries     map[string][]string
	invalidated []string
}

func newMockMirror() *mockMirror {
	return &mockMirror{entries: make(map[string][]string)}
}

func (m *mockMirror) Get(userID string) ([]string, bool) {
	ids, found := m.entries[userID]
	return ids, found
}

func (m *mockMirror) Set(userID string, ids []string) {
	m.entries[userID] = ids
}

func (m *mockMirror) Invalidate(userID string) {
	m.invalidated = append(m.invalidated, userID)
	delete(m.entries, userID)
}
