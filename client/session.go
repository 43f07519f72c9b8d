package client

import (
	"encoding/json"
	"os"
	"sync"
)

const sessionTokenKey = "belajar_admin_token"

// Session persists the bearer token in a JSON file so a CLI or desktop shell
// stays logged in across restarts.
type Session struct {
	mu   sync.Mutex
	path string
}

func NewSession(path string) *Session {
	return &Session{path: path}
}

// Token returns the stored token, if any.
func (s *Session) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return "", false
	}
	token, ok := values[sessionTokenKey]
	return token, ok && token != ""
}

// SetToken stores the token, replacing any previous one.
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		values = map[string]string{}
	}
	values[sessionTokenKey] = token
	return s.write(values)
}

// Clear drops the stored token. Clearing a missing session is not an error.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return nil
	}
	delete(values, sessionTokenKey)
	return s.write(values)
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	_, ok := s.Token()
	return ok
}

func (s *Session) read() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	values := map[string]string{}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func (s *Session) write(values map[string]string) error {
	raw, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}
