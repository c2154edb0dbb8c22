package web

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Session holds the output of one processed upload.
type Session struct {
	ID    string
	Dir   string   // per-session working directory
	Pages []string // page image paths in page-number order
	PDF   string   // empty when no PDF was requested
}

// Store is an in-memory session registry keyed by session id. It is
// safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	baseDir  string
}

// NewStore creates a store whose session directories live under
// baseDir.
func NewStore(baseDir string) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		baseDir:  baseDir,
	}
}

// newID returns a short random session id.
func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// Create allocates a new session with its own working directory.
func (s *Store) Create() (*Session, error) {
	id := newID()
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating session directory: %w", err)
	}

	sess := &Session{ID: id, Dir: dir}
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	return sess, nil
}

// Get returns the session with the given id, or nil.
func (s *Store) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id]
}

// Put stores or replaces a session.
func (s *Store) Put(sess *Session) {
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
}

// Remove drops the session and deletes its working directory.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	sess := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if sess != nil && sess.Dir != "" {
		os.RemoveAll(sess.Dir)
	}
}

// Cleanup drops every session and deletes the base directory.
func (s *Store) Cleanup() {
	s.mu.Lock()
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()
	os.RemoveAll(s.baseDir)
}
