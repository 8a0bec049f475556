package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/anjishnu/ask-alexa-twitter/internal/domain"
	"github.com/anjishnu/ask-alexa-twitter/internal/ports/output"

	"github.com/sirupsen/logrus"
)

const (
	storeFileMode   = 0o600
	storeDirMode    = 0o700
	tempFilePattern = ".sessions-*.json.tmp"
)

// Compile-time check to ensure FileSessionStore implements SessionStore interface
var _ output.SessionStore = (*FileSessionStore)(nil)

// FileSessionStore struct - Output adapter persisting the identity to
// session mapping as a single JSON file. Saves go through a temp file in
// the same directory followed by a rename, so a crash mid-write never
// leaves a half-written file observable. Pending actions are not part of
// the serialized layout and do not survive a restart.
//
// Session contents are only ever written inside Update. Each Update holds
// the identity's mutex plus state.RLock for the duration of fn; Save
// marshals under state.Lock, so the snapshot never overlaps a mutation on
// any identity while updates for different identities still run in
// parallel.
type FileSessionStore struct {
	path string

	state    sync.RWMutex
	mapMu    sync.Mutex
	sessions map[string]*domain.UserSession

	regMu sync.Mutex
	locks map[string]*sync.Mutex
}

// NewFileSessionStore creates a store backed by the given file path.
// Call Load before serving traffic.
func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{
		path:     path,
		sessions: make(map[string]*domain.UserSession),
		locks:    make(map[string]*sync.Mutex),
	}
}

// Update runs fn with exclusive access to the identity's session, creating
// an empty unlinked one if none exists. A nil return from fn persists the
// full mapping before the identity lock is released; a persistence failure
// keeps the in-memory state alive for the cycle and is logged. An error
// from fn skips persistence and is returned to the caller.
func (s *FileSessionStore) Update(identity string, fn func(session *domain.UserSession) error) error {
	lock := s.lockFor(identity)
	lock.Lock()
	defer lock.Unlock()

	err := func() error {
		s.state.RLock()
		defer s.state.RUnlock()
		return fn(s.getOrCreate(identity))
	}()
	if err != nil {
		return err
	}

	if err := s.Save(); err != nil {
		logrus.Errorf("Failed to persist sessions: identity=%s: %v", identity, err)
	}
	return nil
}

// getOrCreate looks up or inserts the identity's session. Callers hold
// state.RLock; the map mutex covers concurrent inserts from other
// identities' updates.
func (s *FileSessionStore) getOrCreate(identity string) *domain.UserSession {
	s.mapMu.Lock()
	defer s.mapMu.Unlock()

	if session, ok := s.sessions[identity]; ok {
		return session
	}

	session := domain.NewUserSession(identity)
	s.sessions[identity] = session
	return session
}

// Load reads the persisted mapping. A missing file is a normal first run
// and a corrupt file falls back to an empty store; both are logged as
// recoverable, never returned as startup failures.
func (s *FileSessionStore) Load() error {
	s.state.Lock()
	defer s.state.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		logrus.Infof("No session file at %s, starting with an empty store", s.path)
		return nil
	}
	if err != nil {
		logrus.Warnf("Failed to read session file %s, starting with an empty store: %v", s.path, err)
		return nil
	}

	sessions := make(map[string]*domain.UserSession)
	if err := json.Unmarshal(data, &sessions); err != nil {
		logrus.Warnf("Session file %s is corrupt, starting with an empty store: %v", s.path, err)
		return nil
	}

	s.sessions = sessions
	logrus.Infof("Loaded %d sessions from %s", len(sessions), s.path)
	return nil
}

// Save writes the full mapping atomically. Taking state exclusively means
// the marshal waits out every in-flight Update and never sees a session
// mid-mutation.
func (s *FileSessionStore) Save() error {
	s.state.Lock()
	defer s.state.Unlock()

	data, err := json.MarshalIndent(s.sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, storeDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp session file: %w", err)
	}
	if err := tempFile.Chmod(storeFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp session file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp session file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}

	cleanup = false
	return nil
}

// lockFor returns the mutex serializing all updates for one identity
func (s *FileSessionStore) lockFor(identity string) *sync.Mutex {
	s.regMu.Lock()
	defer s.regMu.Unlock()

	lock, ok := s.locks[identity]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[identity] = lock
	}
	return lock
}
