// Package session owns the per-run result state: the current reconciliation
// result, the status→applications cache, and the file selection, all reset
// together so no implicit global state survives a clear.
package session

import (
	"github.com/google/uuid"

	"github.com/recondesk-dev/recondesk/internal/model"
)

// Session scopes one browsing session. Only the upload completion path writes
// it and only rendering/export reads it; the single-in-flight-upload rule
// means no locking is needed.
type Session struct {
	id        uuid.UUID
	selection model.UploadSelection
	result    *model.ReconciliationResult
	cache     map[string][]string
}

// New creates an empty Session.
func New() *Session {
	return &Session{
		id:    uuid.New(),
		cache: make(map[string][]string),
	}
}

// ID returns the session identity; it rotates on Reset.
func (s *Session) ID() uuid.UUID { return s.id }

// Selection returns the current file selection.
func (s *Session) Selection() model.UploadSelection { return s.selection }

// SelectExchange replaces the Exchange slot.
func (s *Session) SelectExchange(ref *model.FileRef) { s.selection.Exchange = ref }

// SelectPSP replaces the PSP slot.
func (s *Session) SelectPSP(ref *model.FileRef) { s.selection.PSP = ref }

// Result returns the current result, or nil before the first successful
// upload.
func (s *Session) Result() *model.ReconciliationResult { return s.result }

// SetResult replaces the result wholesale and repopulates the application
// cache from the response's status_applications mapping. When the mapping is
// absent the cache is left empty and rebuilt lazily on access.
func (s *Session) SetResult(r *model.ReconciliationResult) {
	s.result = r
	s.cache = make(map[string][]string)
	if r == nil {
		return
	}
	for status, apps := range r.StatusApplications {
		s.cache[status] = apps
	}
}

// Applications returns the application numbers for status. The returned slice
// is stable for the lifetime of the result; callers must not mutate it.
func (s *Session) Applications(status string) []string {
	if apps, ok := s.cache[status]; ok {
		return apps
	}
	if s.result == nil {
		return nil
	}
	// Lazy rebuild from whatever result data exists. When the response
	// carried no status_applications there is nothing to rebuild from and
	// the list stays empty.
	apps, ok := s.result.StatusApplications[status]
	if !ok {
		return nil
	}
	s.cache[status] = apps
	return apps
}

// Reset clears result, cache, and selection atomically and rotates the
// session identity.
func (s *Session) Reset() {
	s.id = uuid.New()
	s.selection = model.UploadSelection{}
	s.result = nil
	s.cache = make(map[string][]string)
}
