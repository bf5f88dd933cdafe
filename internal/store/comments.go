package store

import (
	"github.com/tgienger/teamboard/internal/models"
)

// CommentThread is the comment list for one selected task. It refreshes
// independently of the entity store and is discarded when the panel closes.
// Like EntityStore it is confined to the UI update loop.
type CommentThread struct {
	taskID   int64
	open     bool
	issued   uint64
	applied  uint64
	comments []models.Comment
	loaded   bool
}

// NewCommentThread creates a closed thread
func NewCommentThread() *CommentThread {
	return &CommentThread{}
}

// Open scopes the thread to a task and clears any prior list. Loads begun
// against a previous scope can no longer commit.
func (t *CommentThread) Open(taskID int64) {
	t.taskID = taskID
	t.open = true
	t.comments = nil
	t.loaded = false
	// Invalidate in-flight loads from the previous scope
	t.issued++
	t.applied = t.issued
}

// Close discards the scope and list
func (t *CommentThread) Close() {
	t.open = false
	t.taskID = 0
	t.comments = nil
	t.loaded = false
}

// TaskID returns the scoped task id and whether the thread is open
func (t *CommentThread) TaskID() (int64, bool) {
	return t.taskID, t.open
}

// Begin registers a reload and returns its epoch
func (t *CommentThread) Begin() uint64 {
	t.issued++
	return t.issued
}

// Apply commits a loaded list unless the thread moved on: a stale epoch, a
// closed panel, or a different task all discard the result.
func (t *CommentThread) Apply(taskID int64, epoch uint64, comments []models.Comment) bool {
	if !t.open || taskID != t.taskID {
		return false
	}
	if epoch != t.issued || epoch <= t.applied {
		return false
	}
	t.applied = epoch
	t.comments = comments
	t.loaded = true
	return true
}

// Loaded reports whether the current scope has loaded at least once
func (t *CommentThread) Loaded() bool {
	return t.loaded
}

// Comments returns the current list, newest first as the server sends it
func (t *CommentThread) Comments() []models.Comment {
	return t.comments
}
