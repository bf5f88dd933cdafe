package session_test

import (
	"path/filepath"
	"testing"

	"github.com/tgienger/teamboard/internal/models"
	"github.com/tgienger/teamboard/internal/session"
)

func openStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.OpenPath(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSessionEmptyStore(t *testing.T) {
	store := openStore(t)

	sess, err := session.Load(store)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := sess.Current(); ok {
		t.Error("fresh store should yield no identity")
	}
	if sess.Token() != "" {
		t.Errorf("Token() = %q, want empty", sess.Token())
	}
}

func TestSessionEstablishPersists(t *testing.T) {
	store := openStore(t)

	sess, err := session.Load(store)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	ident := session.Identity{
		Token:  "tok-123",
		UserID: 42,
		Name:   "Alice",
		Role:   models.RoleManager,
	}
	if err := sess.Establish(ident); err != nil {
		t.Fatalf("Establish: %v", err)
	}

	got, ok := sess.Current()
	if !ok {
		t.Fatal("identity should be present after establish")
	}
	if got != ident {
		t.Errorf("Current() = %+v, want %+v", got, ident)
	}

	// A fresh load against the same store sees the persisted identity
	reloaded, err := session.Load(store)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got, ok = reloaded.Current()
	if !ok {
		t.Fatal("reloaded session should carry the identity")
	}
	if got != ident {
		t.Errorf("reloaded identity = %+v, want %+v", got, ident)
	}
	if reloaded.Token() != "tok-123" {
		t.Errorf("Token() = %q, want tok-123", reloaded.Token())
	}
}

func TestSessionClear(t *testing.T) {
	store := openStore(t)

	sess, err := session.Load(store)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := sess.Establish(session.Identity{Token: "tok", UserID: 1, Name: "A", Role: models.RoleAdmin}); err != nil {
		t.Fatalf("Establish: %v", err)
	}

	if err := sess.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := sess.Current(); ok {
		t.Error("identity should be gone after clear")
	}

	reloaded, err := session.Load(store)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if _, ok := reloaded.Current(); ok {
		t.Error("cleared identity must not survive a reload")
	}
}

func TestSessionRoleNormalizedOnLoad(t *testing.T) {
	store := openStore(t)

	// Simulate a store written with a wire-format role value
	if err := store.SetAll(map[string]string{
		"session_token":   "tok",
		"session_user_id": "5",
		"session_name":    "Bob",
		"session_role":    "MANAGER",
	}); err != nil {
		t.Fatalf("seeding store: %v", err)
	}

	sess, err := session.Load(store)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ident, ok := sess.Current()
	if !ok {
		t.Fatal("identity should be present")
	}
	if ident.Role != models.RoleManager {
		t.Errorf("Role = %q, want Manager", ident.Role)
	}
	if ident.UserID != 5 {
		t.Errorf("UserID = %d, want 5", ident.UserID)
	}
}
