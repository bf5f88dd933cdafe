// Package session holds the authenticated identity for a login and persists
// it locally so a restart does not force a new sign-in. Token validity is
// never checked here; the server rejecting a call is the only signal.
package session

import (
	"strconv"

	"github.com/tgienger/teamboard/internal/models"
)

const (
	keyToken  = "session_token"
	keyUserID = "session_user_id"
	keyName   = "session_name"
	keyRole   = "session_role"
)

// Identity is the profile of the signed-in user
type Identity struct {
	Token  string
	UserID int64
	Name   string
	Role   models.Role
}

// Session is the current login state. All reads hit the in-memory copy;
// the store only makes it survive restarts.
type Session struct {
	store   *Store
	ident   Identity
	present bool
}

// Load builds a session from whatever the store last persisted
func Load(store *Store) (*Session, error) {
	s := &Session{store: store}

	token, err := store.Get(keyToken)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return s, nil
	}

	name, err := store.Get(keyName)
	if err != nil {
		return nil, err
	}
	rawRole, err := store.Get(keyRole)
	if err != nil {
		return nil, err
	}
	rawID, err := store.Get(keyUserID)
	if err != nil {
		return nil, err
	}
	userID, _ := strconv.ParseInt(rawID, 10, 64)

	s.ident = Identity{
		Token:  token,
		UserID: userID,
		Name:   name,
		Role:   models.ParseRole(rawRole),
	}
	s.present = true
	return s, nil
}

// Establish stores the identity returned by a successful login
func (s *Session) Establish(ident Identity) error {
	if err := s.store.SetAll(map[string]string{
		keyToken:  ident.Token,
		keyUserID: strconv.FormatInt(ident.UserID, 10),
		keyName:   ident.Name,
		keyRole:   string(ident.Role),
	}); err != nil {
		return err
	}
	s.ident = ident
	s.present = true
	return nil
}

// Clear wipes the identity, both in memory and on disk
func (s *Session) Clear() error {
	if err := s.store.DeleteAll(keyToken, keyUserID, keyName, keyRole); err != nil {
		return err
	}
	s.ident = Identity{}
	s.present = false
	return nil
}

// Current returns the identity and whether one is present
func (s *Session) Current() (Identity, bool) {
	return s.ident, s.present
}

// Token returns the bearer token, or "" when signed out
func (s *Session) Token() string {
	return s.ident.Token
}
