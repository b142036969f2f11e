// Package auth is the admin trust gate: a shared-secret credential
// check plus a signed session cookie that marks the browser as admin
// for the rest of the visit. The credential itself is a bcrypt hash
// sourced from deployment config, never a literal in source.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const isAdminKey = "is_admin"

// ErrInvalidCredentials is the only error surfaced for a failed login.
// It deliberately does not distinguish reasons.
var ErrInvalidCredentials = errors.New("invalid credentials")

// SessionManager owns the admin session cookie.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	hash  []byte
	log   *zap.Logger
}

// NewSessionManager builds the manager from config values. The session
// key signs cookies; adminHash is the bcrypt hash of the shared admin
// secret.
func NewSessionManager(sessionKey, name, domain, adminHash string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide 32+ random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if _, err := bcrypt.Cost([]byte(adminHash)); err != nil {
		return nil, fmt.Errorf("admin_password_hash is not a bcrypt hash: %w", err)
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if secure {
		store.Options.SameSite = http.SameSiteNoneMode
	}

	return &SessionManager{store: store, name: name, hash: []byte(adminHash), log: logger}, nil
}

// VerifyCredential checks the submitted secret against the configured
// hash. Any failure maps to ErrInvalidCredentials.
func (sm *SessionManager) VerifyCredential(password string) error {
	if err := bcrypt.CompareHashAndPassword(sm.hash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// SignIn marks the current session as admin.
func (sm *SessionManager) SignIn(w http.ResponseWriter, r *http.Request) error {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil && !isDecodeError(err) {
		return err
	}
	sess.Values[isAdminKey] = true
	return sess.Save(r, w)
}

// SignOut clears the admin session.
func (sm *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil && !isDecodeError(err) {
		return err
	}
	delete(sess.Values, isAdminKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// IsAdmin reports whether the request carries a valid admin session.
// A cookie that fails to decode (rotated key, tampering) is treated as
// signed out, not as an error.
func (sm *SessionManager) IsAdmin(r *http.Request) bool {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		if !isDecodeError(err) {
			sm.log.Warn("session read failed", zap.Error(err))
		}
		return false
	}
	isAdmin, _ := sess.Values[isAdminKey].(bool)
	return isAdmin
}

// RequireAdmin guards admin routes: without a valid session the
// request stops with a plain 401 before any handler runs.
func (sm *SessionManager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !sm.IsAdmin(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isDecodeError(err error) bool {
	var scErr securecookie.Error
	return errors.As(err, &scErr) && scErr.IsDecode()
}
