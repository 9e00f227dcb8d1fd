// Package viewsession carries per-browser state across catalog requests.
//
// Two things travel with a browser:
//   - a cookie session (gorilla/sessions) remembering the last reported
//     viewport width, so a fresh page starts with the right layout
//   - a signed view token (gorilla/securecookie) naming the catalog view a
//     request belongs to; it rides in the X-View-Token header or the "view"
//     form field, one per page load
package viewsession

import (
	"errors"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	// TokenHeader carries the view token on HTMX requests.
	TokenHeader = "X-View-Token"
	// TokenField carries the view token on plain form posts and links.
	TokenField = "view"

	tokenName = "devcatalog-view"
	widthKey  = "viewport_width"
)

// ErrNoToken means the request carried no view token.
var ErrNoToken = errors.New("no view token")

// Manager issues view tokens and reads/writes the browser session.
type Manager struct {
	store *sessions.CookieStore
	codec *securecookie.SecureCookie
	name  string
	log   *zap.Logger
}

// NewManager builds a manager. key signs both the session cookie and the
// view tokens and must be at least 32 bytes.
func NewManager(key, name string, secure bool, logger *zap.Logger) (*Manager, error) {
	if len(key) < 32 {
		return nil, errors.New("session key must be at least 32 characters")
	}
	if name == "" {
		name = "devcatalog-session"
	}
	store := sessions.NewCookieStore([]byte(key))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	codec := securecookie.New([]byte(key), nil)
	codec.MaxAge(86400)

	return &Manager{store: store, codec: codec, name: name, log: logger}, nil
}

// Token signs a view id for embedding in a page.
func (m *Manager) Token(viewID string) (string, error) {
	return m.codec.Encode(tokenName, viewID)
}

// ViewID returns the view id carried by r. It returns ErrNoToken when the
// request has none and a securecookie error when the token does not verify.
func (m *Manager) ViewID(r *http.Request) (string, error) {
	tok := r.Header.Get(TokenHeader)
	if tok == "" {
		tok = r.FormValue(TokenField)
	}
	if tok == "" {
		return "", ErrNoToken
	}
	var id string
	if err := m.codec.Decode(tokenName, tok, &id); err != nil {
		return "", err
	}
	return id, nil
}

// Width returns the remembered viewport width, or 0.
func (m *Manager) Width(r *http.Request) int {
	sess := m.session(r)
	w, _ := sess.Values[widthKey].(int)
	return w
}

// SaveWidth remembers the viewport width for future pages.
func (m *Manager) SaveWidth(w http.ResponseWriter, r *http.Request, width int) error {
	sess := m.session(r)
	sess.Values[widthKey] = width
	return sess.Save(r, w)
}

func (m *Manager) session(r *http.Request) *sessions.Session {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		if scErr, ok := err.(securecookie.Error); ok && scErr.IsDecode() {
			m.log.Debug("session cookie invalid, using fresh session", zap.Error(err))
		} else {
			m.log.Warn("session store error, using fresh session", zap.Error(err))
		}
	}
	return sess
}
