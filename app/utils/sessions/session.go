package sessions

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	authSessionName  = "hamropasal-session"
	userIDSessionKey = "userID"

	defaultSessionAge  = int(24 * time.Hour / time.Second)
	rememberSessionAge = int(30 * 24 * time.Hour / time.Second)
)

// SessionStore carries the logged-in user id across requests. The
// transport (signed+encrypted cookie) is an implementation detail of
// the cookie-backed store.
type SessionStore interface {
	GetUserID(r *http.Request) string
	SetUserID(w http.ResponseWriter, r *http.Request, userID string, remember bool) error
	ClearSession(w http.ResponseWriter, r *http.Request) error
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   defaultSessionAge,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

func (c *CookieSessionStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, authSessionName)
	if err != nil {
		// A decode error still yields a fresh session.
		log.Printf("SessionStore: error decoding session: %v", err)
	}
	return session
}

func (c *CookieSessionStore) GetUserID(r *http.Request) string {
	session := c.getSession(r)
	if session == nil {
		return ""
	}
	userID, ok := session.Values[userIDSessionKey].(string)
	if !ok {
		return ""
	}
	return userID
}

// SetUserID records the authenticated user. With remember set the
// session cookie lives 30 days instead of one.
func (c *CookieSessionStore) SetUserID(w http.ResponseWriter, r *http.Request, userID string, remember bool) error {
	session := c.getSession(r)
	session.Values[userIDSessionKey] = userID
	if remember {
		session.Options.MaxAge = rememberSessionAge
	} else {
		session.Options.MaxAge = defaultSessionAge
	}
	return session.Save(r, w)
}

func (c *CookieSessionStore) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
