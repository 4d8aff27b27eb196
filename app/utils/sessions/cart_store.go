package sessions

import (
	"encoding/gob"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/ssapkota/hamropasal/app/models"
)

const (
	cartSessionName  = "hamropasal-cart"
	cartIDSessionKey = "cart_id"
	cartSessionKey   = "cart"
)

func init() {
	gob.Register(models.Cart{})
}

// CartStore is the explicit service in front of the session-held cart:
// get the current cart, save it back, or run a serialized
// read-modify-write. Handlers never touch session values directly.
type CartStore interface {
	Get(r *http.Request) *models.Cart
	Save(w http.ResponseWriter, r *http.Request, cart *models.Cart) error
	Update(w http.ResponseWriter, r *http.Request, fn func(cart *models.Cart) error) (*models.Cart, error)
}

// CookieCartStore keeps the cart in its own cookie session, separate
// from the login session. The server-side copy keyed by the session's
// cart id is authoritative: two concurrent requests carrying the same
// cookie snapshot both read it under the per-cart lock, so neither can
// overwrite the other's mutation. The cookie carries the cart as well
// so it survives a process restart.
type CookieCartStore struct {
	store *sessions.CookieStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
	carts map[string]models.Cart
}

func NewCookieCartStore(keyPairs ...[]byte) *CookieCartStore {
	store := sessions.NewCookieStore(keyPairs...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(7 * 24 * 60 * 60),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieCartStore{
		store: store,
		locks: make(map[string]*sync.Mutex),
		carts: make(map[string]models.Cart),
	}
}

func (s *CookieCartStore) lockFor(cartID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[cartID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[cartID] = lock
	}
	return lock
}

func (s *CookieCartStore) getSession(r *http.Request) *sessions.Session {
	// Get never fails fatally: a decode error yields a fresh session,
	// which for the cart means starting empty.
	session, _ := s.store.Get(r, cartSessionName)
	return session
}

func cartFromSession(session *sessions.Session) *models.Cart {
	if raw, ok := session.Values[cartSessionKey].(models.Cart); ok && raw.Lines != nil {
		cart := raw
		return &cart
	}
	return models.NewCart()
}

// authoritative resolves the current cart for a session: the
// server-side copy when one exists for the session's cart id, the
// cookie contents otherwise. Returns a copy; mutations flow back in
// through Save/Update.
func (s *CookieCartStore) authoritative(session *sessions.Session, cartID string) *models.Cart {
	if cartID != "" {
		s.mu.Lock()
		stored, ok := s.carts[cartID]
		s.mu.Unlock()
		if ok {
			cart := cloneCart(stored)
			return &cart
		}
	}
	return cartFromSession(session)
}

func cloneCart(cart models.Cart) models.Cart {
	lines := make(map[string]models.CartLine, len(cart.Lines))
	for id, line := range cart.Lines {
		lines[id] = line
	}
	return models.Cart{Lines: lines}
}

func (s *CookieCartStore) Get(r *http.Request) *models.Cart {
	session := s.getSession(r)
	cartID, _ := session.Values[cartIDSessionKey].(string)
	return s.authoritative(session, cartID)
}

func (s *CookieCartStore) Save(w http.ResponseWriter, r *http.Request, cart *models.Cart) error {
	session := s.getSession(r)
	cartID, _ := session.Values[cartIDSessionKey].(string)
	if cartID == "" {
		cartID = uuid.New().String()
		session.Values[cartIDSessionKey] = cartID
	}

	lock := s.lockFor(cartID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	s.carts[cartID] = cloneCart(*cart)
	s.mu.Unlock()

	session.Values[cartSessionKey] = *cart
	return session.Save(r, w)
}

// Update runs fn against the authoritative cart and writes the result
// back, holding the per-cart lock for the whole read-modify-write. An
// error from fn leaves the stored cart untouched.
func (s *CookieCartStore) Update(w http.ResponseWriter, r *http.Request, fn func(cart *models.Cart) error) (*models.Cart, error) {
	session := s.getSession(r)

	cartID, _ := session.Values[cartIDSessionKey].(string)
	if cartID == "" {
		cartID = uuid.New().String()
		session.Values[cartIDSessionKey] = cartID
	}

	lock := s.lockFor(cartID)
	lock.Lock()
	defer lock.Unlock()

	cart := s.authoritative(session, cartID)
	if err := fn(cart); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.carts[cartID] = cloneCart(*cart)
	s.mu.Unlock()

	session.Values[cartSessionKey] = *cart
	if err := session.Save(r, w); err != nil {
		return nil, err
	}
	return cart, nil
}
