package sessions

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/securecookie"
	"github.com/shopspring/decimal"
	"github.com/ssapkota/hamropasal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartStore() *CookieCartStore {
	return NewCookieCartStore(
		securecookie.GenerateRandomKey(64),
		securecookie.GenerateRandomKey(32),
	)
}

// requestWithCookies builds a fresh request carrying the cookies the
// previous response set, the way a browser would on the next hit.
func requestWithCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if rec != nil {
		for _, cookie := range rec.Result().Cookies() {
			req.AddCookie(cookie)
		}
	}
	return req
}

func TestCartStoreGetEmptyByDefault(t *testing.T) {
	store := newTestCartStore()
	req := requestWithCookies(t, nil)

	cart := store.Get(req)
	require.NotNil(t, cart)
	assert.True(t, cart.IsEmpty())
}

func TestCartStoreRoundTrip(t *testing.T) {
	store := newTestCartStore()
	product := &models.Product{ID: "p1", Name: "Keyboard", Price: decimal.NewFromInt(100)}

	rec := httptest.NewRecorder()
	req := requestWithCookies(t, nil)
	_, err := store.Update(rec, req, func(cart *models.Cart) error {
		cart.Add("user-1", product)
		return nil
	})
	require.NoError(t, err)

	next := requestWithCookies(t, rec)
	cart := store.Get(next)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines["p1"].Qty)
	assert.True(t, cart.Lines["p1"].Price.Equal(decimal.NewFromInt(100)))
}

func TestCartStoreUpdateAccumulatesAcrossRequests(t *testing.T) {
	store := newTestCartStore()
	product := &models.Product{ID: "p1", Name: "Keyboard", Price: decimal.NewFromInt(100)}

	var rec *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		next := httptest.NewRecorder()
		req := requestWithCookies(t, rec)
		_, err := store.Update(next, req, func(cart *models.Cart) error {
			cart.Add("user-1", product)
			return nil
		})
		require.NoError(t, err)
		rec = next
	}

	cart := store.Get(requestWithCookies(t, rec))
	assert.Equal(t, 3, cart.ItemCount())
}

func TestCartStoreUpdateErrorLeavesCartUntouched(t *testing.T) {
	store := newTestCartStore()
	product := &models.Product{ID: "p1", Name: "Keyboard", Price: decimal.NewFromInt(100)}

	rec := httptest.NewRecorder()
	_, err := store.Update(rec, requestWithCookies(t, nil), func(cart *models.Cart) error {
		cart.Add("user-1", product)
		return nil
	})
	require.NoError(t, err)

	failing := httptest.NewRecorder()
	req := requestWithCookies(t, rec)
	_, err = store.Update(failing, req, func(cart *models.Cart) error {
		cart.Clear()
		return errors.New("order failed")
	})
	require.Error(t, err)

	// No Set-Cookie from the failed update; the original cookie still
	// holds one item.
	cart := store.Get(requestWithCookies(t, rec))
	assert.Equal(t, 1, cart.ItemCount())
}

// Two tabs sharing one session fire mutations carrying the same stale
// cookie snapshot; the authoritative server-side copy must absorb both
// increments.
func TestCartStoreConcurrentUpdatesLoseNoIncrement(t *testing.T) {
	store := newTestCartStore()
	product := &models.Product{ID: "p1", Name: "Keyboard", Price: decimal.NewFromInt(100)}

	seeded := httptest.NewRecorder()
	_, err := store.Update(seeded, requestWithCookies(t, nil), func(cart *models.Cart) error {
		cart.Add("user-1", product)
		return nil
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := httptest.NewRecorder()
			req := requestWithCookies(t, seeded)
			_, err := store.Update(rec, req, func(cart *models.Cart) error {
				cart.Add("user-1", product)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	cart := store.Get(requestWithCookies(t, seeded))
	assert.Equal(t, 3, cart.ItemCount())
}

func TestCartStoreGetPrefersServerSideCopy(t *testing.T) {
	store := newTestCartStore()
	product := &models.Product{ID: "p1", Name: "Keyboard", Price: decimal.NewFromInt(100)}

	first := httptest.NewRecorder()
	_, err := store.Update(first, requestWithCookies(t, nil), func(cart *models.Cart) error {
		cart.Add("user-1", product)
		return nil
	})
	require.NoError(t, err)

	// Second mutation from a request still carrying the first cookie.
	second := httptest.NewRecorder()
	_, err = store.Update(second, requestWithCookies(t, first), func(cart *models.Cart) error {
		cart.Add("user-1", product)
		return nil
	})
	require.NoError(t, err)

	// Reading with the stale first cookie still sees both increments.
	cart := store.Get(requestWithCookies(t, first))
	assert.Equal(t, 2, cart.ItemCount())
}

func TestCartStoreSessionsAreIndependent(t *testing.T) {
	store := newTestCartStore()
	product := &models.Product{ID: "p1", Name: "Keyboard", Price: decimal.NewFromInt(100)}

	rec := httptest.NewRecorder()
	_, err := store.Update(rec, requestWithCookies(t, nil), func(cart *models.Cart) error {
		cart.Add("user-1", product)
		return nil
	})
	require.NoError(t, err)

	// A request without the cookie sees an empty cart.
	other := store.Get(requestWithCookies(t, nil))
	assert.True(t, other.IsEmpty())
}
