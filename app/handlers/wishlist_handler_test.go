package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/ssapkota/hamropasal/app/helpers"
	"github.com/ssapkota/hamropasal/app/models"
	"github.com/ssapkota/hamropasal/app/repositories"
	"github.com/ssapkota/hamropasal/app/services"
	"github.com/ssapkota/hamropasal/app/utils/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubProductRepo struct {
	products map[string]*models.Product
}

func (s *stubProductRepo) GetPaginated(ctx context.Context, filter repositories.CatalogFilter, limit, offset int) ([]models.Product, int64, error) {
	return nil, 0, nil
}

func (s *stubProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return s.products[id], nil
}

func (s *stubProductRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return nil, nil
}

func (s *stubProductRepo) GetRecommended(ctx context.Context, limit int) ([]models.Product, error) {
	return nil, nil
}

func (s *stubProductRepo) Search(ctx context.Context, keyword string) ([]models.Product, error) {
	return nil, nil
}

func (s *stubProductRepo) Create(ctx context.Context, product *models.Product) error { return nil }
func (s *stubProductRepo) Update(ctx context.Context, product *models.Product) error { return nil }

type memWishlistRepo struct {
	entries map[string]models.Wishlist
}

func (m *memWishlistRepo) key(userID, productID string) string { return userID + "/" + productID }

func (m *memWishlistRepo) Create(ctx context.Context, entry *models.Wishlist) error {
	if _, ok := m.entries[m.key(entry.UserID, entry.ProductID)]; ok {
		return gorm.ErrDuplicatedKey
	}
	m.entries[m.key(entry.UserID, entry.ProductID)] = *entry
	return nil
}

func (m *memWishlistRepo) Delete(ctx context.Context, userID, productID string) (bool, error) {
	if _, ok := m.entries[m.key(userID, productID)]; !ok {
		return false, nil
	}
	delete(m.entries, m.key(userID, productID))
	return true, nil
}

func (m *memWishlistRepo) Exists(ctx context.Context, userID, productID string) (bool, error) {
	_, ok := m.entries[m.key(userID, productID)]
	return ok, nil
}

func (m *memWishlistRepo) GetByUserID(ctx context.Context, userID string) ([]models.Wishlist, error) {
	var out []models.Wishlist
	for _, entry := range m.entries {
		if entry.UserID == userID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func newWishlistTestHandler() (*WishlistHandler, *memWishlistRepo) {
	wishlistRepo := &memWishlistRepo{entries: map[string]models.Wishlist{}}
	productRepo := &stubProductRepo{products: map[string]*models.Product{
		"p1": {ID: "p1", Name: "Keyboard"},
	}}
	svc := services.NewWishlistService(wishlistRepo)
	return NewWishlistHandler(svc, wishlistRepo, productRepo, renderer.New()), wishlistRepo
}

func ajaxRequest(method, target, userID string, vars map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	ctx := context.WithValue(req.Context(), helpers.ContextKeyUserID, userID)
	req = req.WithContext(ctx)
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func TestWishlistAddAjaxReportsCreated(t *testing.T) {
	handler, _ := newWishlistTestHandler()

	rec := httptest.NewRecorder()
	handler.Add(rec, ajaxRequest(http.MethodGet, "/wishlist/add/p1/", "user-1", map[string]string{"id": "p1"}))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Status  string `json:"status"`
		Created bool   `json:"created"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.True(t, body.Created)
	assert.Contains(t, body.Message, "Keyboard")
}

func TestWishlistAddAjaxSecondAddNotCreated(t *testing.T) {
	handler, _ := newWishlistTestHandler()

	rec := httptest.NewRecorder()
	handler.Add(rec, ajaxRequest(http.MethodGet, "/wishlist/add/p1/", "user-1", map[string]string{"id": "p1"}))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.Add(rec, ajaxRequest(http.MethodGet, "/wishlist/add/p1/", "user-1", map[string]string{"id": "p1"}))

	var body struct {
		Created bool   `json:"created"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Created)
	assert.Contains(t, body.Message, "already")
}

func TestWishlistAddUnknownProductIs404(t *testing.T) {
	handler, _ := newWishlistTestHandler()

	rec := httptest.NewRecorder()
	handler.Add(rec, ajaxRequest(http.MethodGet, "/wishlist/add/nope/", "user-1", map[string]string{"id": "nope"}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWishlistToggleAjaxFlipsState(t *testing.T) {
	handler, repo := newWishlistTestHandler()

	rec := httptest.NewRecorder()
	handler.Toggle(rec, ajaxRequest(http.MethodGet, "/wishlist/toggle/p1/", "user-1", map[string]string{"id": "p1"}))

	var body struct {
		InWishlist bool `json:"in_wishlist"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.InWishlist)
	assert.Len(t, repo.entries, 1)

	rec = httptest.NewRecorder()
	handler.Toggle(rec, ajaxRequest(http.MethodGet, "/wishlist/toggle/p1/", "user-1", map[string]string{"id": "p1"}))

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.InWishlist)
	assert.Empty(t, repo.entries)
}

func TestWishlistAddWithoutAjaxRedirects(t *testing.T) {
	handler, _ := newWishlistTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/wishlist/add/p1/", nil)
	ctx := context.WithValue(req.Context(), helpers.ContextKeyUserID, "user-1")
	req = mux.SetURLVars(req.WithContext(ctx), map[string]string{"id": "p1"})

	rec := httptest.NewRecorder()
	handler.Add(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	location := rec.Header().Get("Location")
	assert.Contains(t, location, "status=success")
	assert.Contains(t, location, "message=")
}
