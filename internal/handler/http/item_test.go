package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adityatriand/catering-app/internal/domain"
	apperrors "github.com/adityatriand/catering-app/pkg/errors"
	"github.com/adityatriand/catering-app/pkg/httputil"
)

// setupItemRouter creates a chi router matching the production route layout.
func setupItemRouter(handler *ItemHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/v1/menu", handler.Menu)
	r.Route("/api/v1/items", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Post("/", handler.CreateItem)
		r.Get("/", handler.ListItems)
		r.Get("/{id}", handler.GetItem)
		r.Put("/{id}", handler.UpdateItem)
		r.Delete("/{id}", handler.DeleteItem)
		r.Post("/{id}/stock", handler.AdjustStock)
	})
	return r
}

func sampleItem() *domain.Item {
	now := time.Now().UTC()
	return &domain.Item{
		ID:          uuid.MustParse("550e8400-e29b-41d4-a716-446655440020"),
		Name:        "Nasi Goreng Spesial",
		Description: "Fried rice with chicken and egg",
		Price:       25000,
		Stock:       12,
		Categories:  []string{"main course"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ============================================================================
// POST /api/v1/items - CreateItem
// ============================================================================

func TestCreateItem_Success(t *testing.T) {
	repo := new(mockItemRepository)
	cache := new(mockMenuCache)
	router := setupItemRouter(testItemHandler(repo, cache))

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Item")).Return(nil)
	cache.On("Invalidate", mock.Anything).Return(nil)

	body, _ := json.Marshal(domain.CreateItemRequest{
		Name:        "Nasi Goreng Spesial",
		Description: "Fried rice with chicken and egg",
		Price:       25000,
		Stock:       12,
		Categories:  []string{"main course"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Nil(t, resp.Error)
	require.NotNil(t, resp.Data)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Nasi Goreng Spesial", data["name"])
	assert.Equal(t, float64(25000), data["price"])
	assert.Equal(t, float64(12), data["stock"])

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCreateItem_ValidationError_MissingName(t *testing.T) {
	repo := new(mockItemRepository)
	cache := new(mockMenuCache)
	router := setupItemRouter(testItemHandler(repo, cache))

	body := []byte(`{"price":25000,"stock":5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestCreateItem_ValidationError_ZeroPrice(t *testing.T) {
	repo := new(mockItemRepository)
	cache := new(mockMenuCache)
	router := setupItemRouter(testItemHandler(repo, cache))

	body := []byte(`{"name":"Es Teh","price":0,"stock":5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestCreateItem_ValidationError_MissingDescription(t *testing.T) {
	repo := new(mockItemRepository)
	cache := new(mockMenuCache)
	router := setupItemRouter(testItemHandler(repo, cache))

	body := []byte(`{"name":"Es Teh","price":6000,"stock":5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Fields, "Description")
}

func TestCreateItem_ValidationError_DescriptionTooLong(t *testing.T) {
	repo := new(mockItemRepository)
	cache := new(mockMenuCache)
	router := setupItemRouter(testItemHandler(repo, cache))

	long := strings.Repeat("x", 151)
	body := []byte(`{"name":"Es Teh","description":"` + long + `","price":6000,"stock":5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Fields, "Description")
}

// ============================================================================
// GET /api/v1/items - ListItems
// ============================================================================

func TestListItems_Success(t *testing.T) {
	repo := new(mockItemRepository)
	cache := new(mockMenuCache)
	router := setupItemRouter(testItemHandler(repo, cache))

	items := []domain.Item{*sampleItem()}
	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.ItemFilter) bool {
		return f.Page == 1 && f.PerPage == 20 && f.Category == "" && !f.InStock
	})).Return(items, 1, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp httputil.PaginatedResponse[domain.Item]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 1, resp.TotalCount)

	repo.AssertExpectations(t)
}

func TestListItems_CategoryAndStockFilter(t *testing.T) {
	repo := new(mockItemRepository)
	cache := new(mockMenuCache)
	router := setupItemRouter(testItemHandler(repo, cache))

	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.ItemFilter) bool {
		return f.Category == "drinks" && f.InStock
	})).Return([]domain.Item{}, 0, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items?category=drinks&in_stock=true", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestListItems_InvalidPerPage(t *testing.T) {
	repo := new(mockItemRepository)
	cache := new(mockMenuCache)
	router := setupItemRouter(testItemHandler(repo, cache))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items?per_page=500", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_PARAMETER", resp.Error.Code)
}

// ============================================================================
// GET /api/v1/menu - Menu
// ============================================================================

func TestMenu_CacheHit(t *testing.T) {
	repo := new(mockItemRepository)
	cache := new(mockMenuCache)
	router := setupItemRouter(testItemHandler(repo, cache))

	cache.On("Get", mock.Anything).Return([]domain.Item{*sampleItem()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Data)

	cache.AssertExpectations(t)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestMenu_CacheMiss_FallsBackToRepository(t *testing.T) {
	repo := new(mockItemRepository)
	cache := new(mockMenuCache)
	router := setupItemRouter(testItemHandler(repo, cache))

	items := []domain.Item{*sampleItem()}
	cache.On("Get", mock.Anything).Return(nil, apperrors.ErrNotFound)
	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.ItemFilter) bool {
		return f.InStock && f.PerPage == 100
	})).Return(items, 1, nil)
	cache.On("Set", mock.Anything, items).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

// ============================================================================
// PUT /api/v1/items/{id} - UpdateItem
// ============================================================================

func TestUpdateItem_Success(t *testing.T) {
	repo := new(mockItemRepository)
	cache := new(mockMenuCache)
	router := setupItemRouter(testItemHandler(repo, cache))

	item := sampleItem()
	repo.On("GetByID", mock.Anything, item.ID).Return(item, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(i *domain.Item) bool {
		return i.Price == 28000
	})).Return(nil)
	cache.On("Invalidate", mock.Anything).Return(nil)

	body := []byte(`{"price":28000}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/items/"+item.ID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Data)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(28000), data["price"])

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestUpdateItem_NotFound(t *testing.T) {
	repo := new(mockItemRepository)
	cache := new(mockMenuCache)
	router := setupItemRouter(testItemHandler(repo, cache))

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, apperrors.NotFound("item", id.String()))

	body := []byte(`{"price":28000}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/items/"+id.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ============================================================================
// DELETE /api/v1/items/{id} - DeleteItem
// ============================================================================

func TestDeleteItem_Success(t *testing.T) {
	repo := new(mockItemRepository)
	cache := new(mockMenuCache)
	router := setupItemRouter(testItemHandler(repo, cache))

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(nil)
	cache.On("Invalidate", mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/items/"+id.String(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	repo.AssertExpectations(t)
}

func TestDeleteItem_Referenced(t *testing.T) {
	repo := new(mockItemRepository)
	cache := new(mockMenuCache)
	router := setupItemRouter(testItemHandler(repo, cache))

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).
		Return(apperrors.Conflict("item is referenced by existing orders"))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/items/"+id.String(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "CONFLICT", resp.Error.Code)
}

// ============================================================================
// POST /api/v1/items/{id}/stock - AdjustStock
// ============================================================================

func TestAdjustStock_Success(t *testing.T) {
	repo := new(mockItemRepository)
	cache := new(mockMenuCache)
	router := setupItemRouter(testItemHandler(repo, cache))

	item := sampleItem()
	adjusted := *item
	adjusted.Stock = 7
	repo.On("AdjustStock", mock.Anything, item.ID, -5).Return(&adjusted, nil)
	cache.On("Invalidate", mock.Anything).Return(nil)

	body := []byte(`{"delta":-5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/items/"+item.ID.String()+"/stock", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Data)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(7), data["stock"])

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestAdjustStock_ZeroDelta(t *testing.T) {
	repo := new(mockItemRepository)
	cache := new(mockMenuCache)
	router := setupItemRouter(testItemHandler(repo, cache))

	body := []byte(`{"delta":0}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/items/"+uuid.New().String()+"/stock", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdjustStock_WouldGoNegative(t *testing.T) {
	repo := new(mockItemRepository)
	cache := new(mockMenuCache)
	router := setupItemRouter(testItemHandler(repo, cache))

	id := uuid.New()
	repo.On("AdjustStock", mock.Anything, id, -50).
		Return(nil, apperrors.InsufficientStock(id.String(), 50, 12))

	body := []byte(`{"delta":-50}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/items/"+id.String()+"/stock", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INSUFFICIENT_STOCK", resp.Error.Code)
}
