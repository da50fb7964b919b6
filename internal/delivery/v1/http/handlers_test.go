package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enertrics/storefront-backend/internal/cfg"
	"github.com/enertrics/storefront-backend/internal/domain"
	"github.com/enertrics/storefront-backend/internal/usecase"
	"github.com/enertrics/storefront-backend/pkg/e"
	"github.com/enertrics/storefront-backend/pkg/logger"
)

type fakeCartUC struct {
	lastCartID string
	lastLineID string
	lastReq    *usecase.AddItemReq
	snapshot   *usecase.CartSnapshot
}

func (f *fakeCartUC) snap() *usecase.CartSnapshot {
	if f.snapshot != nil {
		return f.snapshot
	}
	return &usecase.CartSnapshot{Items: []domain.LineItem{}}
}

func (f *fakeCartUC) GetCart(_ context.Context, cartID string) *usecase.CartSnapshot {
	f.lastCartID = cartID
	return f.snap()
}

func (f *fakeCartUC) AddItem(_ context.Context, cartID string, req *usecase.AddItemReq) *usecase.CartSnapshot {
	f.lastCartID = cartID
	f.lastReq = req
	return f.snap()
}

func (f *fakeCartUC) RemoveItem(_ context.Context, cartID, lineID string) *usecase.CartSnapshot {
	f.lastCartID = cartID
	f.lastLineID = lineID
	return f.snap()
}

func (f *fakeCartUC) UpdateQuantity(_ context.Context, cartID, lineID string, quantity int) *usecase.CartSnapshot {
	f.lastCartID = cartID
	f.lastLineID = lineID
	return f.snap()
}

func (f *fakeCartUC) ClearCart(_ context.Context, cartID string) *usecase.CartSnapshot {
	f.lastCartID = cartID
	return f.snap()
}

func (f *fakeCartUC) OpenCart(_ context.Context, cartID string) *usecase.CartSnapshot {
	f.lastCartID = cartID
	return f.snap()
}

func (f *fakeCartUC) CloseCart(_ context.Context, cartID string) *usecase.CartSnapshot {
	f.lastCartID = cartID
	return f.snap()
}

func (f *fakeCartUC) ToggleCart(_ context.Context, cartID string) *usecase.CartSnapshot {
	f.lastCartID = cartID
	return f.snap()
}

type fakeCatalogUC struct {
	lastReq *usecase.ListProductsReq
	product *domain.Product
}

func (f *fakeCatalogUC) ListProducts(_ context.Context, req *usecase.ListProductsReq) (*usecase.ListProductsRes, error) {
	f.lastReq = req
	if f.product == nil {
		return &usecase.ListProductsRes{Products: []domain.Product{}}, nil
	}
	return &usecase.ListProductsRes{Products: []domain.Product{*f.product}, Total: 1}, nil
}

func (f *fakeCatalogUC) GetProductBySlug(_ context.Context, slug string) (*domain.Product, error) {
	if f.product == nil || f.product.Slug != slug {
		return nil, e.ErrProductNotFound
	}
	return f.product, nil
}

type fakeContactUC struct {
	err error
}

func (f *fakeContactUC) SubmitContact(_ context.Context, req *usecase.SubmitContactReq) (*usecase.SubmitContactRes, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &usecase.SubmitContactRes{ID: "sub-1"}, nil
}

type fakeCareersUC struct {
	lastReq *usecase.ApplyReq
	err     error
}

func (f *fakeCareersUC) Apply(_ context.Context, req *usecase.ApplyReq) (*usecase.ApplyRes, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &usecase.ApplyRes{ID: "app-1"}, nil
}

func newCartTestRouter(uc usecase.CartUC) *chi.Mux {
	r := chi.NewRouter()
	registerCartRoutes(r, NewCartHandler(uc, logger.NewSlogLogger()))
	return r
}

func TestCartHandler_GetCart_MintsCookie(t *testing.T) {
	uc := &fakeCartUC{}
	router := newCartTestRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cartCookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.Equal(t, cookies[0].Value, uc.lastCartID)
}

func TestCartHandler_GetCart_ReusesCookie(t *testing.T) {
	uc := &fakeCartUC{}
	router := newCartTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: cartCookieName, Value: "existing-cart"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "existing-cart", uc.lastCartID)
	assert.Empty(t, rec.Result().Cookies())
}

func TestCartHandler_AddItem(t *testing.T) {
	uc := &fakeCartUC{
		snapshot: &usecase.CartSnapshot{
			Items: []domain.LineItem{
				{ID: "p-1", ProductID: "p-1", Title: "VoltCore", PriceCents: 1000, Quantity: 2},
			},
			TotalItems:      2,
			TotalPriceCents: 2000,
		},
	}
	router := newCartTestRouter(uc)

	body := `{"productId":"p-1","title":"VoltCore","priceCents":1000,"quantity":2}`
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, "p-1", uc.lastReq.ProductID)
	assert.Equal(t, int64(1000), uc.lastReq.PriceCents)

	var res struct {
		Success bool         `json:"success"`
		Data    cartResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Data.TotalItems)
	assert.Equal(t, int64(2000), res.Data.TotalPriceCents)
}

func TestCartHandler_AddItem_BadRequest(t *testing.T) {
	router := newCartTestRouter(&fakeCartUC{})

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"productId":`},
		{"missing product id", `{"title":"x","priceCents":100,"quantity":1}`},
		{"negative price", `{"productId":"p-1","priceCents":-5,"quantity":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCartHandler_UpdateAndRemove(t *testing.T) {
	uc := &fakeCartUC{}
	router := newCartTestRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/cart/items/p-1-std", strings.NewReader(`{"quantity":3}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "p-1-std", uc.lastLineID)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/cart/items/p-2", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "p-2", uc.lastLineID)
}

func TestProductHandler_ListProducts_Filters(t *testing.T) {
	uc := &fakeCatalogUC{}
	r := chi.NewRouter()
	registerProductRoutes(r, NewProductHandler(uc, logger.NewSlogLogger()))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products?category=batteries&featured=true&search=volt&limit=4", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, "batteries", uc.lastReq.Category)
	assert.True(t, uc.lastReq.Featured)
	assert.Equal(t, "volt", uc.lastReq.Search)
	assert.Equal(t, 4, uc.lastReq.Limit)
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	r := chi.NewRouter()
	registerProductRoutes(r, NewProductHandler(&fakeCatalogUC{}, logger.NewSlogLogger()))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/unknown", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var res ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestContactHandler_ValidationErrorFields(t *testing.T) {
	vErr := usecase.NewValidationError()
	vErr.Add("email", "invalid email address")
	vErr.Add("message", "message is too short")

	r := chi.NewRouter()
	registerContactRoutes(r, NewContactHandler(&fakeContactUC{err: vErr}, logger.NewSlogLogger()))

	body := `{"name":"A","email":"bad","subject":"hello there","message":"hi"}`
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var res ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "invalid email address", res.Fields["email"])
	assert.Equal(t, "message is too short", res.Fields["message"])
}

func TestContactHandler_Created(t *testing.T) {
	r := chi.NewRouter()
	registerContactRoutes(r, NewContactHandler(&fakeContactUC{}, logger.NewSlogLogger()))

	body := `{"name":"Jonas","email":"jonas@example.com","subject":"Fleet order","message":"We need 20 modules."}`
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCareersHandler_Apply(t *testing.T) {
	uc := &fakeCareersUC{}
	minioCfg := &cfg.MinIOCfg{MaxResumeSize: 10 << 20}

	r := chi.NewRouter()
	registerCareersRoutes(r, NewCareersHandler(uc, minioCfg, logger.NewSlogLogger()))

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Deniz"))
	require.NoError(t, mw.WriteField("email", "deniz@example.com"))
	require.NoError(t, mw.WriteField("message", "CV attached"))
	fw, err := mw.CreateFormFile("resume", "cv.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4 fake resume"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/careers/senior-software-engineer/apply", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, "senior-software-engineer", uc.lastReq.VacancySlug)
	require.NotNil(t, uc.lastReq.Resume)
	assert.Equal(t, "cv.pdf", uc.lastReq.Resume.Name)
	assert.NotEmpty(t, uc.lastReq.Resume.Data)
}

func TestCareersHandler_Apply_NotMultipart(t *testing.T) {
	r := chi.NewRouter()
	registerCareersRoutes(r, NewCareersHandler(&fakeCareersUC{}, &cfg.MinIOCfg{MaxResumeSize: 10 << 20}, logger.NewSlogLogger()))

	req := httptest.NewRequest(http.MethodPost, "/careers/senior-software-engineer/apply", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
