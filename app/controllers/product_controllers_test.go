package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/slopestock/app/models"
	"github.com/shashiranjanraj/slopestock/app/repositories"
	"github.com/shashiranjanraj/slopestock/app/services"
	"github.com/shashiranjanraj/slopestock/internal/server"
)

// newAPI builds the full HTTP stack (middleware included) over a fresh
// in-memory database, exactly as serve wires it.
func newAPI(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))

	service := services.NewProductService(repositories.NewProductRepository(db))
	return server.NewHandler(service), db
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeProduct(t *testing.T, body []byte) models.Product {
	t.Helper()

	var p models.Product
	require.NoError(t, json.Unmarshal(body, &p))
	return p
}

func countRows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	return count
}

func TestProductLifecycle(t *testing.T) {
	h, _ := newAPI(t)

	// Create.
	rec := do(t, h, http.MethodPost, "/api/products", `{"name":"Test Skis","price":100,"quantity":5}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decodeProduct(t, rec.Body.Bytes())
	assert.NotZero(t, created.ID)
	assert.Nil(t, created.SKU)
	assert.False(t, created.CreatedAt.IsZero())

	// The raw body must carry an explicit null sku, not omit the key.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	skuJSON, ok := raw["sku"]
	require.True(t, ok)
	assert.Equal(t, "null", string(skuJSON))

	// Fetch it back.
	rec = do(t, h, http.MethodGet, fmt.Sprintf("/api/products/%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	fetched := decodeProduct(t, rec.Body.Bytes())
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Test Skis", fetched.Name)
	assert.Equal(t, 100.0, fetched.Price)
	assert.Equal(t, 5, fetched.Quantity)

	// Update the quantity; identity must survive.
	rec = do(t, h, http.MethodPut, fmt.Sprintf("/api/products/%d", created.ID),
		`{"name":"Test Skis","price":100,"quantity":3}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeProduct(t, rec.Body.Bytes())
	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())

	// Delete, then every further access 404s.
	rec = do(t, h, http.MethodDelete, fmt.Sprintf("/api/products/%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var msg map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.Equal(t, "Product deleted successfully", msg["message"])

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/api/products/%d", created.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodDelete, fmt.Sprintf("/api/products/%d", created.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListEmptyCatalogIsArray(t *testing.T) {
	h, _ := newAPI(t)

	rec := do(t, h, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListNewestFirstOverHTTP(t *testing.T) {
	h, _ := newAPI(t)

	for _, name := range []string{"A", "B", "C"} {
		rec := do(t, h, http.MethodPost, "/api/products",
			fmt.Sprintf(`{"name":%q,"price":10,"quantity":1}`, name))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := do(t, h, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 3)
	assert.Equal(t, "C", products[0].Name)
	assert.Equal(t, "B", products[1].Name)
	assert.Equal(t, "A", products[2].Name)
}

func TestCreateValidation(t *testing.T) {
	h, db := newAPI(t)

	rec := do(t, h, http.MethodPost, "/api/products", `{"description":"no name"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "name")
	assert.Contains(t, body["error"], "price")
	assert.Contains(t, body["error"], "quantity")

	// No row was created.
	assert.Zero(t, countRows(t, db))
}

func TestZeroPriceAndQuantityAreValid(t *testing.T) {
	h, _ := newAPI(t)

	rec := do(t, h, http.MethodPost, "/api/products",
		`{"name":"Freebie","price":0,"quantity":0}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	p := decodeProduct(t, rec.Body.Bytes())
	assert.Zero(t, p.Price)
	assert.Zero(t, p.Quantity)
}

func TestDuplicateSKUConflict(t *testing.T) {
	h, _ := newAPI(t)

	rec := do(t, h, http.MethodPost, "/api/products",
		`{"name":"First","price":10,"quantity":1,"sku":"SKI-001"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/products",
		`{"name":"Second","price":10,"quantity":1,"sku":"SKI-001"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestBlankSKUTreatedAsAbsent(t *testing.T) {
	h, _ := newAPI(t)

	rec := do(t, h, http.MethodPost, "/api/products",
		`{"name":"First","price":10,"quantity":1,"sku":""}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, decodeProduct(t, rec.Body.Bytes()).SKU)

	// A second blank sku must not collide.
	rec = do(t, h, http.MethodPost, "/api/products",
		`{"name":"Second","price":10,"quantity":1,"sku":""}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestMalformedJSONRejected(t *testing.T) {
	h, _ := newAPI(t)

	rec := do(t, h, http.MethodPost, "/api/products", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownAndNonNumericIds(t *testing.T) {
	h, _ := newAPI(t)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/products/9999", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/products/abc", "").Code)

	rec := do(t, h, http.MethodPut, "/api/products/9999", `{"name":"Ghost","price":1,"quantity":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestIDHeaderPropagated(t *testing.T) {
	h, _ := newAPI(t)

	rec := do(t, h, http.MethodGet, "/api/products", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
