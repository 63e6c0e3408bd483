package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"inventory-service/pkg/config"
	"inventory-service/pkg/database"
	"inventory-service/pkg/jwtutil"
	"inventory-service/prometheus"
)

var metricsOnce sync.Once

// newTestServer wires the full route table against a fresh in-memory
// database.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err)

	metricsOnce.Do(func() { prometheus.InitMetrics(cfg) })
	jwtutil.Initialize(&cfg.JWT)
	database.SetDB(database.NewTestDB(t))

	e := echo.New()
	RegisterRoutes(e)
	return e
}

func testToken(t *testing.T) string {
	t.Helper()
	token, err := jwtutil.GenerateToken("ana@example.com", 7, "u-7", "admin", "Ana")
	require.NoError(t, err)
	return token
}

// doJSON issues a request against the echo instance and returns the recorder.
func doJSON(t *testing.T, e *echo.Echo, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// decodeData unmarshals the `data` field of an enveloped response into out.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var env struct {
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Empty(t, env.Error)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

// dbCreate inserts a record directly, bypassing the API, for test seeding.
func dbCreate(t *testing.T, value interface{}) error {
	t.Helper()
	return database.GetDB().Create(value).Error
}

func productBody(name, barcode string) map[string]interface{} {
	return map[string]interface{}{
		"name":              name,
		"barcode":           barcode,
		"unit_price":        129.50,
		"quantity_in_stock": 12,
		"category_id":       1,
	}
}

func seedProduct(t *testing.T, e *echo.Echo, name, barcode string) uint {
	t.Helper()
	rec := doJSON(t, e, http.MethodPost, "/products", productBody(name, barcode), testToken(t))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ProductID uint `json:"product_id"`
	}
	decodeData(t, rec, &created)
	return created.ProductID
}
