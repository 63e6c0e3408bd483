package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-service/internal/model"
)

func TestCreateAndListProducts(t *testing.T) {
	e := newTestServer(t)

	first := seedProduct(t, e, "Keyboard", "BC-0001")
	second := seedProduct(t, e, "Mouse", "BC-0002")
	require.NotEqual(t, first, second)

	rec := doJSON(t, e, http.MethodGet, "/products", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var products []model.Product
	decodeData(t, rec, &products)
	require.Len(t, products, 2)
	assert.Equal(t, "Mouse", products[0].Name, "collection is ordered newest first")
	assert.Equal(t, "Keyboard", products[1].Name)
	assert.Equal(t, 129.50, products[0].UnitPrice)
	assert.Equal(t, 12, products[0].QuantityInStock)
}

func TestCreateProductRequiresAuth(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/products", productBody("Keyboard", "BC-0001"), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/products", productBody("Keyboard", "BC-0001"), "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateProductValidation(t *testing.T) {
	e := newTestServer(t)

	body := productBody("", "BC-0001")
	rec := doJSON(t, e, http.MethodPost, "/products", body, testToken(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body = productBody("Keyboard", "BC-0001")
	body["unit_price"] = -1
	rec = doJSON(t, e, http.MethodPost, "/products", body, testToken(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProductDuplicateBarcode(t *testing.T) {
	e := newTestServer(t)
	seedProduct(t, e, "Keyboard", "BC-0001")

	rec := doJSON(t, e, http.MethodPost, "/products", productBody("Other Keyboard", "BC-0001"), testToken(t))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetProduct(t *testing.T) {
	e := newTestServer(t)
	id := seedProduct(t, e, "Keyboard", "BC-0001")

	rec := doJSON(t, e, http.MethodGet, "/products/1", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var product model.Product
	decodeData(t, rec, &product)
	assert.Equal(t, id, product.ProductID)
	assert.Equal(t, "Keyboard", product.Name)

	rec = doJSON(t, e, http.MethodGet, "/products/999", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProductReplacesFields(t *testing.T) {
	e := newTestServer(t)
	seedProduct(t, e, "Keyboard", "BC-0001")

	body := productBody("Mechanical Keyboard", "BC-0001")
	body["unit_price"] = 199.0
	rec := doJSON(t, e, http.MethodPut, "/products/1", body, testToken(t))
	require.Equal(t, http.StatusOK, rec.Code)

	var product model.Product
	decodeData(t, rec, &product)
	assert.Equal(t, "Mechanical Keyboard", product.Name)
	assert.Equal(t, 199.0, product.UnitPrice)
}

func TestUpdateProductBarcodeConflict(t *testing.T) {
	e := newTestServer(t)
	seedProduct(t, e, "Keyboard", "BC-0001")
	seedProduct(t, e, "Mouse", "BC-0002")

	body := productBody("Keyboard", "BC-0002")
	rec := doJSON(t, e, http.MethodPut, "/products/1", body, testToken(t))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	e := newTestServer(t)
	seedProduct(t, e, "Keyboard", "BC-0001")

	rec := doJSON(t, e, http.MethodDelete, "/products/1", nil, testToken(t))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/products", nil, "")
	var products []model.Product
	decodeData(t, rec, &products)
	assert.Empty(t, products)

	rec = doJSON(t, e, http.MethodDelete, "/products/1", nil, testToken(t))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListProductsFilters(t *testing.T) {
	e := newTestServer(t)
	seedProduct(t, e, "Keyboard", "BC-0001")

	body := productBody("Mouse", "BC-0002")
	body["category_id"] = 2
	rec := doJSON(t, e, http.MethodPost, "/products", body, testToken(t))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/products?category_id=2", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var products []model.Product
	decodeData(t, rec, &products)
	require.Len(t, products, 1)
	assert.Equal(t, "Mouse", products[0].Name)
}

func TestCategoryLifecycle(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/categories", map[string]string{"name": "Peripherals"}, testToken(t))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/categories", map[string]string{"name": "Peripherals"}, testToken(t))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/categories", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []model.ProductCategory
	decodeData(t, rec, &categories)
	require.Len(t, categories, 1)
	assert.Equal(t, "Peripherals", categories[0].Name)
}
