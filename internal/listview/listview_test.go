package listview

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-service/internal/model"
)

// fakeAPI serves a mutable in-memory collection and can be switched into a
// failing mode.
type fakeAPI struct {
	products    []model.Product
	failList    bool
	failDelete  bool
	listCalls   int
	deleteCalls int
}

func (f *fakeAPI) ListProducts(ctx context.Context) ([]model.Product, error) {
	f.listCalls++
	if f.failList {
		return nil, errors.New("boom")
	}
	out := make([]model.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *fakeAPI) DeleteProduct(ctx context.Context, id uint) error {
	f.deleteCalls++
	if f.failDelete {
		return errors.New("boom")
	}
	for i, p := range f.products {
		if p.ProductID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

type confirmFunc func(string) bool

func (fn confirmFunc) Confirm(prompt string) bool { return fn(prompt) }

var always = confirmFunc(func(string) bool { return true })

func products(n int) []model.Product {
	out := make([]model.Product, n)
	for i := range out {
		out[i] = model.Product{
			ProductID: uint(i + 1),
			Name:      fmt.Sprintf("Product %d", i+1),
			Barcode:   fmt.Sprintf("BC-%04d", i+1),
		}
	}
	return out
}

func TestWindowsPartitionCollection(t *testing.T) {
	api := &fakeAPI{products: products(25)}
	v := New(api, nil)
	v.Refresh(context.Background())

	require.Equal(t, 3, v.TotalPages())

	var seen []uint
	for page := 1; page <= v.TotalPages(); page++ {
		v.SetPage(page)
		win := v.Window()
		for _, p := range win {
			seen = append(seen, p.ProductID)
		}
	}

	require.Len(t, seen, 25)
	for i, id := range seen {
		assert.Equal(t, uint(i+1), id, "concatenated windows must reconstruct the collection")
	}
}

func TestWindowBounds(t *testing.T) {
	api := &fakeAPI{products: products(25)}
	v := New(api, nil)
	v.Refresh(context.Background())

	v.SetPage(1)
	win := v.Window()
	require.Len(t, win, 10)
	assert.Equal(t, uint(1), win[0].ProductID)
	assert.Equal(t, uint(10), win[9].ProductID)

	v.SetPage(3)
	win = v.Window()
	require.Len(t, win, 5)
	assert.Equal(t, uint(21), win[0].ProductID)
	assert.Equal(t, uint(25), win[4].ProductID)

	// Page 4 is unreachable: SetPage clamps back to the last page.
	v.SetPage(4)
	assert.Equal(t, 3, v.Page())
}

func TestNavigationClamping(t *testing.T) {
	api := &fakeAPI{products: products(25)}
	v := New(api, nil)
	v.Refresh(context.Background())

	assert.False(t, v.HasPrev(), "previous must be disabled on page 1")
	v.Prev()
	assert.Equal(t, 1, v.Page())

	v.SetPage(3)
	assert.False(t, v.HasNext(), "next must be disabled on the last page")
	v.Next()
	assert.Equal(t, 3, v.Page())

	v.SetPage(-5)
	assert.Equal(t, 1, v.Page())
	v.SetPage(99)
	assert.Equal(t, 3, v.Page())
}

func TestEmptyCollection(t *testing.T) {
	api := &fakeAPI{}
	v := New(api, nil)
	v.Refresh(context.Background())

	assert.Equal(t, 0, v.TotalPages())
	assert.Equal(t, 1, v.Page())
	assert.Empty(t, v.Window())
	assert.False(t, v.HasNext())
	assert.False(t, v.HasPrev())
}

func TestDeleteLastItemOnLastPageReclampsPage(t *testing.T) {
	api := &fakeAPI{products: products(21)}
	v := New(api, nil)
	v.Refresh(context.Background())
	v.SetPage(3)

	win := v.Window()
	require.Len(t, win, 1)

	err := v.Delete(context.Background(), win[0].ProductID, always)
	require.NoError(t, err)

	assert.Equal(t, 2, v.TotalPages())
	assert.Equal(t, 2, v.Page(), "page must clamp into the shrunk range")
	assert.Len(t, v.Window(), 10)
}

func TestDeleteTriggersRefetch(t *testing.T) {
	api := &fakeAPI{products: products(5)}
	v := New(api, nil)
	v.Refresh(context.Background())

	require.NoError(t, v.Delete(context.Background(), 3, always))
	assert.Equal(t, 2, api.listCalls, "a successful delete must re-fetch the collection")
	assert.Equal(t, 4, v.Len())
}

func TestDeleteDeclinedByConfirmer(t *testing.T) {
	api := &fakeAPI{products: products(5)}
	v := New(api, nil)
	v.Refresh(context.Background())

	never := confirmFunc(func(string) bool { return false })
	require.NoError(t, v.Delete(context.Background(), 3, never))
	assert.Zero(t, api.deleteCalls, "declined confirmation must not issue the request")
	assert.Equal(t, 5, v.Len())
}

func TestFetchErrorKeepsStaleData(t *testing.T) {
	api := &fakeAPI{products: products(15)}
	v := New(api, nil)
	v.Refresh(context.Background())
	v.SetPage(2)

	api.failList = true
	v.Refresh(context.Background())

	assert.NotEmpty(t, v.Err())
	assert.Equal(t, 15, v.Len(), "failed fetch must not clear the loaded list")
	assert.Equal(t, 2, v.Page(), "failed fetch must not reset the page")
	assert.False(t, v.Loading())
}

func TestDeleteErrorKeepsViewState(t *testing.T) {
	api := &fakeAPI{products: products(15)}
	v := New(api, nil)
	v.Refresh(context.Background())
	v.SetPage(2)

	api.failDelete = true
	err := v.Delete(context.Background(), 11, always)
	require.Error(t, err)

	assert.NotEmpty(t, v.Err())
	assert.Equal(t, 2, v.Page(), "failed delete must not reset the page")
	assert.Len(t, v.Window(), 5)
}

func TestViewProductReadsLoadedData(t *testing.T) {
	api := &fakeAPI{products: products(5)}
	v := New(api, nil)
	v.Refresh(context.Background())

	calls := api.listCalls
	p, ok := v.ViewProduct(4)
	require.True(t, ok)
	assert.Equal(t, "Product 4", p.Name)
	assert.Equal(t, calls, api.listCalls, "view must not issue a backend call")

	_, ok = v.ViewProduct(99)
	assert.False(t, ok)
}

func TestRefreshReplacesList(t *testing.T) {
	api := &fakeAPI{products: products(10)}
	v := New(api, nil)
	v.Refresh(context.Background())
	require.Equal(t, 10, v.Len())

	api.products = products(3)
	v.Refresh(context.Background())
	assert.Equal(t, 3, v.Len(), "re-fetch is a full replace, never a patch")
	assert.Equal(t, 1, v.Page())
}
