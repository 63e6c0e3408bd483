// Package listview implements the paginated product list: fetching the
// collection, windowing it into pages, and the per-row view/delete actions.
package listview

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"inventory-service/internal/model"
)

// ItemsPerPage is the fixed page size of the product table.
const ItemsPerPage = 10

// API is the subset of the inventory client the list view uses. Update is
// deliberately absent: the update action is disabled in this version.
type API interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

// Confirmer asks the user to confirm a destructive action before it runs.
type Confirmer interface {
	Confirm(prompt string) bool
}

// View holds the product list state: the fetched collection, the current
// page and the in-flight/error flags. It is confined to the UI event loop
// and is not safe for concurrent use.
type View struct {
	api API
	log *zap.Logger

	products []model.Product
	page     int
	loading  bool
	errMsg   string
}

// New creates an empty view on page 1. Call Refresh to load the collection.
func New(api API, log *zap.Logger) *View {
	if log == nil {
		log = zap.NewNop()
	}
	return &View{
		api:  api,
		log:  log,
		page: 1,
	}
}

// Refresh replaces the stored collection with a fresh full read. While the
// request is in flight Loading reports true. On failure the previously
// loaded list stays in place and Err carries a user-visible message.
func (v *View) Refresh(ctx context.Context) {
	v.loading = true
	v.errMsg = ""

	products, err := v.api.ListProducts(ctx)
	v.loading = false
	if err != nil {
		v.log.Error("Failed to load products", zap.Error(err))
		v.errMsg = "Failed to load products. Please try again."
		return
	}

	v.products = products
	v.clampPage()
	v.log.Info("Product list refreshed", zap.Int("count", len(products)))
}

// Loading reports whether a fetch is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the user-visible message of the last failed operation, or "".
func (v *View) Err() string {
	return v.errMsg
}

// Len returns the size of the fetched collection.
func (v *View) Len() int {
	return len(v.products)
}

// Page returns the current 1-indexed page.
func (v *View) Page() int {
	return v.page
}

// TotalPages returns the number of pages the collection spans. An empty
// collection has zero pages, but Page never drops below 1.
func (v *View) TotalPages() int {
	return (len(v.products) + ItemsPerPage - 1) / ItemsPerPage
}

// Window returns the sub-sequence of the collection visible on the current
// page. A page beyond the collection bounds yields an empty window.
func (v *View) Window() []model.Product {
	start := (v.page - 1) * ItemsPerPage
	if start >= len(v.products) {
		return nil
	}
	end := start + ItemsPerPage
	if end > len(v.products) {
		end = len(v.products)
	}
	return v.products[start:end]
}

// HasPrev reports whether the previous-page control is enabled.
func (v *View) HasPrev() bool {
	return v.page > 1
}

// HasNext reports whether the next-page control is enabled.
func (v *View) HasNext() bool {
	return v.page < v.TotalPages()
}

// Prev moves one page back, flooring at page 1.
func (v *View) Prev() {
	if v.HasPrev() {
		v.page--
	}
}

// Next moves one page forward, ceilinged at the last page.
func (v *View) Next() {
	if v.HasNext() {
		v.page++
	}
}

// SetPage jumps to the given page, clamped into the valid range.
func (v *View) SetPage(page int) {
	v.page = page
	v.clampPage()
}

// ViewProduct returns the already-loaded product for a read-only detail
// presentation. No backend call is made.
func (v *View) ViewProduct(id uint) (*model.Product, bool) {
	for i := range v.products {
		if v.products[i].ProductID == id {
			p := v.products[i]
			return &p, true
		}
	}
	return nil, false
}

// Delete removes a product after explicit confirmation, then re-fetches the
// collection and re-clamps the page in case the deleted row was the last
// item on the last page. On failure the current page and window are left
// untouched and Err carries the message.
func (v *View) Delete(ctx context.Context, id uint, confirm Confirmer) error {
	prompt := fmt.Sprintf("Delete product %d? This cannot be undone.", id)
	if !confirm.Confirm(prompt) {
		return nil
	}

	v.loading = true
	err := v.api.DeleteProduct(ctx, id)
	v.loading = false
	if err != nil {
		v.log.Error("Failed to delete product",
			zap.Uint("product_id", id),
			zap.Error(err))
		v.errMsg = "Failed to delete product. Please try again."
		return err
	}

	v.log.Info("Product deleted", zap.Uint("product_id", id))
	v.Refresh(ctx)
	return nil
}

func (v *View) clampPage() {
	max := v.TotalPages()
	if max < 1 {
		max = 1
	}
	if v.page > max {
		v.page = max
	}
	if v.page < 1 {
		v.page = 1
	}
}
