package api

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/webshop/storefront/internal/domain/shop"
)

// ShopAPI wraps the three shop endpoints. Product image references come back
// relative; they are resolved against the CDN base before the products enter
// the model layer.
type ShopAPI struct {
	client  *Client
	cdnBase string
}

// NewShopAPI creates the shop API facade.
func NewShopAPI(client *Client, cdnBase string) *ShopAPI {
	return &ShopAPI{client: client, cdnBase: cdnBase}
}

// ProductListResponse is the wire shape of GET /product.
type ProductListResponse struct {
	Total int            `json:"total"`
	Items []shop.Product `json:"items"`
}

// OrderResult is the wire shape of a successful POST /order.
type OrderResult struct {
	ID    string          `json:"id"`
	Total decimal.Decimal `json:"total"`
}

// GetProductList fetches the whole catalog.
func (a *ShopAPI) GetProductList(ctx context.Context) ([]shop.Product, error) {
	var resp ProductListResponse
	if err := a.client.Get(ctx, "/product", &resp); err != nil {
		return nil, err
	}
	items := resp.Items
	for i := range items {
		items[i].Image = a.resolveImage(items[i].Image)
	}
	return items, nil
}

// GetProductItem fetches a single product by id.
func (a *ShopAPI) GetProductItem(ctx context.Context, id string) (shop.Product, error) {
	var item shop.Product
	if err := a.client.Get(ctx, "/product/"+id, &item); err != nil {
		return shop.Product{}, err
	}
	item.Image = a.resolveImage(item.Image)
	return item, nil
}

// CreateOrder submits the assembled order payload.
func (a *ShopAPI) CreateOrder(ctx context.Context, order shop.OrderDraft) (*OrderResult, error) {
	var result OrderResult
	if err := a.client.Post(ctx, "/order", order, &result); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &result, nil
}

func (a *ShopAPI) resolveImage(image string) string {
	if image == "" || a.cdnBase == "" {
		return image
	}
	return a.cdnBase + image
}
