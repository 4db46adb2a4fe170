package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/codesbysuraj/Quickart/models"
	"github.com/codesbysuraj/Quickart/routes"
)

// Error strings returned by AddProduct's precondition checks. They double
// as the machine-readable error kind for callers that branch on them.
const (
	ErrPincodeUnavailable = "User pincode not available"
	ErrStaleSession       = "User ID not available. Clearing session and redirecting..."
)

// GetProducts lists products, optionally scoped to a pincode.
func (c *Client) GetProducts(ctx context.Context, pincode string) Result[[]models.Product] {
	scope := pincode
	if scope == "" {
		scope = "all"
	}
	c.log.Info("Fetching products", "pincode", scope)

	path := routes.Products
	if pincode != "" {
		path += "?pincode=" + url.QueryEscape(pincode)
	}
	res := execute[[]models.Product](c, ctx, http.MethodGet, path, nil)
	if res.Success {
		c.log.Success("Fetched products", "count", len(res.Data))
	} else {
		c.log.Error("Failed to fetch products", "error", res.Error)
	}
	return res
}

func (c *Client) GetProductByID(ctx context.Context, productID int64) Result[models.Product] {
	c.log.Info("Fetching product by ID", "productId", productID)
	res := execute[models.Product](c, ctx, http.MethodGet, routes.Product(productID), nil)
	if res.Success {
		c.log.Success("Fetched product by ID", "name", res.Data.Name)
	} else {
		c.log.Error("Failed to fetch product by ID", "error", res.Error)
	}
	return res
}

// AddProduct creates a product for the signed-in vendor. The vendor id and
// pincode come from the session, not the caller; without them the call
// aborts before any network traffic.
func (c *Client) AddProduct(ctx context.Context, product models.Product) Result[models.Product] {
	c.log.Info("Adding product", "name", product.Name)

	user := c.sessions.CurrentUser()
	if user == nil || user.Pincode == "" {
		c.log.Error(ErrPincodeUnavailable)
		c.toasts.NotifyError("We couldn't find your shop pincode. Please sign in again.")
		return fail[models.Product](ErrPincodeUnavailable)
	}

	if user.ID == 0 {
		c.log.Error("User ID not available, old session detected")
		c.toasts.NotifyError("Your session is from an old version. Clearing and redirecting to login...")
		c.sessions.Reset()
		target := c.loginTo
		time.AfterFunc(c.delay, func() { c.redirect(target) })
		return fail[models.Product](ErrStaleSession)
	}

	product.Pincode = user.Pincode
	product.Vendor = &models.User{ID: user.ID}

	res := execute[models.Product](c, ctx, http.MethodPost, routes.Products, product)
	if res.Success {
		c.log.Success("Product added successfully", "id", res.Data.ID)
	} else {
		c.log.Error("Failed to add product", "error", res.Error)
	}
	return res
}

func (c *Client) UpdateProduct(ctx context.Context, productID int64, product models.Product) Result[models.Product] {
	c.log.Info("Updating product", "productId", productID)
	res := execute[models.Product](c, ctx, http.MethodPut, routes.Product(productID), product)
	if res.Success {
		c.log.Success("Product updated successfully", "id", res.Data.ID)
	} else {
		c.log.Error("Failed to update product", "error", res.Error)
	}
	return res
}

func (c *Client) DeleteProduct(ctx context.Context, productID int64) Result[struct{}] {
	c.log.Info("Deleting product", "productId", productID)
	res := execute[struct{}](c, ctx, http.MethodDelete, routes.Product(productID), nil)
	if res.Success {
		c.log.Success("Product deleted successfully")
	} else {
		c.log.Error("Failed to delete product", "error", res.Error)
	}
	return res
}

func (c *Client) GetProductsByVendor(ctx context.Context, vendorID int64) Result[[]models.Product] {
	c.log.Info("Fetching products for vendor", "vendorId", vendorID)
	res := execute[[]models.Product](c, ctx, http.MethodGet, routes.VendorProducts(vendorID), nil)
	if res.Success {
		c.log.Success("Fetched vendor products", "count", len(res.Data))
	} else {
		c.log.Error("Failed to fetch vendor products", "error", res.Error)
	}
	return res
}

// GetVendorOutOfStock lists the vendor's products that are out of stock.
func (c *Client) GetVendorOutOfStock(ctx context.Context, vendorID int64) Result[[]models.Product] {
	c.log.Info("Fetching vendor out-of-stock indicator", "vendorId", vendorID)
	res := execute[[]models.Product](c, ctx, http.MethodGet, routes.VendorOutOfStock(vendorID), nil)
	if res.Success {
		c.log.Success("Fetched out-of-stock products", "count", len(res.Data))
	} else {
		c.log.Error("Failed to fetch out-of-stock indicator", "error", res.Error)
	}
	return res
}
