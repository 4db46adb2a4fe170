package api

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codesbysuraj/Quickart/models"
)

func TestGetProductsForwardsPincodeQuery(t *testing.T) {
	var gotPincode atomic.Value
	srv := newTestServer(t, func(r *gin.Engine) {
		r.GET("/products", func(c *gin.Context) {
			gotPincode.Store(c.Query("pincode"))
			c.JSON(http.StatusOK, []models.Product{{ID: 1, Name: "Milk", Pincode: c.Query("pincode")}})
		})
	})
	client, _ := newTestClient(t, srv.URL)

	res := client.GetProducts(context.Background(), "560001")
	require.True(t, res.Success)
	assert.Equal(t, "560001", gotPincode.Load())
	require.Len(t, res.Data, 1)

	res = client.GetProducts(context.Background(), "")
	require.True(t, res.Success)
	assert.Equal(t, "", gotPincode.Load())
}

func TestAddProductMergesVendorAndPincodeFromSession(t *testing.T) {
	var received atomic.Pointer[models.Product]
	srv := newTestServer(t, func(r *gin.Engine) {
		r.POST("/products", func(c *gin.Context) {
			var p models.Product
			require.NoError(t, c.ShouldBindJSON(&p))
			received.Store(&p)
			p.ID = 99
			c.JSON(http.StatusCreated, p)
		})
	})
	client, store := newTestClient(t, srv.URL)
	require.NoError(t, store.SaveUser(models.SessionUser{
		ID:       7,
		Username: "shopkeeper",
		Role:     models.RoleVendor,
		Pincode:  "560001",
	}))

	res := client.AddProduct(context.Background(), models.Product{
		Name:     "Jasmine Rice",
		Category: "Grocery",
		Price:    150,
		Stock:    20,
	})
	require.True(t, res.Success)
	assert.Equal(t, int64(99), res.Data.ID)

	sent := received.Load()
	require.NotNil(t, sent)
	assert.Equal(t, "560001", sent.Pincode)
	require.NotNil(t, sent.Vendor)
	assert.Equal(t, int64(7), sent.Vendor.ID)
}

func TestAddProductWithoutPincodeShortCircuits(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, func(r *gin.Engine) {
		r.Use(func(c *gin.Context) { hits.Add(1) })
		r.POST("/products", func(c *gin.Context) { c.Status(http.StatusCreated) })
	})
	client, store := newTestClient(t, srv.URL)
	require.NoError(t, store.SaveUser(models.SessionUser{ID: 7, Username: "shopkeeper", Role: models.RoleVendor}))

	res := client.AddProduct(context.Background(), models.Product{Name: "Jasmine Rice"})
	require.False(t, res.Success)
	assert.Equal(t, ErrPincodeUnavailable, res.Error)
	assert.Zero(t, hits.Load(), "no request may be issued")
}

func TestAddProductWithoutSessionShortCircuits(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, func(r *gin.Engine) {
		r.Use(func(c *gin.Context) { hits.Add(1) })
	})
	client, _ := newTestClient(t, srv.URL)

	res := client.AddProduct(context.Background(), models.Product{Name: "Jasmine Rice"})
	require.False(t, res.Success)
	assert.Equal(t, ErrPincodeUnavailable, res.Error)
	assert.Zero(t, hits.Load())
}

func TestAddProductStaleSessionClearsAndRedirects(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, func(r *gin.Engine) {
		r.Use(func(c *gin.Context) { hits.Add(1) })
	})

	redirected := make(chan string, 1)
	client, store := newTestClient(t, srv.URL, func(cfg *Config) {
		cfg.Redirect = func(target string) { redirected <- target }
		cfg.RedirectDelay = 10 * time.Millisecond
		cfg.LoginTarget = "/login"
	})
	// legacy record: pincode present but no id
	require.NoError(t, store.SaveUser(models.SessionUser{Username: "shopkeeper", Role: models.RoleVendor, Pincode: "560001"}))

	res := client.AddProduct(context.Background(), models.Product{Name: "Jasmine Rice"})
	require.False(t, res.Success)
	assert.Equal(t, ErrStaleSession, res.Error)
	assert.Zero(t, hits.Load())
	assert.Nil(t, store.CurrentUser(), "session must be wiped")

	select {
	case target := <-redirected:
		assert.Equal(t, "/login", target)
	case <-time.After(time.Second):
		t.Fatal("redirect was not scheduled")
	}
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	srv := newTestServer(t, func(r *gin.Engine) {
		r.PUT("/products/:id", func(c *gin.Context) {
			var p models.Product
			require.NoError(t, c.ShouldBindJSON(&p))
			p.ID = 5
			c.JSON(http.StatusOK, p)
		})
		r.DELETE("/products/:id", func(c *gin.Context) {
			c.String(http.StatusOK, "Product deleted successfully")
		})
	})
	client, _ := newTestClient(t, srv.URL)
	ctx := context.Background()

	up := client.UpdateProduct(ctx, 5, models.Product{Name: "Milk", Price: 30})
	require.True(t, up.Success)
	assert.Equal(t, int64(5), up.Data.ID)
	assert.Equal(t, "Milk", up.Data.Name)

	del := client.DeleteProduct(ctx, 5)
	assert.True(t, del.Success)
}

func TestVendorProductListings(t *testing.T) {
	srv := newTestServer(t, func(r *gin.Engine) {
		r.GET("/products/vendor/:vendorId", func(c *gin.Context) {
			c.JSON(http.StatusOK, []models.Product{{ID: 1}, {ID: 2}})
		})
		r.GET("/products/vendor/:vendorId/outofstock", func(c *gin.Context) {
			c.JSON(http.StatusOK, []models.Product{{ID: 2, Stock: 0}})
		})
	})
	client, _ := newTestClient(t, srv.URL)
	ctx := context.Background()

	all := client.GetProductsByVendor(ctx, 7)
	require.True(t, all.Success)
	assert.Len(t, all.Data, 2)

	oos := client.GetVendorOutOfStock(ctx, 7)
	require.True(t, oos.Success)
	require.Len(t, oos.Data, 1)
	assert.Zero(t, oos.Data[0].Stock)
}
