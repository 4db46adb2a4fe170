package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codesbysuraj/Quickart/models"
)

func TestSuccessResponseDecodesIntoResult(t *testing.T) {
	srv := newTestServer(t, func(r *gin.Engine) {
		r.GET("/products/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, models.Product{ID: 42, Name: "Basmati Rice", Price: 120, Pincode: "560001"})
		})
	})
	client, _ := newTestClient(t, srv.URL)

	res := client.GetProductByID(context.Background(), 42)
	require.True(t, res.Success)
	assert.Empty(t, res.Error)
	assert.Equal(t, int64(42), res.Data.ID)
	assert.Equal(t, "Basmati Rice", res.Data.Name)
}

func TestErrorStatusReturnsBodyText(t *testing.T) {
	srv := newTestServer(t, func(r *gin.Engine) {
		r.GET("/products", func(c *gin.Context) {
			c.String(http.StatusInternalServerError, "database unreachable")
		})
		r.GET("/cart/:username", func(c *gin.Context) {
			c.String(http.StatusNotFound, "Cart not found")
		})
		r.PUT("/orders/status/:id", func(c *gin.Context) {
			c.String(http.StatusBadRequest, "Failed to update order status")
		})
	})
	client, _ := newTestClient(t, srv.URL)
	ctx := context.Background()

	products := client.GetProducts(ctx, "")
	require.False(t, products.Success)
	assert.Equal(t, "database unreachable", products.Error)

	cart := client.GetCart(ctx, "alice")
	require.False(t, cart.Success)
	assert.Equal(t, "Cart not found", cart.Error)

	status := client.UpdateOrderStatus(ctx, 9, models.OrderConfirmed)
	require.False(t, status.Success)
	assert.Equal(t, "Failed to update order status", status.Error)
}

func TestNetworkFailureReturnsErrorResult(t *testing.T) {
	srv := newTestServer(t, nil)
	baseURL := srv.URL
	srv.Close()

	client, _ := newTestClient(t, baseURL)
	ctx := context.Background()

	res := client.GetProducts(ctx, "560001")
	require.False(t, res.Success)
	assert.NotEmpty(t, res.Error)

	del := client.DeleteProduct(ctx, 1)
	require.False(t, del.Success)
	assert.NotEmpty(t, del.Error)
}

func TestMalformedJSONBodyFailsCleanly(t *testing.T) {
	srv := newTestServer(t, func(r *gin.Engine) {
		r.GET("/users/:username", func(c *gin.Context) {
			c.String(http.StatusOK, "<html>not json</html>")
		})
	})
	client, _ := newTestClient(t, srv.URL)

	res := client.GetUser(context.Background(), "alice")
	require.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
}

func TestEmptyBodyIsPureSuccessForDeletes(t *testing.T) {
	srv := newTestServer(t, func(r *gin.Engine) {
		r.DELETE("/products/:id", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		r.PUT("/notifications/:id/read", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
	})
	client, _ := newTestClient(t, srv.URL)
	ctx := context.Background()

	assert.True(t, client.DeleteProduct(ctx, 3).Success)
	assert.True(t, client.MarkNotificationRead(ctx, 12).Success)
}
