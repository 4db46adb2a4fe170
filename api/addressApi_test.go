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

func TestAddressLifecycle(t *testing.T) {
	srv := newTestServer(t, func(r *gin.Engine) {
		r.GET("/users/:username/addresses", func(c *gin.Context) {
			c.JSON(http.StatusOK, aliceAddresses())
		})
		r.POST("/users/:username/addresses", func(c *gin.Context) {
			var a models.Address
			require.NoError(t, c.ShouldBindJSON(&a))
			a.ID = 3
			c.JSON(http.StatusOK, a)
		})
		r.PUT("/users/:username/addresses/:addressId", func(c *gin.Context) {
			var a models.Address
			require.NoError(t, c.ShouldBindJSON(&a))
			a.ID = 3
			c.JSON(http.StatusOK, a)
		})
		r.DELETE("/users/:username/addresses/:addressId", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		r.PUT("/users/:username/addresses/:addressId/default", func(c *gin.Context) {
			c.JSON(http.StatusOK, models.Address{ID: 2, FullAddress: "4 Church Street", Pincode: "560002", IsDefault: true})
		})
	})
	client, _ := newTestClient(t, srv.URL)
	ctx := context.Background()

	list := client.GetAddresses(ctx, "alice")
	require.True(t, list.Success)
	assert.Len(t, list.Data, 2)

	added := client.AddAddress(ctx, "alice", models.Address{FullAddress: "9 Brigade Road", Pincode: "560025", Phone: "333"})
	require.True(t, added.Success)
	assert.Equal(t, int64(3), added.Data.ID)
	assert.Equal(t, "560025", added.Data.Pincode)

	updated := client.UpdateAddress(ctx, "alice", 3, models.Address{FullAddress: "9 Brigade Road", Pincode: "560026", Phone: "333"})
	require.True(t, updated.Success)
	assert.Equal(t, "560026", updated.Data.Pincode)

	def := client.SetDefaultAddress(ctx, "alice", 2)
	require.True(t, def.Success)
	assert.True(t, def.Data.IsDefault)

	deleted := client.DeleteAddress(ctx, "alice", 3)
	assert.True(t, deleted.Success)
}

func TestAddressPathsEscapeUsername(t *testing.T) {
	var gotUsername string
	srv := newTestServer(t, func(r *gin.Engine) {
		r.GET("/users/:username/addresses", func(c *gin.Context) {
			gotUsername = c.Param("username")
			c.JSON(http.StatusOK, []models.Address{})
		})
	})
	client, _ := newTestClient(t, srv.URL)

	res := client.GetAddresses(context.Background(), "weird user")
	require.True(t, res.Success)
	assert.Equal(t, "weird user", gotUsername)
}
