package cartControllers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/sonmartinn/125SaleIphone-FE/cart"
)

func TestCartFeedStreamsSnapshots(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := cart.NewManager(nil)
	m.ForUser("u1").AddItem(phone(), "red", 1)

	r := gin.New()
	r.GET("/user/cart/feed", func(c *gin.Context) {
		c.Set("user_id", "u1")
		CartFeedHandler(m)(c)
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/user/cart/feed"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var first cartView
	require.NoError(t, conn.ReadJSON(&first))
	require.Len(t, first.Items, 1)
	require.Equal(t, 1, first.Totals.TotalItems)

	m.ForUser("u1").AddItem(phone(), "red", 2)

	var second cartView
	require.NoError(t, conn.ReadJSON(&second))
	require.Equal(t, 3, second.Totals.TotalItems)
}
