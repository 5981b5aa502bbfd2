package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/sonmartinn/125SaleIphone-FE/cart"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CartFeedHandler streams the user's cart over a websocket: one snapshot on
// connect, then one after every mutation, so every open surface renders the
// same cart without polling.
func CartFeedHandler(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		store := m.ForUser(userID)

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		// The callback runs under the store's lock, so it only snapshots;
		// a slow reader drops intermediate snapshots rather than blocking
		// cart mutations.
		send := make(chan cartView, 8)
		cancel := store.Subscribe(func(lines []cart.Line) {
			select {
			case send <- cartView{Items: lines, Totals: cart.TotalsOf(lines)}:
			default:
			}
		})
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		if err := conn.WriteJSON(view(store)); err != nil {
			return
		}
		for {
			select {
			case <-done:
				return
			case snapshot := <-send:
				if err := conn.WriteJSON(snapshot); err != nil {
					return
				}
			}
		}
	}
}
