package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/mahendrayu/resto-pos/models"
	"github.com/mahendrayu/resto-pos/pos"
	"github.com/mahendrayu/resto-pos/terminal"
	"github.com/mahendrayu/resto-pos/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS middleware gates the upgrade request
	},
}

// TerminalHandler is the POS terminal websocket. Each connection owns a
// server-side cart seeded with the default charges; the terminal sends
// pos.Action messages and receives the recomputed cart after each one,
// alongside the order event broadcasts from the hub. Replies go through
// terminal.Reply so they never race a broadcast on the same connection.
func TerminalHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleInterface, exists := c.Get("role")
		if !exists {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		role := roleInterface.(string)
		if role != models.RoleAdmin && role != models.RoleStaff {
			utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
			c.Abort()
			return
		}

		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		terminal.RegisterClient(ws, role)
		defer terminal.UnregisterClient(ws)

		var defaults []models.Charge
		db.Where("is_default = ?", true).Find(&defaults)
		cart := pos.NewCart(pos.ChargeLinesFrom(defaults))

		for {
			_, raw, err := ws.ReadMessage()
			if err != nil {
				break
			}

			var action pos.Action
			if err := json.Unmarshal(raw, &action); err != nil {
				writeTerminalError(ws, "malformed action")
				continue
			}
			if err := cart.Apply(action); err != nil {
				writeTerminalError(ws, err.Error())
				continue
			}

			reply := terminal.Message{Event: terminal.EventCartState, Data: cartSummary(cart)}
			if err := terminal.Reply(ws, reply); err != nil {
				break
			}
		}
	}
}

func writeTerminalError(ws *websocket.Conn, message string) {
	terminal.Reply(ws, terminal.Message{Event: terminal.EventError, Data: message})
}
