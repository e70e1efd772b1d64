package http

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
	"github.com/iamasit07/4-in-a-row/console/internal/transport/http/middleware"
	"github.com/iamasit07/4-in-a-row/console/internal/transport/websocket"
)

// NewRouter builds the spectator API. Request logs go to the diagnostic log
// so they never land on the console board.
func NewRouter(sm *game.SessionManager, wsHandler *websocket.Handler, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.LoggerWithWriter(log.Writer()), gin.Recovery())
	router.Use(middleware.CORSMiddleware(allowedOrigins))

	watchHandler := NewWatchHandler(sm, wsHandler.ConnManager.Count)

	router.GET("/api/watch", watchHandler.GetLiveGames)
	router.GET("/api/watch/:id", watchHandler.GetLiveGame)

	// Read-only feed; spectators cannot play
	router.GET("/ws", gin.WrapF(wsHandler.HandleWebSocket))

	return router
}
