package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/homeservices/directory/internal/core/domain"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// toastFeed is the notification hub as seen by the API.
type toastFeed interface {
	Active() []domain.Toast
	Dismiss(id string) bool
	Subscribe() ([]domain.Toast, <-chan domain.Toast, func())
}

type ToastHandler struct {
	feed     toastFeed
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

// NewToastHandler accepts WebSocket upgrades from any origin when
// allowedOrigins contains "*".
func NewToastHandler(feed toastFeed, allowedOrigins []string, log zerolog.Logger) *ToastHandler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return &ToastHandler{
		feed: feed,
		log:  log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				if _, ok := allowed["*"]; ok {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
		},
	}
}

// List handles GET /v1/toasts.
//
// @Summary      Active toasts
// @Tags         toasts
// @Produce      json
// @Success      200  {object}  toastsResponse
// @Router       /v1/toasts [get]
func (h *ToastHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, toastsResponse{Toasts: h.feed.Active()})
}

// Dismiss handles DELETE /v1/toasts/:id.
//
// @Summary      Dismiss a toast
// @Tags         toasts
// @Param        id   path  string  true  "Toast ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/toasts/{id} [delete]
func (h *ToastHandler) Dismiss(c echo.Context) error {
	if !h.feed.Dismiss(c.Param("id")) {
		return echo.NewHTTPError(http.StatusNotFound, "toast not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// Stream handles GET /v1/toasts/stream. The socket first receives every
// active toast, then each new one as a JSON text frame.
//
// @Summary      Toast stream (WebSocket)
// @Tags         toasts
// @Success      101
// @Router       /v1/toasts/stream [get]
func (h *ToastHandler) Stream(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.log.Debug().Err(err).Msg("websocket upgrade failed")
		return nil
	}
	defer conn.Close()

	active, toasts, unsubscribe := h.feed.Subscribe()
	defer unsubscribe()

	closed := make(chan struct{})
	go h.readPump(conn, closed)

	for _, t := range active {
		if err := h.write(conn, t); err != nil {
			return nil
		}
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-closed:
			return nil
		case t, ok := <-toasts:
			if !ok {
				return nil
			}
			if err := h.write(conn, t); err != nil {
				h.log.Debug().Err(err).Msg("toast stream write failed")
				return nil
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		}
	}
}

func (h *ToastHandler) write(conn *websocket.Conn, t domain.Toast) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(t)
}

// readPump drains client frames so pongs and close frames are processed.
func (h *ToastHandler) readPump(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
