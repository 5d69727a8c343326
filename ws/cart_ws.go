package ws

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/Thariq15/react-cafe/entity"
	"github.com/Thariq15/react-cafe/pkg/logging"
	"github.com/Thariq15/react-cafe/repository"
	"github.com/Thariq15/react-cafe/services"
	"github.com/Thariq15/react-cafe/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// CartSnapshot is what subscribers receive: the full current cart, never a
// diff. Clients replace their local state with each message.
type CartSnapshot struct {
	Items  []entity.CartItem `json:"items"`
	Totals services.Totals   `json:"totals"`
}

// Subscription is one websocket connection watching one user's cart.
type Subscription struct {
	Conn   *websocket.Conn
	UserID uint
}

// CartHub fans out cart snapshots to live subscribers. Mutation paths call
// CartChanged after committing; the hub reloads the snapshot from storage so
// subscribers always see what is actually persisted.
type CartHub struct {
	clients    map[uint]map[*websocket.Conn]bool // userID -> connections
	changed    chan uint
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	carts      *repository.CartRepository
	log        *slog.Logger
}

func NewCartHub(carts *repository.CartRepository) *CartHub {
	return &CartHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		changed:    make(chan uint, 64),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		carts:      carts,
		log:        logging.New("cart-ws"),
	}
}

// CartChanged implements services.CartNotifier.
func (h *CartHub) CartChanged(userID uint) {
	h.changed <- userID
}

func (h *CartHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.UserID] == nil {
				h.clients[sub.UserID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.UserID][sub.Conn] = true
			h.mu.Unlock()

			// new subscriber gets the current state immediately
			h.push(sub.UserID)

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.UserID][sub.Conn]; ok {
				delete(h.clients[sub.UserID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case userID := <-h.changed:
			h.push(userID)
		}
	}
}

// push loads the persisted snapshot and writes it to every connection
// watching that user.
func (h *CartHub) push(userID uint) {
	h.mu.Lock()
	conns := h.clients[userID]
	if len(conns) == 0 {
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()

	items, err := h.carts.ListItems(userID)
	if err != nil {
		h.log.Error("load cart snapshot", "userId", userID, "err", err)
		return
	}
	snap := CartSnapshot{Items: items, Totals: services.ComputeTotals(items, 0)}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients[userID] {
		if err := conn.WriteJSON(snap); err != nil {
			h.log.Warn("ws write", "userId", userID, "err", err)
			conn.Close()
			delete(h.clients[userID], conn)
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/cart
func (h *CartHub) HandleCart(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "login required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade", "err", err)
		return
	}

	sub := Subscription{Conn: conn, UserID: userID}
	h.register <- sub

	go h.listen(sub)
}

// listen only watches for the connection dropping; the cart channel is
// one-way, all mutations go through the HTTP API.
func (h *CartHub) listen(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
