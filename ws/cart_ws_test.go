package ws

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Thariq15/react-cafe/entity"
	"github.com/Thariq15/react-cafe/middlewares"
	"github.com/Thariq15/react-cafe/repository"
	"github.com/Thariq15/react-cafe/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func newHubServer(t *testing.T) (*httptest.Server, *CartHub, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&entity.CartItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	hub := NewCartHub(repository.NewCartRepository(db))
	go hub.Run()

	r := gin.New()
	r.GET("/ws/cart", middlewares.WSAuthMiddleware(testSecret), hub.HandleCart)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, hub, db
}

func dialCart(t *testing.T, srv *httptest.Server, userID uint) *websocket.Conn {
	t.Helper()

	tok, err := utils.GenerateToken(userID, "customer", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/cart?token=" + tok

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) CartSnapshot {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	var snap CartSnapshot
	if err := conn.ReadJSON(&snap); err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	return snap
}

func TestSubscriberGetsSnapshotOnConnect(t *testing.T) {
	srv, _, db := newHubServer(t)
	db.Create(&entity.CartItem{UserID: 1, MenuItemID: 10, Name: "Caffe Latte",
		Price: decimal.RequireFromString("5.00"), Quantity: 2})

	conn := dialCart(t, srv, 1)

	snap := readSnapshot(t, conn)
	if len(snap.Items) != 1 || snap.Items[0].Quantity != 2 {
		t.Fatalf("initial snapshot = %+v, want one qty-2 line", snap.Items)
	}
	if want := decimal.RequireFromString("10.00"); !snap.Totals.Subtotal.Equal(want) {
		t.Errorf("subtotal = %s, want %s", snap.Totals.Subtotal, want)
	}
}

func TestSubscriberGetsFullSnapshotOnEveryChange(t *testing.T) {
	srv, hub, db := newHubServer(t)
	conn := dialCart(t, srv, 1)

	if snap := readSnapshot(t, conn); len(snap.Items) != 0 {
		t.Fatalf("initial snapshot = %+v, want empty", snap.Items)
	}

	db.Create(&entity.CartItem{UserID: 1, MenuItemID: 10, Name: "Espresso",
		Price: decimal.RequireFromString("3.00"), Quantity: 1})
	hub.CartChanged(1)

	snap := readSnapshot(t, conn)
	if len(snap.Items) != 1 {
		t.Fatalf("snapshot after change = %+v, want one line", snap.Items)
	}

	// snapshots are full replacements: after a second change the message
	// again carries the whole cart, not a diff
	db.Create(&entity.CartItem{UserID: 1, MenuItemID: 11, Name: "Mocha",
		Price: decimal.RequireFromString("5.50"), Quantity: 3})
	hub.CartChanged(1)

	snap = readSnapshot(t, conn)
	if len(snap.Items) != 2 {
		t.Fatalf("snapshot = %d lines, want the complete cart (2)", len(snap.Items))
	}
}

func TestSnapshotsAreScopedToOwner(t *testing.T) {
	srv, hub, db := newHubServer(t)
	conn1 := dialCart(t, srv, 1)
	conn2 := dialCart(t, srv, 2)
	readSnapshot(t, conn1)
	readSnapshot(t, conn2)

	db.Create(&entity.CartItem{UserID: 2, MenuItemID: 10, Name: "Espresso",
		Price: decimal.RequireFromString("3.00"), Quantity: 1})
	hub.CartChanged(2)

	snap := readSnapshot(t, conn2)
	if len(snap.Items) != 1 {
		t.Fatalf("user 2 snapshot = %+v, want one line", snap.Items)
	}

	// user 1 hears nothing about user 2's cart
	conn1.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	var other CartSnapshot
	if err := conn1.ReadJSON(&other); err == nil {
		t.Errorf("user 1 received a snapshot for user 2's change: %+v", other)
	}
}

func TestSubscribeRequiresToken(t *testing.T) {
	srv, _, _ := newHubServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/cart"
	_, res, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("dial without token succeeded, want handshake rejection")
	}
	if res == nil || res.StatusCode != http.StatusUnauthorized {
		t.Errorf("handshake status = %v, want 401", res)
	}
}
