package services

import (
	"errors"
	"testing"

	"github.com/Thariq15/react-cafe/entity"
	"github.com/Thariq15/react-cafe/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newCheckoutFixture(t *testing.T) (*CartService, *CheckoutService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	cartRepo := repository.NewCartRepository(db)
	cartSvc := NewCartService(db, cartRepo, repository.NewMenuRepository(db))
	checkout := NewCheckoutService(db, cartRepo, repository.NewTransactionRepository(db))
	return cartSvc, checkout, db
}

func TestCheckoutEmptyCartFails(t *testing.T) {
	_, checkout, db := newCheckoutFixture(t)

	_, err := checkout.Checkout(1, "")
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}

	var count int64
	db.Model(&entity.Transaction{}).Count(&count)
	if count != 0 {
		t.Errorf("transactions = %d, want none", count)
	}
}

func TestCheckoutSnapshotsCartAndDrainsIt(t *testing.T) {
	cartSvc, checkout, db := newCheckoutFixture(t)
	a := seedMenuItem(t, db, "Item A", "5.00")
	b := seedMenuItem(t, db, "Item B", "3.00")
	if err := cartSvc.Add(7, &AddToCartIn{MenuItemID: a.ID, Qty: 2}); err != nil {
		t.Fatalf("add a: %v", err)
	}
	if err := cartSvc.Add(7, &AddToCartIn{MenuItemID: b.ID, Qty: 1}); err != nil {
		t.Fatalf("add b: %v", err)
	}

	trx, err := checkout.Checkout(7, "DISCOUNT10")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if trx.UserID != 7 {
		t.Errorf("uid = %d, want 7", trx.UserID)
	}
	if trx.Status != entity.StatusPending {
		t.Errorf("status = %q, want Pending", trx.Status)
	}
	if trx.Discount != 10 {
		t.Errorf("discount = %d, want 10", trx.Discount)
	}
	if want := decimal.RequireFromString("13.00"); !trx.Subtotal.Equal(want) {
		t.Errorf("subtotal = %s, want %s", trx.Subtotal, want)
	}
	if want := decimal.RequireFromString("15.20"); !trx.Total.Equal(want) {
		t.Errorf("total = %s, want %s", trx.Total, want)
	}
	if len(trx.Items) != 2 {
		t.Fatalf("len(items) = %d, want 2 frozen lines", len(trx.Items))
	}

	// the source cart is drained for every item present at checkout time
	items, _, err := cartSvc.Get(7)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("cart after checkout = %+v, want empty", items)
	}

	var count int64
	db.Model(&entity.Transaction{}).Count(&count)
	if count != 1 {
		t.Errorf("transactions = %d, want exactly 1", count)
	}
}

func TestCheckoutInvalidPromoLeavesCartIntact(t *testing.T) {
	cartSvc, checkout, db := newCheckoutFixture(t)
	m := seedMenuItem(t, db, "Mocha", "5.50")
	if err := cartSvc.Add(3, &AddToCartIn{MenuItemID: m.ID, Qty: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}

	_, err := checkout.Checkout(3, "WRONG")
	if !errors.Is(err, ErrInvalidPromoCode) {
		t.Fatalf("err = %v, want ErrInvalidPromoCode", err)
	}

	items, _, _ := cartSvc.Get(3)
	if len(items) != 1 {
		t.Errorf("cart = %+v, want untouched single line", items)
	}
	var count int64
	db.Model(&entity.Transaction{}).Count(&count)
	if count != 0 {
		t.Errorf("transactions = %d, want none", count)
	}
}

func TestCheckoutWithoutPromoCode(t *testing.T) {
	cartSvc, checkout, db := newCheckoutFixture(t)
	m := seedMenuItem(t, db, "Espresso", "3.00")
	if err := cartSvc.Add(2, &AddToCartIn{MenuItemID: m.ID, Qty: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}

	trx, err := checkout.Checkout(2, "")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if trx.Discount != 0 {
		t.Errorf("discount = %d, want 0", trx.Discount)
	}
	if want := decimal.RequireFromString("6.50"); !trx.Total.Equal(want) {
		t.Errorf("total = %s, want %s", trx.Total, want)
	}
}

func TestCheckoutItemsAreFrozenCopies(t *testing.T) {
	cartSvc, checkout, db := newCheckoutFixture(t)
	m := seedMenuItem(t, db, "Caffe Latte", "5.00")
	if err := cartSvc.Add(4, &AddToCartIn{MenuItemID: m.ID, Qty: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	trx, err := checkout.Checkout(4, "")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	// later menu edits must not leak into the recorded transaction
	db.Model(&entity.MenuItem{}).Where("id = ?", m.ID).Update("price", decimal.RequireFromString("9.99"))

	var reloaded entity.Transaction
	if err := db.Preload("Items").First(&reloaded, trx.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if want := decimal.RequireFromString("5.00"); !reloaded.Items[0].Price.Equal(want) {
		t.Errorf("frozen price = %s, want %s", reloaded.Items[0].Price, want)
	}
	if reloaded.Items[0].Quantity != 2 {
		t.Errorf("frozen quantity = %d, want 2", reloaded.Items[0].Quantity)
	}
}
