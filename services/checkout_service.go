package services

import (
	"errors"
	"log/slog"
	"time"

	"github.com/Thariq15/react-cafe/entity"
	"github.com/Thariq15/react-cafe/pkg/logging"
	"github.com/Thariq15/react-cafe/repository"
	"gorm.io/gorm"
)

var ErrEmptyCart = errors.New("cart is empty")

// CheckoutService turns a cart into a durable transaction record and drains
// the cart, in one storage transaction: either both happen or neither does,
// so a retried checkout can never double-charge items that were already sold.
type CheckoutService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	TxRepo   *repository.TransactionRepository
	Notifier CartNotifier

	log *slog.Logger
}

func NewCheckoutService(db *gorm.DB, cr *repository.CartRepository, tr *repository.TransactionRepository) *CheckoutService {
	return &CheckoutService{DB: db, CartRepo: cr, TxRepo: tr, log: logging.New("checkout")}
}

// Checkout snapshots the cart, prices it, and records the transaction with
// status Pending. promoCode may be empty (no discount); an unknown code
// rejects the whole checkout before anything is written.
func (s *CheckoutService) Checkout(userID uint, promoCode string) (*entity.Transaction, error) {
	items, err := s.CartRepo.ListItems(userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	discount := 0
	if promoCode != "" {
		pct, err := EvaluatePromo(promoCode)
		if err != nil {
			return nil, err
		}
		discount = pct
	}

	totals := ComputeTotals(items, discount)

	trx := &entity.Transaction{
		UserID:      userID,
		Subtotal:    totals.Subtotal,
		Discount:    discount,
		DeliveryFee: totals.DeliveryFee,
		Total:       totals.Total,
		Date:        time.Now().UTC(),
		Status:      entity.StatusPending,
		Items:       freezeItems(items),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.TxRepo.Create(tx, trx); err != nil {
			return err
		}
		return s.CartRepo.Clear(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("checkout", "userId", userID, "transactionId", trx.ID, "total", trx.Total, "discount", discount)
	s.notify(userID)
	return trx, nil
}

// freezeItems copies the cart lines so the transaction keeps its own record,
// fully decoupled from the live cart and menu.
func freezeItems(items []entity.CartItem) []entity.TransactionItem {
	out := make([]entity.TransactionItem, 0, len(items))
	for _, it := range items {
		out = append(out, entity.TransactionItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Price:      it.Price,
			Image:      it.Image,
			Quantity:   it.Quantity,
		})
	}
	return out
}

func (s *CheckoutService) notify(userID uint) {
	if s.Notifier != nil {
		s.Notifier.CartChanged(userID)
	}
}
