package services

import (
	"errors"
	"log/slog"

	"github.com/Thariq15/react-cafe/entity"
	"github.com/Thariq15/react-cafe/pkg/logging"
	"github.com/Thariq15/react-cafe/repository"
	"gorm.io/gorm"
)

var ErrQuantityTooLow = errors.New("quantity must be at least 1")

// CartNotifier is told whenever a user's cart changes so live subscribers can
// be pushed a fresh snapshot. The websocket hub implements it.
type CartNotifier interface {
	CartChanged(userID uint)
}

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
	Notifier CartNotifier

	log *slog.Logger
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr, log: logging.New("cart")}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Qty        int  `json:"qty" binding:"required,min=1"`
}

// Get returns the current snapshot plus undiscounted totals for display.
func (s *CartService) Get(userID uint) ([]entity.CartItem, Totals, error) {
	items, err := s.CartRepo.ListItems(userID)
	if err != nil {
		return nil, Totals{}, err
	}
	return items, ComputeTotals(items, 0), nil
}

// Add inserts a new line or bumps an existing one by qty. The increment runs
// storage-side, so two devices adding the same item never lose an update.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Qty < 1 {
		return ErrQuantityTooLow
	}

	m, err := s.MenuRepo.GetByID(in.MenuItemID)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.IncrementItem(tx, userID, m, in.Qty)
	})
	if err != nil {
		return err
	}

	s.log.Info("cart add", "userId", userID, "menuItemId", m.ID, "qty", in.Qty)
	s.notify(userID)
	return nil
}

// AdjustQuantity applies a relative delta. Driving an item to zero or below
// removes it from the cart entirely; there is no floor at 1 here.
func (s *CartService) AdjustQuantity(userID, itemID uint, delta int) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.AdjustQuantity(tx, userID, itemID, delta)
	})
	if err != nil {
		return err
	}

	s.notify(userID)
	return nil
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
	if err != nil {
		return err
	}

	s.notify(userID)
	return nil
}

func (s *CartService) Clear(userID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, userID)
	})
	if err != nil {
		return err
	}

	s.notify(userID)
	return nil
}

func (s *CartService) notify(userID uint) {
	if s.Notifier != nil {
		s.Notifier.CartChanged(userID)
	}
}
