package repository

import (
	"errors"

	"github.com/Thariq15/react-cafe/entity"
	"gorm.io/gorm"
)

var ErrCartItemNotFound = errors.New("cart item not found")

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ListItems is the authoritative cart snapshot for a user. An empty cart is
// just zero rows, not an error.
func (r *CartRepository) ListItems(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&items).Error
	return items, err
}

// IncrementItem adds qty to an existing line with a storage-side increment,
// so concurrent adds from two sessions both land. First add inserts a row
// carrying a snapshot of the menu fields.
func (r *CartRepository) IncrementItem(tx *gorm.DB, userID uint, m *entity.MenuItem, qty int) error {
	res := tx.Model(&entity.CartItem{}).
		Where("user_id = ? AND menu_item_id = ?", userID, m.ID).
		Update("quantity", gorm.Expr("quantity + ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	row := entity.CartItem{
		UserID:     userID,
		MenuItemID: m.ID,
		Name:       m.Name,
		Price:      m.Price,
		Image:      m.Image,
		Quantity:   qty,
	}
	return tx.Create(&row).Error
}

// AdjustQuantity applies a relative delta as a guarded atomic increment.
// A delta that would take the quantity to zero or below deletes the row:
// quantities are never stored at zero.
func (r *CartRepository) AdjustQuantity(tx *gorm.DB, userID, itemID uint, delta int) error {
	res := tx.Model(&entity.CartItem{}).
		Where("id = ? AND user_id = ? AND quantity + ? > 0", itemID, userID, delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// either the item does not exist, or the delta drains it; hard delete so
	// the (user, menu item) unique index is free for a future re-add
	del := tx.Unscoped().Where("id = ? AND user_id = ?", itemID, userID).Delete(&entity.CartItem{})
	if del.Error != nil {
		return del.Error
	}
	if del.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) error {
	res := tx.Unscoped().Where("id = ? AND user_id = ?", itemID, userID).Delete(&entity.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	return tx.Unscoped().Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
