package repository

import (
	"errors"

	"github.com/Thariq15/react-cafe/entity"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type TransactionRepository struct{ DB *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

func (r *TransactionRepository) Create(tx *gorm.DB, t *entity.Transaction) error {
	return tx.Create(t).Error
}

func (r *TransactionRepository) ListAll() ([]entity.Transaction, error) {
	var txs []entity.Transaction
	err := r.DB.Preload("Items").Order("date DESC").Find(&txs).Error
	return txs, err
}

// ListByUser scopes by uid in the query itself, not in the caller.
func (r *TransactionRepository) ListByUser(userID uint) ([]entity.Transaction, error) {
	var txs []entity.Transaction
	err := r.DB.Preload("Items").Where("user_id = ?", userID).Order("date DESC").Find(&txs).Error
	return txs, err
}

func (r *TransactionRepository) GetByID(id uint) (*entity.Transaction, error) {
	var t entity.Transaction
	err := r.DB.Preload("Items").First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateStatus touches only the status column. Zero rows affected means the
// transaction does not exist, which callers report separately from a store
// failure.
func (r *TransactionRepository) UpdateStatus(id uint, status string) error {
	res := r.DB.Model(&entity.Transaction{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
