package repository

import (
	"errors"

	"github.com/Thariq15/react-cafe/entity"
	"gorm.io/gorm"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) List() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("name").Find(&items).Error
	return items, err
}

func (r *MenuRepository) GetByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}
