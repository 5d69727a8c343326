package services

import (
	"errors"
	"strings"

	"github.com/Thariq15/react-cafe/entity"
	"github.com/Thariq15/react-cafe/repository"
	"github.com/shopspring/decimal"
)

var ErrMenuFieldsRequired = errors.New("all menu fields are required")

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type AddMenuItemIn struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Volume      string          `json:"volume" binding:"required"`
	Image       string          `json:"image" binding:"required"`
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.List()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.Repo.GetByID(id)
}

// Create validates before touching the store: every field must be present and
// the price positive.
func (s *MenuService) Create(in *AddMenuItemIn) (*entity.MenuItem, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.Volume) == "" || strings.TrimSpace(in.Image) == "" {
		return nil, ErrMenuFieldsRequired
	}
	if !in.Price.IsPositive() {
		return nil, ErrMenuFieldsRequired
	}

	m := &entity.MenuItem{
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Description: strings.TrimSpace(in.Description),
		Volume:      strings.TrimSpace(in.Volume),
		Image:       strings.TrimSpace(in.Image),
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}
