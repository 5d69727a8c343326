package services

import (
	"errors"
	"log/slog"

	"github.com/Thariq15/react-cafe/entity"
	"github.com/Thariq15/react-cafe/pkg/logging"
	"github.com/Thariq15/react-cafe/repository"
)

var ErrInvalidStatus = errors.New("invalid status")

// Statuses an admin may set. Pending is only ever written by checkout.
var adminStatuses = map[string]bool{
	entity.StatusInProgress: true,
	entity.StatusCompleted:  true,
}

type TransactionService struct {
	Repo *repository.TransactionRepository

	log *slog.Logger
}

func NewTransactionService(repo *repository.TransactionRepository) *TransactionService {
	return &TransactionService{Repo: repo, log: logging.New("transaction")}
}

func (s *TransactionService) ListAll() ([]entity.Transaction, error) {
	return s.Repo.ListAll()
}

func (s *TransactionService) ListForUser(userID uint) ([]entity.Transaction, error) {
	return s.Repo.ListByUser(userID)
}

func (s *TransactionService) Get(id uint) (*entity.Transaction, error) {
	return s.Repo.GetByID(id)
}

// SetStatus moves a transaction between the admin-settable statuses. No
// ordering is enforced between In Progress and Completed; concurrent admin
// writes resolve last-write-wins.
func (s *TransactionService) SetStatus(id uint, status string) error {
	if !adminStatuses[status] {
		return ErrInvalidStatus
	}
	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return err
	}
	s.log.Info("status updated", "transactionId", id, "status", status)
	return nil
}
