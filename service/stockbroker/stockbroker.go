package stockbroker

import (
	"github.com/Favorjs/e-rights-backend/ererrors"
	"github.com/Favorjs/e-rights-backend/models"
	"github.com/jinzhu/gorm"
)

type StockbrokerService interface {
	List() ([]models.Stockbroker, error)
	GetByID(id uint) (*models.Stockbroker, error)
	WithTx(tx *gorm.DB) StockbrokerService
}

type stockbrokerService struct {
	StockbrokerService
	tx *gorm.DB
}

func Service() StockbrokerService {
	return &stockbrokerService{}
}

func (s *stockbrokerService) WithTx(tx *gorm.DB) StockbrokerService {
	s.tx = tx
	return s
}

func (s *stockbrokerService) List() ([]models.Stockbroker, error) {
	brokers := []models.Stockbroker{}

	if err := s.tx.Order("name ASC").Find(&brokers).Error; err != nil {
		return nil, ererrors.InternalServerError.WithError(err)
	}

	return brokers, nil
}

func (s *stockbrokerService) GetByID(id uint) (*models.Stockbroker, error) {
	broker := &models.Stockbroker{}

	q := s.tx.Where("id = ?", id).First(broker)

	if q.RecordNotFound() {
		return nil, ererrors.NotFound.WithMsg("stockbroker not found")
	}

	if q.Error != nil {
		return nil, ererrors.InternalServerError.WithError(q.Error)
	}

	return broker, nil
}
