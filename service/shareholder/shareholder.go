package shareholder

import (
	"strings"

	"github.com/Favorjs/e-rights-backend/ererrors"
	"github.com/Favorjs/e-rights-backend/models"
	"github.com/jinzhu/gorm"
)

// MinSearchLength guards the fuzzy name search against single-character
// scans of the whole register.
const MinSearchLength = 2

type ShareholderService interface {
	GetByID(id uint) (*models.Shareholder, error)
	GetByRegNumber(regNumber string) (*models.Shareholder, error)
	Search(nameQuery string, page, limit int) ([]models.Shareholder, int, error)
	List(search string, page, limit int) ([]models.Shareholder, int, error)
	Count() (int, error)
	WithTx(tx *gorm.DB) ShareholderService
}

type shareholderService struct {
	ShareholderService
	tx *gorm.DB
}

func Service() ShareholderService {
	return &shareholderService{}
}

func (s *shareholderService) WithTx(tx *gorm.DB) ShareholderService {
	s.tx = tx
	return s
}

func (s *shareholderService) GetByID(id uint) (*models.Shareholder, error) {
	holder := &models.Shareholder{}

	q := s.tx.Where("id = ?", id).First(holder)

	if q.RecordNotFound() {
		return nil, ererrors.NotFound.WithMsg("shareholder not found")
	}

	if q.Error != nil {
		return nil, ererrors.InternalServerError.WithError(q.Error)
	}

	return holder, nil
}

func (s *shareholderService) GetByRegNumber(regNumber string) (*models.Shareholder, error) {
	holder := &models.Shareholder{}

	q := s.tx.Where("reg_account_number = ?", regNumber).First(holder)

	if q.RecordNotFound() {
		return nil, ererrors.NotFound.WithMsg("shareholder not found")
	}

	if q.Error != nil {
		return nil, ererrors.InternalServerError.WithError(q.Error)
	}

	return holder, nil
}

// Search matches every whitespace token of the query as a case-insensitive
// substring of the stored name, so "john doe" finds a register row named
// "Doe John". Ordering is deterministic (name, then id).
func (s *shareholderService) Search(nameQuery string, page, limit int) ([]models.Shareholder, int, error) {
	nameQuery = strings.TrimSpace(nameQuery)
	if len(nameQuery) < MinSearchLength {
		return nil, 0, ererrors.ValidationError.
			WithMsg("name must be at least 2 characters")
	}

	q := s.tx.Model(&models.Shareholder{})
	for _, token := range strings.Fields(nameQuery) {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+token+"%")
	}

	var total int
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, ererrors.InternalServerError.WithError(err)
	}

	holders := []models.Shareholder{}
	if err := q.
		Order("name ASC").Order("id ASC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&holders).Error; err != nil {
		return nil, 0, ererrors.InternalServerError.WithError(err)
	}

	return holders, total, nil
}

// List is the back-office register view: optional combined name /
// registration-number substring filter, ordered by name.
func (s *shareholderService) List(search string, page, limit int) ([]models.Shareholder, int, error) {
	q := s.tx.Model(&models.Shareholder{})

	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("LOWER(name) LIKE LOWER(?) OR reg_account_number LIKE ?", pattern, pattern)
	}

	var total int
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, ererrors.InternalServerError.WithError(err)
	}

	holders := []models.Shareholder{}
	if err := q.
		Order("name ASC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&holders).Error; err != nil {
		return nil, 0, ererrors.InternalServerError.WithError(err)
	}

	return holders, total, nil
}

func (s *shareholderService) Count() (int, error) {
	var total int
	if err := s.tx.Model(&models.Shareholder{}).Count(&total).Error; err != nil {
		return 0, ererrors.InternalServerError.WithError(err)
	}
	return total, nil
}
