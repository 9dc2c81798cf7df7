package reporting

import (
	"fmt"
	"strings"

	"github.com/Favorjs/e-rights-backend/ererrors"
	"github.com/Favorjs/e-rights-backend/models"
	"github.com/Favorjs/e-rights-backend/models/enum"
	"github.com/gofrs/uuid"
	"github.com/jinzhu/gorm"
)

// ListParams filters and orders the admin submission listing. Sort fields
// outside the allow-list silently fall back to the default rather than
// reaching the query builder.
type ListParams struct {
	Search    string
	Status    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

var allowedSortFields = map[string]string{
	"created_at":         "created_at",
	"name":               "shareholder_name",
	"reg_account_number": "reg_account_number",
	"status":             "status",
	"amount_payable":     "amount_payable",
}

// DashboardStats aggregates submission progress across the whole register.
type DashboardStats struct {
	TotalShareholders int    `json:"total_shareholders"`
	TotalForms        int    `json:"total_forms"`
	CompletedForms    int    `json:"completed_forms"`
	PendingForms      int    `json:"pending_forms"`
	RejectedForms     int    `json:"rejected_forms"`
	CompletionRate    string `json:"completion_rate"`
}

type ReportingService interface {
	Dashboard() (*DashboardStats, error)
	List(params ListParams) ([]models.RightsSubmission, int, error)
	Get(id string) (*models.RightsSubmission, error)
	UpdateStatus(id string, status enum.SubmissionStatus) (*models.RightsSubmission, error)
	Export() ([]models.RightsSubmission, error)
	WithTx(tx *gorm.DB) ReportingService
}

type reportingService struct {
	ReportingService
	tx *gorm.DB
}

func Service() ReportingService {
	return &reportingService{}
}

func (s *reportingService) WithTx(tx *gorm.DB) ReportingService {
	s.tx = tx
	return s
}

func (s *reportingService) Dashboard() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.tx.Model(&models.Shareholder{}).Count(&stats.TotalShareholders).Error; err != nil {
		return nil, ererrors.InternalServerError.WithError(err)
	}

	counts := []struct {
		Status enum.SubmissionStatus
		N      int
	}{}

	err := s.tx.
		Model(&models.RightsSubmission{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, ererrors.InternalServerError.WithError(err)
	}

	for _, c := range counts {
		stats.TotalForms += c.N
		switch c.Status {
		case enum.SubmissionCompleted:
			stats.CompletedForms = c.N
		case enum.SubmissionPending:
			stats.PendingForms = c.N
		case enum.SubmissionRejected:
			stats.RejectedForms = c.N
		}
	}

	stats.CompletionRate = completionRate(stats.CompletedForms, stats.TotalShareholders)

	return stats, nil
}

// completionRate formats completed submissions over the full register as a
// one-decimal percentage. An empty register reports "0.0%", not an error.
func completionRate(completed, totalShareholders int) string {
	if totalShareholders == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(completed)/float64(totalShareholders)*100)
}

func (s *reportingService) List(params ListParams) ([]models.RightsSubmission, int, error) {
	q := s.tx.Model(&models.RightsSubmission{})

	if search := strings.TrimSpace(params.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(shareholder_name) LIKE ? OR LOWER(reg_account_number) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern)
	}

	if params.Status != "" {
		status := enum.SubmissionStatus(params.Status)
		if !status.Valid() {
			return nil, 0, ererrors.InvalidRequestParam.WithMsg(
				"status must be pending, completed or rejected")
		}
		q = q.Where("status = ?", status)
	}

	count := 0
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, ererrors.InternalServerError.WithError(err)
	}

	column, ok := allowedSortFields[params.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(params.SortOrder, "ASC") {
		direction = "ASC"
	}

	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	subs := []models.RightsSubmission{}

	err := q.
		Order(fmt.Sprintf("%s %s", column, direction)).
		Order("id ASC").
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&subs).Error
	if err != nil {
		return nil, 0, ererrors.InternalServerError.WithError(err)
	}

	return subs, count, nil
}

func (s *reportingService) Get(id string) (*models.RightsSubmission, error) {
	if _, err := uuid.FromString(id); err != nil {
		return nil, ererrors.InvalidRequestParam.WithMsg("invalid submission id")
	}

	sub := &models.RightsSubmission{}

	q := s.tx.Where("id = ?", id).First(sub)
	if q.RecordNotFound() {
		return nil, ererrors.NotFound.WithMsg("submission not found")
	}
	if q.Error != nil {
		return nil, ererrors.InternalServerError.WithError(q.Error)
	}

	return sub, nil
}

// UpdateStatus transitions a submission to an allow-listed status. A value
// outside the allow-list rejects the request and leaves the row untouched.
func (s *reportingService) UpdateStatus(id string, status enum.SubmissionStatus) (*models.RightsSubmission, error) {
	if !status.Valid() {
		return nil, ererrors.ValidationError.WithMsg(
			"invalid status, must be pending, completed or rejected")
	}

	sub, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.tx.Model(sub).Update("status", status).Error; err != nil {
		return nil, ererrors.PersistenceError.WithError(err)
	}

	return sub, nil
}

func (s *reportingService) Export() ([]models.RightsSubmission, error) {
	subs := []models.RightsSubmission{}

	err := s.tx.
		Order("created_at DESC").
		Order("id ASC").
		Find(&subs).Error
	if err != nil {
		return nil, ererrors.InternalServerError.WithError(err)
	}

	return subs, nil
}
