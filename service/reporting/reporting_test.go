package reporting

import (
	"testing"

	"github.com/Favorjs/e-rights-backend/dbtest"
	"github.com/Favorjs/e-rights-backend/models"
	"github.com/Favorjs/e-rights-backend/models/enum"
	"github.com/Favorjs/e-rights-backend/utils/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ReportingTestSuite struct {
	dbtest.Suite
	pending   *models.RightsSubmission
	completed *models.RightsSubmission
}

func TestReportingTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingTestSuite))
}

func (s *ReportingTestSuite) SetupSuite() {
	s.SetupDB()

	holders := []*models.Shareholder{
		{RegAccountNumber: "TIP0001", Name: "Doe John", RightsIssue: decimal.NewFromFloat(76)},
		{RegAccountNumber: "TIP0002", Name: "Adewale Musa", RightsIssue: decimal.NewFromFloat(38)},
		{RegAccountNumber: "TIP0003", Name: "Ngozi Okafor", RightsIssue: decimal.NewFromFloat(15)},
	}
	for _, h := range holders {
		require.NoError(s.T(), db.DB().Create(h).Error)
	}

	s.pending = &models.RightsSubmission{
		ShareholderID:    holders[0].ID,
		RegAccountNumber: holders[0].RegAccountNumber,
		ShareholderName:  holders[0].Name,
		ActionType:       enum.FullAcceptance,
		Email:            "john@example.com",
		AmountPayable:    decimal.NewFromFloat(532),
		Status:           enum.SubmissionPending,
	}
	require.NoError(s.T(), db.DB().Create(s.pending).Error)

	s.completed = &models.RightsSubmission{
		ShareholderID:    holders[1].ID,
		RegAccountNumber: holders[1].RegAccountNumber,
		ShareholderName:  holders[1].Name,
		ActionType:       enum.RenunciationPartial,
		Email:            "musa@example.com",
		AmountPayable:    decimal.NewFromFloat(105),
		Status:           enum.SubmissionCompleted,
	}
	require.NoError(s.T(), db.DB().Create(s.completed).Error)
}

func (s *ReportingTestSuite) TearDownSuite() {
	s.TeardownDB()
}

func (s *ReportingTestSuite) TestDashboard() {
	stats, err := Service().WithTx(db.DB()).Dashboard()
	require.NoError(s.T(), err)

	assert.Equal(s.T(), 3, stats.TotalShareholders)
	assert.Equal(s.T(), 2, stats.TotalForms)
	assert.Equal(s.T(), 1, stats.CompletedForms)
	assert.Equal(s.T(), 1, stats.PendingForms)
	assert.Equal(s.T(), 0, stats.RejectedForms)
	assert.Equal(s.T(), "33.3%", stats.CompletionRate)
}

func (s *ReportingTestSuite) TestListFiltersByStatus() {
	subs, total, err := Service().WithTx(db.DB()).List(ListParams{Status: "completed"})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), 1, total)
	if assert.Len(s.T(), subs, 1) {
		assert.Equal(s.T(), s.completed.ID, subs[0].ID)
	}
}

func (s *ReportingTestSuite) TestListRejectsUnknownStatus() {
	_, _, err := Service().WithTx(db.DB()).List(ListParams{Status: "archived"})
	assert.NotNil(s.T(), err)
}

func (s *ReportingTestSuite) TestListSearchMatchesEmail() {
	subs, total, err := Service().WithTx(db.DB()).List(ListParams{Search: "musa@"})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), 1, total)
	if assert.Len(s.T(), subs, 1) {
		assert.Equal(s.T(), s.completed.ID, subs[0].ID)
	}
}

func (s *ReportingTestSuite) TestListSortAllowList() {
	srv := Service().WithTx(db.DB())

	subs, _, err := srv.List(ListParams{SortBy: "amount_payable", SortOrder: "ASC"})
	require.NoError(s.T(), err)
	if assert.Len(s.T(), subs, 2) {
		assert.True(s.T(), subs[0].AmountPayable.LessThan(subs[1].AmountPayable))
	}

	// unknown column falls back to the default ordering instead of erroring
	subs, _, err = srv.List(ListParams{SortBy: "length(bvn)"})
	require.NoError(s.T(), err)
	assert.Len(s.T(), subs, 2)
}

func (s *ReportingTestSuite) TestUpdateStatusRejectsUnknownValue() {
	srv := Service().WithTx(db.DB())

	_, err := srv.UpdateStatus(s.pending.ID, enum.SubmissionStatus("archived"))
	require.Error(s.T(), err)

	fetched, err := srv.Get(s.pending.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), enum.SubmissionPending, fetched.Status)
}

func (s *ReportingTestSuite) TestUpdateStatusUnknownID() {
	srv := Service().WithTx(db.DB())

	_, err := srv.UpdateStatus("00000000-0000-4000-8000-000000000000", enum.SubmissionCompleted)
	assert.NotNil(s.T(), err)
}

func (s *ReportingTestSuite) TestExportReturnsEveryRow() {
	subs, err := Service().WithTx(db.DB()).Export()
	require.NoError(s.T(), err)
	assert.Len(s.T(), subs, 2)
}
