package shareholder

import (
	"testing"

	"github.com/Favorjs/e-rights-backend/dbtest"
	"github.com/Favorjs/e-rights-backend/models"
	"github.com/Favorjs/e-rights-backend/utils/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ShareholderTestSuite struct {
	dbtest.Suite
	doeJohn *models.Shareholder
}

func TestShareholderTestSuite(t *testing.T) {
	suite.Run(t, new(ShareholderTestSuite))
}

func (s *ShareholderTestSuite) SetupSuite() {
	s.SetupDB()

	holders := []*models.Shareholder{
		{
			RegAccountNumber: "TIP0001",
			Name:             "Doe John",
			Holdings:         decimal.NewFromFloat(1000),
			RightsIssue:      decimal.NewFromFloat(76),
			HoldingsAfter:    decimal.NewFromFloat(1076),
			AmountDue:        decimal.NewFromFloat(532),
		},
		{
			RegAccountNumber: "TIP0002",
			Name:             "Adewale Musa",
			Holdings:         decimal.NewFromFloat(500),
			RightsIssue:      decimal.NewFromFloat(38),
			HoldingsAfter:    decimal.NewFromFloat(538),
			AmountDue:        decimal.NewFromFloat(266),
		},
		{
			RegAccountNumber: "TIP0003",
			Name:             "Adewale Musa",
			Holdings:         decimal.NewFromFloat(200),
			RightsIssue:      decimal.NewFromFloat(15),
			HoldingsAfter:    decimal.NewFromFloat(215),
			AmountDue:        decimal.NewFromFloat(105),
		},
	}

	for _, h := range holders {
		if err := db.DB().Create(h).Error; err != nil {
			assert.FailNow(s.T(), err.Error())
		}
	}

	s.doeJohn = holders[0]
}

func (s *ShareholderTestSuite) TearDownSuite() {
	s.TeardownDB()
}

func (s *ShareholderTestSuite) TestSearchTokenOrderInsensitive() {
	srv := Service().WithTx(db.DB())

	holders, total, err := srv.Search("john doe", 1, 10)
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), 1, total)
	if assert.Len(s.T(), holders, 1) {
		assert.Equal(s.T(), s.doeJohn.ID, holders[0].ID)
	}
}

func (s *ShareholderTestSuite) TestSearchTooShort() {
	srv := Service().WithTx(db.DB())

	holders, _, err := srv.Search("a", 1, 10)
	assert.NotNil(s.T(), err)
	assert.Nil(s.T(), holders)
}

func (s *ShareholderTestSuite) TestSearchOrderingDeterministic() {
	srv := Service().WithTx(db.DB())

	first, _, err := srv.Search("adewale", 1, 10)
	assert.Nil(s.T(), err)

	second, _, err := srv.Search("adewale", 1, 10)
	assert.Nil(s.T(), err)

	if assert.Len(s.T(), first, 2) && assert.Len(s.T(), second, 2) {
		// identical name rows tie-break on id
		assert.True(s.T(), first[0].ID < first[1].ID)
		assert.Equal(s.T(), first[0].ID, second[0].ID)
		assert.Equal(s.T(), first[1].ID, second[1].ID)
	}
}

func (s *ShareholderTestSuite) TestGetByRegNumber() {
	srv := Service().WithTx(db.DB())

	holder, err := srv.GetByRegNumber("TIP0001")
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "Doe John", holder.Name)

	holder, err = srv.GetByRegNumber("NOPE")
	assert.NotNil(s.T(), err)
	assert.Nil(s.T(), holder)
}

func (s *ShareholderTestSuite) TestListFiltersByRegNumber() {
	srv := Service().WithTx(db.DB())

	holders, total, err := srv.List("TIP0002", 1, 10)
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), 1, total)
	if assert.Len(s.T(), holders, 1) {
		assert.Equal(s.T(), "TIP0002", holders[0].RegAccountNumber)
	}
}
