package submission

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/Favorjs/e-rights-backend/dbtest"
	"github.com/Favorjs/e-rights-backend/docstore"
	"github.com/Favorjs/e-rights-backend/ererrors"
	"github.com/Favorjs/e-rights-backend/external/mailgun"
	"github.com/Favorjs/e-rights-backend/models"
	"github.com/Favorjs/e-rights-backend/models/enum"
	"github.com/Favorjs/e-rights-backend/utils/db"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SubmissionTestSuite struct {
	dbtest.Suite
	seq int
}

func TestSubmissionTestSuite(t *testing.T) {
	suite.Run(t, new(SubmissionTestSuite))
}

func (s *SubmissionTestSuite) SetupSuite() {
	os.Setenv("RIGHTS_PRICE_PER_SHARE", "7.00")
	s.SetupDB()
}

func (s *SubmissionTestSuite) TearDownSuite() {
	s.TeardownDB()
}

func (s *SubmissionTestSuite) createHolder() *models.Shareholder {
	s.seq++
	holder := &models.Shareholder{
		RegAccountNumber: fmt.Sprintf("TIP%04d", s.seq),
		Name:             fmt.Sprintf("Holder %d", s.seq),
		Holdings:         decimal.NewFromFloat(1000),
		RightsIssue:      decimal.NewFromFloat(76),
		HoldingsAfter:    decimal.NewFromFloat(1076),
		AmountDue:        decimal.NewFromFloat(532),
	}
	require.NoError(s.T(), db.DB().Create(holder).Error)
	return holder
}

// testService wires the workflow against in-memory stand-ins for the
// object store, the renderer and the mail provider.
func testService(tx *gorm.DB) *submissionService {
	svc := &submissionService{tx: tx, sleepFunc: func(time.Duration) {}}
	svc.uploadFunc = func(data []byte, fileName, folder string) (string, error) {
		return folder + "/" + fileName, nil
	}
	svc.batchFunc = func(files []docstore.File, folder string) ([]string, error) {
		keys := make([]string, len(files))
		for i, f := range files {
			keys[i] = folder + "/" + f.Name
		}
		return keys, nil
	}
	svc.downloadFunc = func(artifactID string) ([]byte, error) {
		return []byte("%PDF-1.7"), nil
	}
	svc.renderFunc = func(sub *models.RightsSubmission) ([]byte, error) {
		return []byte("%PDF-1.7"), nil
	}
	svc.adminMailFunc = func(sub *models.RightsSubmission) error { return nil }
	svc.holderMailFunc = func(sub *models.RightsSubmission, attachment *mailgun.Attachment) error { return nil }
	return svc
}

func fullAcceptanceInput(holderID uint) *Input {
	return &Input{
		ShareholderID: holderID,
		ActionType:    enum.FullAcceptance,
		AcceptFull:    true,
		ContactName:   "John Doe",
		NextOfKin:     "Jane Doe",
		MobilePhone:   "08030000000",
		Email:         "john@example.com",
		BankName:      "First Bank",
		AccountNumber: "0123456789",
		Receipt:       &docstore.File{Name: "receipt.jpg", Data: []byte("jpg")},
		Signatures:    []docstore.File{{Name: "sig.png", Data: []byte("png")}},
	}
}

func (s *SubmissionTestSuite) TestSubmitFullAcceptance() {
	holder := s.createHolder()
	srv := testService(db.DB())

	sub, err := srv.Submit(fullAcceptanceInput(holder.ID))
	require.NoError(s.T(), err)

	assert.Equal(s.T(), enum.SubmissionPending, sub.Status)
	assert.Equal(s.T(), "532.00", sub.AmountPayable.StringFixed(2))
	assert.True(s.T(), sub.SharesAccepted.Equal(decimal.NewFromFloat(76)))
	assert.True(s.T(), sub.SharesRenounced.IsZero())
	assert.NotEmpty(s.T(), sub.FilledFormFile)
	assert.NotEmpty(s.T(), sub.ReceiptFile)
	assert.Len(s.T(), sub.SignatureFiles, 1)
	assert.Equal(s.T(), holder.RegAccountNumber, sub.RegAccountNumber)
}

func (s *SubmissionTestSuite) TestSubmitDuplicateRejected() {
	holder := s.createHolder()
	srv := testService(db.DB())

	_, err := srv.Submit(fullAcceptanceInput(holder.ID))
	require.NoError(s.T(), err)

	_, err = srv.Submit(fullAcceptanceInput(holder.ID))
	require.Error(s.T(), err)
	assert.True(s.T(), ererrors.IsDuplicateSubmission(err))
}

func (s *SubmissionTestSuite) TestSubmitRoundTrip() {
	holder := s.createHolder()
	srv := testService(db.DB())

	in := fullAcceptanceInput(holder.ID)
	in.ActionType = enum.RenunciationPartial
	in.AcceptFull = false
	in.AcceptPartial = true
	in.SharesAccepted = "30"
	in.PartialBankName = "Union Bank"

	created, err := srv.Submit(in)
	require.NoError(s.T(), err)

	fetched, err := srv.GetByShareholder(holder.ID)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), created.ID, fetched.ID)
	assert.Equal(s.T(), enum.RenunciationPartial, fetched.ActionType)
	assert.Equal(s.T(), "Union Bank", fetched.PartialBankName)
	assert.True(s.T(), fetched.SharesAccepted.Add(fetched.SharesRenounced).Equal(holder.RightsIssue))
	assert.NotEmpty(s.T(), fetched.FilledFormFile)

	byID, err := srv.GetByID(created.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), created.ID, byID.ID)
}

func (s *SubmissionTestSuite) TestPreviewWritesNothing() {
	holder := s.createHolder()
	srv := testService(db.DB())

	before := 0
	require.NoError(s.T(), db.DB().Model(&models.RightsSubmission{}).Count(&before).Error)

	in := fullAcceptanceInput(holder.ID)
	in.Receipt = nil
	in.Signatures = nil

	sub, pdf, err := srv.Preview(in)
	require.NoError(s.T(), err)
	assert.NotEmpty(s.T(), pdf)
	assert.Equal(s.T(), "532.00", sub.AmountPayable.StringFixed(2))

	after := 0
	require.NoError(s.T(), db.DB().Model(&models.RightsSubmission{}).Count(&after).Error)
	assert.Equal(s.T(), before, after)
}

func (s *SubmissionTestSuite) TestSubmitUnknownShareholder() {
	srv := testService(db.DB())

	_, err := srv.Submit(fullAcceptanceInput(999999))
	require.Error(s.T(), err)
	assert.True(s.T(), ererrors.IsNotFound(err))
}

func (s *SubmissionTestSuite) TestNotifyRetriesAndSwallows() {
	holder := s.createHolder()
	srv := testService(db.DB())

	sub, err := srv.Submit(fullAcceptanceInput(holder.ID))
	require.NoError(s.T(), err)

	adminCalls := 0
	srv.adminMailFunc = func(sub *models.RightsSubmission) error {
		adminCalls++
		return fmt.Errorf("smtp down")
	}

	holderCalls := 0
	var gotAttachment *mailgun.Attachment
	srv.holderMailFunc = func(sub *models.RightsSubmission, attachment *mailgun.Attachment) error {
		holderCalls++
		gotAttachment = attachment
		return nil
	}

	// must not panic or propagate the admin failure
	srv.Notify(sub)

	assert.Equal(s.T(), notifyAttempts, adminCalls)
	assert.Equal(s.T(), 1, holderCalls)
	if assert.NotNil(s.T(), gotAttachment) {
		assert.Equal(s.T(),
			fmt.Sprintf("Rights_Issue_Form_%s.pdf", holder.RegAccountNumber),
			gotAttachment.Name)
	}
}
