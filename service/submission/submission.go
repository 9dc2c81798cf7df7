package submission

import (
	"fmt"
	"sync"
	"time"

	"github.com/Favorjs/e-rights-backend/docstore"
	"github.com/Favorjs/e-rights-backend/ererrors"
	"github.com/Favorjs/e-rights-backend/external/mailgun"
	"github.com/Favorjs/e-rights-backend/mailer"
	"github.com/Favorjs/e-rights-backend/models"
	"github.com/Favorjs/e-rights-backend/models/enum"
	"github.com/Favorjs/e-rights-backend/renderer"
	"github.com/Favorjs/e-rights-backend/utils/db"
	"github.com/Favorjs/e-rights-backend/utils/log"
	"github.com/gofrs/uuid"
	"github.com/jinzhu/gorm"
	try "gopkg.in/matryer/try.v1"
)

const notifyAttempts = 3

type SubmissionService interface {
	Preview(in *Input) (*models.RightsSubmission, []byte, error)
	Submit(in *Input) (*models.RightsSubmission, error)
	GetByID(id string) (*models.RightsSubmission, error)
	GetByShareholder(shareholderID uint) (*models.RightsSubmission, error)
	Notify(sub *models.RightsSubmission)
	WithTx(tx *gorm.DB) SubmissionService
}

type submissionService struct {
	SubmissionService
	tx *gorm.DB

	uploadFunc   func(data []byte, fileName, folder string) (string, error)
	batchFunc    func(files []docstore.File, folder string) ([]string, error)
	downloadFunc func(artifactID string) ([]byte, error)
	renderFunc   func(sub *models.RightsSubmission) ([]byte, error)

	adminMailFunc  func(sub *models.RightsSubmission) error
	holderMailFunc func(sub *models.RightsSubmission, attachment *mailgun.Attachment) error
	sleepFunc      func(d time.Duration)
}

var (
	storeOnce sync.Once
	store     *docstore.Store
	rendOnce  sync.Once
	rend      *renderer.Renderer
)

func getStore() *docstore.Store {
	storeOnce.Do(func() { store = docstore.New() })
	return store
}

func getRenderer() *renderer.Renderer {
	rendOnce.Do(func() { rend = renderer.New() })
	return rend
}

func Service() SubmissionService {
	s := &submissionService{sleepFunc: time.Sleep}
	s.uploadFunc = func(data []byte, fileName, folder string) (string, error) {
		return getStore().Upload(data, fileName, folder)
	}
	s.batchFunc = func(files []docstore.File, folder string) ([]string, error) {
		return getStore().UploadBatch(files, folder)
	}
	s.downloadFunc = func(artifactID string) ([]byte, error) {
		return getStore().Download(artifactID)
	}
	s.renderFunc = func(sub *models.RightsSubmission) ([]byte, error) {
		return getRenderer().Render(sub)
	}
	s.adminMailFunc = mailer.SendAdminSubmissionAlert
	s.holderMailFunc = mailer.SendShareholderConfirmation
	return s
}

func (s *submissionService) WithTx(tx *gorm.DB) SubmissionService {
	s.tx = tx
	return s
}

// Preview validates a submission and renders the acceptance form without
// writing anything. The returned record carries the derived figures the
// real submission would store.
func (s *submissionService) Preview(in *Input) (*models.RightsSubmission, []byte, error) {
	sub, err := s.prepare(in, false)
	if err != nil {
		return nil, nil, err
	}

	pdf, err := s.renderFunc(sub)
	if err != nil {
		return nil, nil, ererrors.RenderFailed.WithError(err)
	}

	return sub, pdf, nil
}

// Submit runs the full intake workflow: checklist validation, financial
// derivation, artifact storage, form rendering and the insert. The unique
// index on shareholder_id is the authoritative duplicate check; the early
// lookup only avoids pointless uploads.
func (s *submissionService) Submit(in *Input) (*models.RightsSubmission, error) {
	sub, err := s.prepare(in, true)
	if err != nil {
		return nil, err
	}

	existing := &models.RightsSubmission{}
	q := s.tx.Where("shareholder_id = ?", sub.ShareholderID).First(existing)
	if q.Error == nil {
		return nil, ererrors.DuplicateSubmission
	}
	if !q.RecordNotFound() {
		return nil, ererrors.PersistenceError.WithError(q.Error)
	}

	sigKeys, err := s.batchFunc(in.Signatures, docstore.Signatures)
	if err != nil {
		return nil, err
	}
	sub.SignatureFiles = sigKeys

	if in.Receipt != nil {
		key, err := s.uploadFunc(in.Receipt.Data, in.Receipt.Name, docstore.Receipts)
		if err != nil {
			return nil, err
		}
		sub.ReceiptFile = key
	}

	pdf, err := s.renderFunc(sub)
	if err != nil {
		return nil, ererrors.RenderFailed.WithError(err)
	}

	formName := fmt.Sprintf("%s_rights_form.pdf", sub.RegAccountNumber)
	formKey, err := s.uploadFunc(pdf, formName, docstore.FilledForms)
	if err != nil {
		return nil, err
	}
	sub.FilledFormFile = formKey

	if err := s.tx.Create(sub).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ererrors.DuplicateSubmission
		}
		return nil, ererrors.PersistenceError.WithError(err)
	}

	return sub, nil
}

// prepare fetches the shareholder, runs the checklist and builds the
// unsaved submission record with its derived figures.
func (s *submissionService) prepare(in *Input, withArtifacts bool) (*models.RightsSubmission, error) {
	if in.ShareholderID == 0 {
		return nil, ererrors.InvalidRequestParam.WithMsg("shareholder_id is required")
	}

	holder := &models.Shareholder{}
	q := s.tx.Where("id = ?", in.ShareholderID).First(holder)
	if q.RecordNotFound() {
		return nil, ererrors.NotFound.WithMsg("shareholder not found")
	}
	if q.Error != nil {
		return nil, ererrors.InternalServerError.WithError(q.Error)
	}

	c := in.coerce()

	if err := validate(in, c, holder.RightsIssue, withArtifacts); err != nil {
		return nil, err
	}

	sub := s.build(in, c, holder)

	if sub.StockbrokerID != nil {
		broker := &models.Stockbroker{}
		q := s.tx.Where("id = ?", *sub.StockbrokerID).First(broker)
		if q.RecordNotFound() {
			return nil, ererrors.InvalidRequestParam.WithMsg("stockbroker not found")
		}
		if q.Error != nil {
			return nil, ererrors.InternalServerError.WithError(q.Error)
		}
		sub.StockbrokerName = broker.Name
	}

	return sub, nil
}

func (s *submissionService) build(in *Input, c *coerced, holder *models.Shareholder) *models.RightsSubmission {
	d := derive(in, c, holder)

	return &models.RightsSubmission{
		ShareholderID: holder.ID,

		RegAccountNumber: holder.RegAccountNumber,
		ShareholderName:  holder.Name,
		Holdings:         holder.Holdings,
		HoldingsAfter:    holder.HoldingsAfter,
		RightsIssue:      holder.RightsIssue,
		AmountDue:        holder.AmountDue,

		ActionType:       in.ActionType,
		InstructionsRead: in.InstructionsRead,
		StockbrokerID:    in.StockbrokerID,
		CHN:              in.CHN,
		ContactName:      in.ContactName,
		NextOfKin:        in.NextOfKin,
		DaytimePhone:     in.DaytimePhone,
		MobilePhone:      in.MobilePhone,
		Email:            in.Email,
		BankName:         in.BankName,
		BankBranch:       in.BankBranch,
		AccountNumber:    in.AccountNumber,
		BVN:              in.BVN,
		CorporateName:    in.CorporateName,
		RCNumber:         in.RCNumber,
		SignatureType:    in.SignatureType,

		AcceptFull:             in.AcceptFull,
		ApplyAdditional:        in.ApplyAdditional,
		AdditionalShares:       c.AdditionalShares,
		AdditionalAmount:       c.AdditionalAmount,
		AcceptSmallerAllotment: in.AcceptSmallerAllotment,
		PaymentAmount:          c.PaymentAmount,
		AdditionalBankName:     in.AdditionalBankName,
		AdditionalChequeNumber: in.AdditionalChequeNumber,
		AdditionalBankBranch:   in.AdditionalBankBranch,

		AcceptPartial:       in.AcceptPartial,
		RenounceRights:      in.RenounceRights,
		TradeRights:         in.TradeRights,
		PartialBankName:     in.PartialBankName,
		PartialChequeNumber: in.PartialChequeNumber,
		PartialBankBranch:   in.PartialBankBranch,

		SharesAccepted:  d.SharesAccepted,
		SharesRenounced: d.SharesRenounced,
		AmountPayable:   d.AmountPayable,

		Status: enum.SubmissionPending,
	}
}

func (s *submissionService) GetByID(id string) (*models.RightsSubmission, error) {
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

func (s *submissionService) GetByShareholder(shareholderID uint) (*models.RightsSubmission, error) {
	sub := &models.RightsSubmission{}

	q := s.tx.Where("shareholder_id = ?", shareholderID).First(sub)
	if q.RecordNotFound() {
		return nil, ererrors.NotFound.WithMsg("no submission for shareholder")
	}
	if q.Error != nil {
		return nil, ererrors.InternalServerError.WithError(q.Error)
	}

	return sub, nil
}

// Notify sends the post-submission emails. It runs after the insert has
// committed, never touches the transaction, and never fails the request:
// every error is logged and swallowed.
func (s *submissionService) Notify(sub *models.RightsSubmission) {
	var attachment *mailgun.Attachment

	if sub.FilledFormFile != "" {
		data, err := s.downloadFunc(sub.FilledFormFile)
		if err != nil {
			log.Warn(
				"notification attachment unavailable",
				"submission", sub.ID,
				"artifact", sub.FilledFormFile,
				"error", err)
		} else {
			attachment = &mailgun.Attachment{
				Name: fmt.Sprintf("Rights_Issue_Form_%s.pdf", sub.RegAccountNumber),
				Data: data,
			}
		}
	}

	if err := try.Do(func(attempt int) (bool, error) {
		err := s.adminMailFunc(sub)
		if err != nil && attempt < notifyAttempts {
			s.sleepFunc(time.Duration(attempt) * time.Second)
		}
		return attempt < notifyAttempts, err
	}); err != nil {
		log.Error(
			"admin notification failed",
			"submission", sub.ID,
			"error", err)
	}

	if err := try.Do(func(attempt int) (bool, error) {
		err := s.holderMailFunc(sub, attachment)
		if err != nil && attempt < notifyAttempts {
			s.sleepFunc(time.Duration(attempt) * time.Second)
		}
		return attempt < notifyAttempts, err
	}); err != nil {
		log.Error(
			"shareholder confirmation failed",
			"submission", sub.ID,
			"error", err)
	}
}
