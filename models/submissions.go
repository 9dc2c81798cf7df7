package models

import (
	"time"

	"github.com/Favorjs/e-rights-backend/models/enum"
	"github.com/gofrs/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// RightsSubmission is a shareholder's acceptance/renunciation decision.
// One row per shareholder, enforced by the unique index on shareholder_id;
// a unique violation on insert is the authoritative duplicate signal.
type RightsSubmission struct {
	ID        string     `json:"id" gorm:"primary_key" sql:"type:uuid;"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`

	ShareholderID uint         `json:"shareholder_id" gorm:"not null;unique_index"`
	Shareholder   *Shareholder `json:"-" gorm:"ForeignKey:ShareholderID"`

	// register snapshot at submission time
	RegAccountNumber string          `json:"reg_account_number" gorm:"type:varchar(50);not null;index"`
	ShareholderName  string          `json:"shareholder_name" gorm:"type:varchar(255);not null;index"`
	Holdings         decimal.Decimal `json:"holdings" gorm:"type:decimal(15,2)"`
	HoldingsAfter    decimal.Decimal `json:"holdings_after" gorm:"type:decimal(15,2)"`
	RightsIssue      decimal.Decimal `json:"rights_issue" gorm:"type:decimal(15,2)"`
	AmountDue        decimal.Decimal `json:"amount_due" gorm:"type:decimal(15,2)"`

	// common form fields
	ActionType       enum.ActionType    `json:"action_type" gorm:"type:varchar(32);not null"`
	InstructionsRead bool               `json:"instructions_read"`
	StockbrokerID    *uint              `json:"stockbroker_id"`
	StockbrokerName  string             `json:"stockbroker_name" gorm:"type:varchar(255)"`
	CHN              string             `json:"chn" gorm:"column:chn;type:varchar(50)"`
	ContactName      string             `json:"contact_name" gorm:"type:varchar(255)"`
	NextOfKin        string             `json:"next_of_kin" gorm:"type:varchar(255)"`
	DaytimePhone     string             `json:"daytime_phone" gorm:"type:varchar(50)"`
	MobilePhone      string             `json:"mobile_phone" gorm:"type:varchar(50)"`
	Email            string             `json:"email" gorm:"type:varchar(255);index"`
	BankName         string             `json:"bank_name" gorm:"type:varchar(255)"`
	BankBranch       string             `json:"bank_branch" gorm:"type:varchar(255)"`
	AccountNumber    string             `json:"account_number" gorm:"type:varchar(50)"`
	BVN              string             `json:"bvn" gorm:"column:bvn;type:varchar(50)"`
	CorporateName    *string            `json:"corporate_name" gorm:"type:varchar(255)"`
	RCNumber         *string            `json:"rc_number" gorm:"column:rc_number;type:varchar(50)"`
	SignatureType    enum.SignatureType `json:"signature_type" gorm:"type:varchar(16);not null;default:'single'"`

	// full acceptance branch
	AcceptFull             bool             `json:"accept_full"`
	ApplyAdditional        bool             `json:"apply_additional"`
	AdditionalShares       *decimal.Decimal `json:"additional_shares_applied" gorm:"type:decimal(15,2)"`
	AdditionalAmount       *decimal.Decimal `json:"additional_amount" gorm:"type:decimal(15,2)"`
	AcceptSmallerAllotment bool             `json:"accept_smaller_allotment"`
	PaymentAmount          *decimal.Decimal `json:"payment_amount" gorm:"type:decimal(15,2)"`
	AdditionalBankName     string           `json:"additional_bank_name" gorm:"type:varchar(255)"`
	AdditionalChequeNumber string           `json:"additional_cheque_number" gorm:"type:varchar(50)"`
	AdditionalBankBranch   string           `json:"additional_bank_branch" gorm:"type:varchar(255)"`

	// renunciation / partial acceptance branch
	AcceptPartial       bool   `json:"accept_partial"`
	RenounceRights      bool   `json:"renounce_rights"`
	TradeRights         bool   `json:"trade_rights"`
	PartialBankName     string `json:"partial_bank_name" gorm:"type:varchar(255)"`
	PartialChequeNumber string `json:"partial_cheque_number" gorm:"type:varchar(50)"`
	PartialBankBranch   string `json:"partial_bank_branch" gorm:"type:varchar(255)"`

	// derived financials (meaning depends on the action branch)
	SharesAccepted  decimal.Decimal `json:"shares_accepted" gorm:"type:decimal(15,2)"`
	SharesRenounced decimal.Decimal `json:"shares_renounced" gorm:"type:decimal(15,2)"`
	AmountPayable   decimal.Decimal `json:"amount_payable" gorm:"type:decimal(15,2)"`

	// stored artifact references
	FilledFormFile string         `json:"filled_form_file" gorm:"type:text"`
	ReceiptFile    string         `json:"receipt_file" gorm:"type:text"`
	SignatureFiles pq.StringArray `json:"signature_files" gorm:"type:text[]"`

	Status enum.SubmissionStatus `json:"status" gorm:"type:varchar(16);not null;default:'pending'"`
}

func (s *RightsSubmission) BeforeCreate(scope *gorm.Scope) error {
	if s.ID == "" {
		s.ID = uuid.Must(uuid.NewV4()).String()
	}
	return scope.SetColumn("id", s.ID)
}

func (s *RightsSubmission) IDAsUUID() uuid.UUID {
	id, _ := uuid.FromString(s.ID)
	return id
}

// PureRenunciation reports whether the submission renounces the whole
// entitlement (no shares taken up, so no payment receipt is required).
func (s *RightsSubmission) PureRenunciation() bool {
	return s.ActionType == enum.RenunciationPartial && s.SharesAccepted.IsZero()
}
