package submission

import (
	"strings"

	"github.com/Favorjs/e-rights-backend/docstore"
	"github.com/Favorjs/e-rights-backend/models/enum"
	"github.com/shopspring/decimal"
)

// Input carries one applicant's acceptance form exactly as submitted.
// Declared numeric fields arrive as strings (multipart form values) and are
// coerced during validation; empty or unparseable values become nil rather
// than errors.
type Input struct {
	ShareholderID    uint            `json:"shareholder_id"`
	ActionType       enum.ActionType `json:"action_type"`
	InstructionsRead bool            `json:"instructions_read"`

	StockbrokerID *uint  `json:"stockbroker_id"`
	CHN           string `json:"chn"`
	ContactName   string `json:"contact_name"`
	NextOfKin     string `json:"next_of_kin"`
	DaytimePhone  string `json:"daytime_phone"`
	MobilePhone   string `json:"mobile_phone"`
	Email         string `json:"email"`

	BankName      string `json:"bank_name"`
	BankBranch    string `json:"bank_branch"`
	AccountNumber string `json:"account_number"`
	BVN           string `json:"bvn"`

	CorporateName *string            `json:"corporate_name"`
	RCNumber      *string            `json:"rc_number"`
	SignatureType enum.SignatureType `json:"signature_type"`

	// full acceptance branch
	AcceptFull             bool   `json:"accept_full"`
	ApplyAdditional        bool   `json:"apply_additional"`
	AdditionalShares       string `json:"additional_shares_applied"`
	AdditionalAmount       string `json:"additional_amount"`
	AcceptSmallerAllotment bool   `json:"accept_smaller_allotment"`
	PaymentAmount          string `json:"payment_amount"`
	AdditionalBankName     string `json:"additional_bank_name"`
	AdditionalChequeNumber string `json:"additional_cheque_number"`
	AdditionalBankBranch   string `json:"additional_bank_branch"`

	// renunciation / partial acceptance branch
	SharesAccepted      string `json:"shares_accepted"`
	AcceptPartial       bool   `json:"accept_partial"`
	RenounceRights      bool   `json:"renounce_rights"`
	TradeRights         bool   `json:"trade_rights"`
	PartialBankName     string `json:"partial_bank_name"`
	PartialChequeNumber string `json:"partial_cheque_number"`
	PartialBankBranch   string `json:"partial_bank_branch"`

	Receipt    *docstore.File  `json:"-"`
	Signatures []docstore.File `json:"-"`
}

// coerced holds the Input's numeric fields after decimal coercion.
type coerced struct {
	AdditionalShares *decimal.Decimal
	AdditionalAmount *decimal.Decimal
	PaymentAmount    *decimal.Decimal
	SharesAccepted   *decimal.Decimal
}

func (in *Input) coerce() *coerced {
	return &coerced{
		AdditionalShares: toDecimal(in.AdditionalShares),
		AdditionalAmount: toDecimal(in.AdditionalAmount),
		PaymentAmount:    toDecimal(in.PaymentAmount),
		SharesAccepted:   toDecimal(in.SharesAccepted),
	}
}

// toDecimal parses a submitted numeric representation. Empty and invalid
// values coerce to nil, not errors; the requiredness checklist decides
// whether that matters.
func toDecimal(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(strings.Replace(raw, ",", "", -1))
	if raw == "" {
		return nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}

	return &d
}
