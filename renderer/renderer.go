// Package renderer fills the fixed rights-issue acceptance PDF template
// from a submission and flattens the result. Rendering is a pure function
// of the submission plus the template; it never touches persisted state.
package renderer

import (
	"bytes"
	"encoding/json"
	"io/ioutil"

	"github.com/Favorjs/e-rights-backend/docstore"
	"github.com/Favorjs/e-rights-backend/ererrors"
	"github.com/Favorjs/e-rights-backend/models"
	"github.com/Favorjs/e-rights-backend/models/enum"
	"github.com/Favorjs/e-rights-backend/utils"
	"github.com/Favorjs/e-rights-backend/utils/env"
	humanize "github.com/dustin/go-humanize"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/shopspring/decimal"
)

type Renderer struct {
	templateFunc func() ([]byte, error)
}

// New builds a renderer that loads the template from local disk in
// development and from the object store otherwise.
func New() *Renderer {
	return &Renderer{
		templateFunc: func() ([]byte, error) {
			if utils.Dev() {
				return ioutil.ReadFile(env.GetVar("RIGHTS_TEMPLATE_PATH"))
			}
			return docstore.New().Download(
				docstore.Templates + "/" + env.GetVar("RIGHTS_TEMPLATE_KEY"))
		},
	}
}

// NewWithTemplate builds a renderer over a fixed template payload.
// Used by preview tests and the loader tool.
func NewWithTemplate(tpl []byte) *Renderer {
	return &Renderer{
		templateFunc: func() ([]byte, error) { return tpl, nil },
	}
}

// pdfcpu form JSON wire shapes (fill/export share the schema)
type formTextField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Locked bool   `json:"locked"`
}

type formGroup struct {
	TextFields []formTextField `json:"textfield,omitempty"`
}

type formPayload struct {
	Forms []formGroup `json:"forms"`
}

// Render produces the filled, flattened acceptance form for a submission.
func (r *Renderer) Render(sub *models.RightsSubmission) ([]byte, error) {
	tpl, err := r.templateFunc()
	if err != nil {
		return nil, ererrors.RenderFailed.
			WithMsg("acceptance form template could not be loaded").
			WithError(err)
	}

	names, err := templateFieldNames(tpl)
	if err != nil {
		return nil, ererrors.RenderFailed.WithError(err)
	}
	if len(names) == 0 {
		return nil, ererrors.RenderFailed.
			WithMsg("acceptance form template carries no form fields")
	}

	values := buildValues(sub)

	res := newResolver(names)
	fill := formPayload{Forms: []formGroup{{}}}
	for logical, value := range values {
		name := res.resolve(logical)
		if name == "" {
			// field absent from this template revision
			continue
		}
		fill.Forms[0].TextFields = append(fill.Forms[0].TextFields, formTextField{
			Name:   name,
			Value:  value,
			Locked: true,
		})
	}

	fillJSON, err := json.Marshal(fill)
	if err != nil {
		return nil, ererrors.RenderFailed.WithError(err)
	}

	var out bytes.Buffer
	conf := model.NewDefaultConfiguration()
	if err := api.FillForm(bytes.NewReader(tpl), bytes.NewReader(fillJSON), &out, conf); err != nil {
		return nil, ererrors.RenderFailed.WithError(err)
	}

	return out.Bytes(), nil
}

// buildValues maps a submission onto logical template fields: constants
// first, then a wipe of both branch groups, then the chosen branch.
func buildValues(sub *models.RightsSubmission) map[logicalField]string {
	values := map[logicalField]string{
		fieldRegAccountNumber: sub.RegAccountNumber,
		fieldShareholderName:  sub.ShareholderName,
		fieldHoldings:         shares(sub.Holdings),
		fieldRightsIssue:      shares(sub.RightsIssue),
		fieldAmountDue:        naira(sub.AmountDue),
		fieldStockbroker:      sub.StockbrokerName,
		fieldCHN:              sub.CHN,
		fieldContactName:      sub.ContactName,
		fieldNextOfKin:        sub.NextOfKin,
		fieldDaytimePhone:     sub.DaytimePhone,
		fieldMobilePhone:      sub.MobilePhone,
		fieldEmail:            sub.Email,
		fieldBankName:         sub.BankName,
		fieldBankBranch:       sub.BankBranch,
		fieldAccountNumber:    sub.AccountNumber,
		fieldBVN:              sub.BVN,
		fieldSignatureType:    signatureLabel(sub.SignatureType),
	}

	if sub.CorporateName != nil {
		values[fieldCorporateName] = *sub.CorporateName
	}
	if sub.RCNumber != nil {
		values[fieldRCNumber] = *sub.RCNumber
	}

	// erase residue from both branch groups before populating either
	clearBranch(values, fullAcceptanceFields)
	clearBranch(values, renunciationFields)

	switch sub.ActionType {
	case enum.FullAcceptance:
		fillFullAcceptance(values, sub)
		clearBranch(values, renunciationFields)
	case enum.RenunciationPartial:
		fillRenunciation(values, sub)
		clearBranch(values, fullAcceptanceFields)
	}

	return values
}

func fillFullAcceptance(values map[logicalField]string, sub *models.RightsSubmission) {
	values[fieldAcceptFull] = mark(true)

	additional := decimal.Zero
	if sub.AdditionalShares != nil {
		additional = *sub.AdditionalShares
	}

	if sub.ApplyAdditional {
		values[fieldAdditionalShares] = shares(additional)
		if sub.AdditionalAmount != nil {
			values[fieldAdditionalAmount] = naira(*sub.AdditionalAmount)
		}
		values[fieldAcceptSmaller] = mark(sub.AcceptSmallerAllotment)
	}

	// the additional-shares payment detail set wins when the applicant
	// actually applied for more shares
	if additional.GreaterThan(decimal.Zero) {
		values[fieldPaymentBank] = sub.AdditionalBankName
		values[fieldPaymentCheque] = sub.AdditionalChequeNumber
		values[fieldPaymentBranch] = sub.AdditionalBankBranch
		if sub.AdditionalAmount != nil {
			values[fieldPaymentAmount] = naira(*sub.AdditionalAmount)
		} else {
			values[fieldPaymentAmount] = naira(sub.AmountPayable)
		}
		return
	}

	if sub.PaymentAmount != nil {
		values[fieldPaymentAmount] = naira(*sub.PaymentAmount)
	} else {
		values[fieldPaymentAmount] = naira(sub.AmountPayable)
	}
}

func fillRenunciation(values map[logicalField]string, sub *models.RightsSubmission) {
	values[fieldSharesAccepted] = shares(sub.SharesAccepted)
	values[fieldAmountPayable] = naira(sub.AmountPayable)
	values[fieldSharesRenounced] = shares(sub.SharesRenounced)
	values[fieldAcceptPartial] = mark(sub.AcceptPartial)
	values[fieldRenounceRights] = mark(sub.RenounceRights)
	values[fieldTradeRights] = mark(sub.TradeRights)

	if sub.SharesAccepted.GreaterThan(decimal.Zero) {
		values[fieldPartialBank] = sub.PartialBankName
		values[fieldPartialCheque] = sub.PartialChequeNumber
		values[fieldPartialBranch] = sub.PartialBankBranch
	}
}

func clearBranch(values map[logicalField]string, group []logicalField) {
	for _, f := range group {
		values[f] = ""
	}
}

// templateFieldNames exports the template's form and collects the text
// field names present on it.
func templateFieldNames(tpl []byte) ([]string, error) {
	var exported bytes.Buffer
	conf := model.NewDefaultConfiguration()
	if err := api.ExportForm(bytes.NewReader(tpl), &exported, "", conf); err != nil {
		return nil, err
	}

	var payload formPayload
	if err := json.Unmarshal(exported.Bytes(), &payload); err != nil {
		return nil, err
	}

	var names []string
	for _, form := range payload.Forms {
		for _, tf := range form.TextFields {
			names = append(names, tf.Name)
		}
	}
	return names, nil
}

func shares(d decimal.Decimal) string {
	f, _ := d.Float64()
	return humanize.CommafWithDigits(f, 0)
}

// NGN prefix instead of the naira glyph: the template's embedded font
// cannot encode it.
func naira(d decimal.Decimal) string {
	f, _ := d.Float64()
	return "NGN " + humanize.FormatFloat("#,###.##", f)
}

func mark(b bool) string {
	if b {
		return "X"
	}
	return ""
}

func signatureLabel(t enum.SignatureType) string {
	if t == enum.JointSignature {
		return "Joint Signatories"
	}
	return "Single Signatory"
}
