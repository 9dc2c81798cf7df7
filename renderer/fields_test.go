package renderer

import (
	"testing"

	"github.com/Favorjs/e-rights-backend/models"
	"github.com/Favorjs/e-rights-backend/models/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverAliasOrder(t *testing.T) {
	// internal key wins when both aliases exist on the template
	res := newResolver([]string{"regAccountNumber", "Reg Account Number"})
	assert.Equal(t, "regAccountNumber", res.resolve(fieldRegAccountNumber))

	// label form is the fallback
	res = newResolver([]string{"Reg Account Number", "Shareholder Name"})
	assert.Equal(t, "Reg Account Number", res.resolve(fieldRegAccountNumber))
	assert.Equal(t, "Shareholder Name", res.resolve(fieldShareholderName))

	// absent fields resolve to nothing
	assert.Equal(t, "", res.resolve(fieldBVN))
}

func TestEveryLogicalFieldHasAliases(t *testing.T) {
	for _, group := range [][]logicalField{fullAcceptanceFields, renunciationFields} {
		for _, f := range group {
			require.NotEmpty(t, fieldAliases[f], "no aliases for %s", f)
		}
	}
}

func fullAcceptanceSub() *models.RightsSubmission {
	additional := decimal.NewFromInt(24)
	amount := decimal.RequireFromString("700.00")
	return &models.RightsSubmission{
		RegAccountNumber: "APL0001234",
		ShareholderName:  "Adewale Musa",
		Holdings:         decimal.NewFromInt(380),
		RightsIssue:      decimal.NewFromInt(76),
		AmountDue:        decimal.RequireFromString("532.00"),
		ActionType:       enum.FullAcceptance,
		ApplyAdditional:  true,
		AdditionalShares: &additional,
		AdditionalAmount: &amount,
		AdditionalBankName:     "Zenith Bank",
		AdditionalChequeNumber: "000451",
		AdditionalBankBranch:   "Marina",
		SharesAccepted:   decimal.NewFromInt(100),
		AmountPayable:    amount,
		SignatureType:    enum.SingleSignature,
	}
}

func TestBuildValuesFullAcceptance(t *testing.T) {
	values := buildValues(fullAcceptanceSub())

	assert.Equal(t, "X", values[fieldAcceptFull])
	assert.Equal(t, "24", values[fieldAdditionalShares])
	assert.Equal(t, "NGN 700.00", values[fieldAdditionalAmount])
	assert.Equal(t, "Zenith Bank", values[fieldPaymentBank])
	assert.Equal(t, "000451", values[fieldPaymentCheque])
	assert.Equal(t, "Marina", values[fieldPaymentBranch])
	assert.Equal(t, "NGN 700.00", values[fieldPaymentAmount])

	// the renunciation branch must be blanked, not omitted, so a shared
	// template revision never shows stale marks
	for _, f := range renunciationFields {
		v, ok := values[f]
		require.True(t, ok, "%s missing from value set", f)
		assert.Equal(t, "", v)
	}

	assert.Equal(t, "APL0001234", values[fieldRegAccountNumber])
	assert.Equal(t, "76", values[fieldRightsIssue])
	assert.Equal(t, "NGN 532.00", values[fieldAmountDue])
	assert.Equal(t, "Single Signatory", values[fieldSignatureType])
}

func TestBuildValuesRenunciation(t *testing.T) {
	sub := &models.RightsSubmission{
		RegAccountNumber:    "APL0009876",
		ShareholderName:     "Ngozi Okafor",
		Holdings:            decimal.NewFromInt(500),
		RightsIssue:         decimal.NewFromInt(100),
		ActionType:          enum.RenunciationPartial,
		AcceptPartial:       true,
		TradeRights:         false,
		SharesAccepted:      decimal.NewFromInt(40),
		SharesRenounced:     decimal.NewFromInt(60),
		AmountPayable:       decimal.RequireFromString("280.00"),
		PartialBankName:     "GTBank",
		PartialChequeNumber: "112233",
		PartialBankBranch:   "Ikeja",
	}

	values := buildValues(sub)

	assert.Equal(t, "40", values[fieldSharesAccepted])
	assert.Equal(t, "60", values[fieldSharesRenounced])
	assert.Equal(t, "NGN 280.00", values[fieldAmountPayable])
	assert.Equal(t, "X", values[fieldAcceptPartial])
	assert.Equal(t, "", values[fieldRenounceRights])
	assert.Equal(t, "", values[fieldTradeRights])
	assert.Equal(t, "GTBank", values[fieldPartialBank])

	for _, f := range fullAcceptanceFields {
		assert.Equal(t, "", values[f], "%s should be blank", f)
	}
}

func TestBuildValuesPureRenunciationSkipsPaymentDetails(t *testing.T) {
	sub := &models.RightsSubmission{
		ActionType:          enum.RenunciationPartial,
		RenounceRights:      true,
		SharesRenounced:     decimal.NewFromInt(76),
		PartialBankName:     "GTBank",
		PartialChequeNumber: "112233",
	}

	values := buildValues(sub)

	assert.Equal(t, "X", values[fieldRenounceRights])
	assert.Equal(t, "0", values[fieldSharesAccepted])
	// nothing taken up means no payment, so the cheque details stay blank
	assert.Equal(t, "", values[fieldPartialBank])
	assert.Equal(t, "", values[fieldPartialCheque])
}

func TestCorporateFieldsOnlyWhenPresent(t *testing.T) {
	sub := fullAcceptanceSub()
	values := buildValues(sub)
	_, ok := values[fieldCorporateName]
	assert.False(t, ok)

	corp := "Lagos Holdings Ltd"
	rc := "RC123456"
	sub.CorporateName = &corp
	sub.RCNumber = &rc
	values = buildValues(sub)
	assert.Equal(t, "Lagos Holdings Ltd", values[fieldCorporateName])
	assert.Equal(t, "RC123456", values[fieldRCNumber])
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "1,234,567", shares(decimal.NewFromInt(1234567)))
	assert.Equal(t, "0", shares(decimal.Zero))
	assert.Equal(t, "NGN 532.00", naira(decimal.RequireFromString("532.00")))
	assert.Equal(t, "NGN 8,640,000.50", naira(decimal.RequireFromString("8640000.50")))
	assert.Equal(t, "X", mark(true))
	assert.Equal(t, "", mark(false))
	assert.Equal(t, "Joint Signatories", signatureLabel(enum.JointSignature))
	assert.Equal(t, "Single Signatory", signatureLabel(enum.SingleSignature))
}
