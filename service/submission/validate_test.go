package submission

import (
	"testing"

	"github.com/Favorjs/e-rights-backend/docstore"
	"github.com/Favorjs/e-rights-backend/ererrors"
	"github.com/Favorjs/e-rights-backend/models/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeInput() *Input {
	return &Input{
		ShareholderID:  1,
		ActionType:     enum.RenunciationPartial,
		AcceptPartial:  true,
		SharesAccepted: "30",
		ContactName:    "John Doe",
		NextOfKin:      "Jane Doe",
		MobilePhone:    "08030000000",
		Email:          "john@example.com",
		BankName:       "First Bank",
		AccountNumber:  "0123456789",
		Receipt:        &docstore.File{Name: "receipt.jpg", Data: []byte("x")},
		Signatures:     []docstore.File{{Name: "sig.png", Data: []byte("x")}},
	}
}

func missingFields(t *testing.T, err error) []string {
	require.Error(t, err)

	exc, ok := err.(ererrors.IException)
	require.True(t, ok)
	assert.Equal(t, 400, exc.ExceptionStatusCode())

	fields, ok := exc.ExceptionBody()["missing_fields"].([]string)
	require.True(t, ok)
	return fields
}

func TestValidateMissingEmail(t *testing.T) {
	in := completeInput()
	in.Email = ""

	err := validate(in, in.coerce(), decimal.NewFromFloat(76), true)

	assert.Contains(t, missingFields(t, err), "email")
}

func TestValidateMalformedEmail(t *testing.T) {
	in := completeInput()
	in.Email = "not-an-email"

	err := validate(in, in.coerce(), decimal.NewFromFloat(76), true)

	assert.Contains(t, missingFields(t, err), "email")
}

func TestValidateCollectsEveryField(t *testing.T) {
	in := completeInput()
	in.Email = ""
	in.ContactName = ""
	in.BankName = ""

	err := validate(in, in.coerce(), decimal.NewFromFloat(76), true)

	fields := missingFields(t, err)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "contact_name")
	assert.Contains(t, fields, "bank_name")
}

func TestValidateSharesOverEntitlement(t *testing.T) {
	in := completeInput()
	in.SharesAccepted = "100"

	err := validate(in, in.coerce(), decimal.NewFromFloat(76), true)

	assert.Contains(t, missingFields(t, err), "shares_accepted")
}

func TestValidateNegativeShares(t *testing.T) {
	in := completeInput()
	in.SharesAccepted = "-5"

	err := validate(in, in.coerce(), decimal.NewFromFloat(76), true)

	assert.Contains(t, missingFields(t, err), "shares_accepted")
}

func TestValidateAdditionalSharesRequiredWhenApplied(t *testing.T) {
	in := completeInput()
	in.ActionType = enum.FullAcceptance
	in.AcceptPartial = false
	in.SharesAccepted = ""
	in.AcceptFull = true
	in.ApplyAdditional = true

	err := validate(in, in.coerce(), decimal.NewFromFloat(76), true)

	assert.Contains(t, missingFields(t, err), "additional_shares_applied")
}

func TestValidateReceiptOptionalForPureRenunciation(t *testing.T) {
	in := completeInput()
	in.SharesAccepted = "0"
	in.AcceptPartial = false
	in.RenounceRights = true
	in.Receipt = nil

	err := validate(in, in.coerce(), decimal.NewFromFloat(76), true)

	assert.NoError(t, err)
}

func TestValidateReceiptRequiredWhenSharesTaken(t *testing.T) {
	in := completeInput()
	in.Receipt = nil

	err := validate(in, in.coerce(), decimal.NewFromFloat(76), true)

	assert.Contains(t, missingFields(t, err), "receipt")
}

func TestValidateSignatureAlwaysRequired(t *testing.T) {
	in := completeInput()
	in.Signatures = nil

	err := validate(in, in.coerce(), decimal.NewFromFloat(76), true)

	assert.Contains(t, missingFields(t, err), "signature")
}

func TestValidateInvalidActionType(t *testing.T) {
	in := completeInput()
	in.ActionType = "archived"

	err := validate(in, in.coerce(), decimal.NewFromFloat(76), true)

	assert.Contains(t, missingFields(t, err), "action_type")
}

func TestValidatePassesWithoutArtifactsForPreview(t *testing.T) {
	in := completeInput()
	in.Receipt = nil
	in.Signatures = nil

	err := validate(in, in.coerce(), decimal.NewFromFloat(76), false)

	assert.NoError(t, err)
}
