package submission

import (
	"errors"
	"sort"

	"github.com/Favorjs/e-rights-backend/ererrors"
	"github.com/Favorjs/e-rights-backend/models/enum"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/shopspring/decimal"
)

var (
	errBlank     = errors.New("cannot be blank")
	errNegative  = errors.New("must be no less than 0")
	errOverIssue = errors.New("cannot exceed the rights entitlement")
	errBadAction = errors.New("must be full_acceptance or renunciation_partial")
	errNoReceipt = errors.New("payment receipt is required")
	errNoSigns   = errors.New("at least one signature is required")
)

// validate runs the branch-specific required-field checklist against a
// submission. Every offending field is collected before failing, so the
// caller gets the complete list in one round trip.
func validate(in *Input, c *coerced, entitlement decimal.Decimal, withArtifacts bool) error {
	errs := validation.Errors{}

	if err := validation.ValidateStruct(in,
		validation.Field(&in.ContactName, validation.Required),
		validation.Field(&in.NextOfKin, validation.Required),
		validation.Field(&in.Email, validation.Required, is.Email),
		validation.Field(&in.MobilePhone, validation.Required),
		validation.Field(&in.BankName, validation.Required),
		validation.Field(&in.AccountNumber, validation.Required),
	); err != nil {
		ve, ok := err.(validation.Errors)
		if !ok {
			return ererrors.InternalServerError.WithError(err)
		}
		for field, ferr := range ve {
			errs[field] = ferr
		}
	}

	if !in.ActionType.Valid() {
		errs["action_type"] = errBadAction
	}

	switch in.ActionType {
	case enum.FullAcceptance:
		if in.ApplyAdditional {
			if c.AdditionalShares == nil {
				errs["additional_shares_applied"] = errBlank
			} else if c.AdditionalShares.IsNegative() {
				errs["additional_shares_applied"] = errNegative
			}
			if c.AdditionalAmount != nil && c.AdditionalAmount.IsNegative() {
				errs["additional_amount"] = errNegative
			}
		}
		if c.PaymentAmount != nil && c.PaymentAmount.IsNegative() {
			errs["payment_amount"] = errNegative
		}

	case enum.RenunciationPartial:
		if c.SharesAccepted == nil {
			errs["shares_accepted"] = errBlank
		} else if c.SharesAccepted.IsNegative() {
			errs["shares_accepted"] = errNegative
		} else if c.SharesAccepted.GreaterThan(entitlement) {
			// renouncing a negative remainder makes no sense
			errs["shares_accepted"] = errOverIssue
		}
	}

	if withArtifacts {
		if len(in.Signatures) == 0 {
			errs["signature"] = errNoSigns
		}

		pureRenunciation := in.ActionType == enum.RenunciationPartial &&
			c.SharesAccepted != nil && c.SharesAccepted.IsZero()
		if in.Receipt == nil && !pureRenunciation {
			errs["receipt"] = errNoReceipt
		}
	}

	if len(errs) > 0 {
		return ererrors.ValidationError.
			WithDetails(map[string]interface{}{"missing_fields": sortedKeys(errs)}).
			WithError(errs)
	}

	return nil
}

func sortedKeys(errs validation.Errors) []string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
