package forms

import (
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/Favorjs/e-rights-backend/docstore"
	"github.com/Favorjs/e-rights-backend/ererrors"
	"github.com/Favorjs/e-rights-backend/models/enum"
	"github.com/Favorjs/e-rights-backend/rest/api"
	"github.com/Favorjs/e-rights-backend/service/submission"
)

// maxSignatures bounds the signature_0..N probe; joint corporate accounts
// rarely carry more than a handful of signatories.
const maxSignatures = 10

// parseInput builds a submission input from either a JSON body or a
// multipart form. File parts only exist on multipart requests.
func parseInput(ctx api.Context) (*submission.Input, error) {
	in := &submission.Input{}

	if strings.HasPrefix(ctx.GetHeader("Content-Type"), api.MIMEApplicationJSON) {
		if err := ctx.Read(in); err != nil {
			return nil, ererrors.RequestBodyLoadFailure.WithError(err)
		}
		return in, nil
	}

	in.ShareholderID = uintValue(ctx, "shareholder_id")
	in.ActionType = enum.ActionType(ctx.FormValue("action_type"))
	in.InstructionsRead = boolValue(ctx, "instructions_read")

	in.StockbrokerID = uintPtrValue(ctx, "stockbroker_id")
	in.CHN = ctx.FormValue("chn")
	in.ContactName = ctx.FormValue("contact_name")
	in.NextOfKin = ctx.FormValue("next_of_kin")
	in.DaytimePhone = ctx.FormValue("daytime_phone")
	in.MobilePhone = ctx.FormValue("mobile_phone")
	in.Email = ctx.FormValue("email")

	in.BankName = ctx.FormValue("bank_name")
	in.BankBranch = ctx.FormValue("bank_branch")
	in.AccountNumber = ctx.FormValue("account_number")
	in.BVN = ctx.FormValue("bvn")

	in.CorporateName = strPtrValue(ctx, "corporate_name")
	in.RCNumber = strPtrValue(ctx, "rc_number")
	in.SignatureType = enum.SignatureType(ctx.FormValue("signature_type"))
	if in.SignatureType == "" {
		in.SignatureType = enum.SingleSignature
	}

	in.AcceptFull = boolValue(ctx, "accept_full")
	in.ApplyAdditional = boolValue(ctx, "apply_additional")
	in.AdditionalShares = ctx.FormValue("additional_shares_applied")
	in.AdditionalAmount = ctx.FormValue("additional_amount")
	in.AcceptSmallerAllotment = boolValue(ctx, "accept_smaller_allotment")
	in.PaymentAmount = ctx.FormValue("payment_amount")
	in.AdditionalBankName = ctx.FormValue("additional_bank_name")
	in.AdditionalChequeNumber = ctx.FormValue("additional_cheque_number")
	in.AdditionalBankBranch = ctx.FormValue("additional_bank_branch")

	in.AcceptPartial = boolValue(ctx, "accept_partial")
	in.RenounceRights = boolValue(ctx, "renounce_rights")
	in.TradeRights = boolValue(ctx, "trade_rights")
	in.SharesAccepted = ctx.FormValue("shares_accepted")
	in.PartialBankName = ctx.FormValue("partial_bank_name")
	in.PartialChequeNumber = ctx.FormValue("partial_cheque_number")
	in.PartialBankBranch = ctx.FormValue("partial_bank_branch")

	receipt, err := formFile(ctx, "receipt")
	if err != nil {
		return nil, err
	}
	in.Receipt = receipt

	signatures, err := signatureFiles(ctx)
	if err != nil {
		return nil, err
	}
	in.Signatures = signatures

	return in, nil
}

// signatureFiles collects a lone "signature" part plus any numbered
// signature_0..N parts.
func signatureFiles(ctx api.Context) ([]docstore.File, error) {
	files := []docstore.File{}

	single, err := formFile(ctx, "signature")
	if err != nil {
		return nil, err
	}
	if single != nil {
		files = append(files, *single)
	}

	for i := 0; i < maxSignatures; i++ {
		f, err := formFile(ctx, fmt.Sprintf("signature_%d", i))
		if err != nil {
			return nil, err
		}
		if f == nil {
			break
		}
		files = append(files, *f)
	}

	return files, nil
}

func formFile(ctx api.Context, name string) (*docstore.File, error) {
	part, header, err := ctx.FormFile(name)
	if err != nil {
		// absent parts are the caller's business, not a transport error
		return nil, nil
	}
	defer part.Close()

	data, err := ioutil.ReadAll(part)
	if err != nil {
		return nil, ererrors.RequestBodyLoadFailure.WithError(err)
	}

	if len(data) > docstore.MaxUploadSize {
		return nil, ererrors.InvalidFormat.WithMsg(
			fmt.Sprintf("%s exceeds the %dMB upload limit", name, docstore.MaxUploadSize>>20))
	}

	return &docstore.File{Name: header.Filename, Data: data}, nil
}

func boolValue(ctx api.Context, name string) bool {
	switch strings.ToLower(ctx.FormValue(name)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

func uintValue(ctx api.Context, name string) uint {
	v, err := strconv.ParseUint(ctx.FormValue(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}

func uintPtrValue(ctx api.Context, name string) *uint {
	v, err := strconv.ParseUint(ctx.FormValue(name), 10, 64)
	if err != nil || v == 0 {
		return nil
	}
	u := uint(v)
	return &u
}

func strPtrValue(ctx api.Context, name string) *string {
	v := ctx.FormValue(name)
	if v == "" {
		return nil
	}
	return &v
}
