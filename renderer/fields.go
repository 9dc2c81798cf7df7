package renderer

// Logical template fields. The printed template has gone through several
// revisions with inconsistent AcroForm field naming, so every logical field
// carries an ordered alias list (internal key first, then the human label
// used by the layout tool). The first alias present on the loaded template
// wins; aliases are resolved once per render against the exported field set.
type logicalField string

const (
	fieldRegAccountNumber logicalField = "reg_account_number"
	fieldShareholderName  logicalField = "shareholder_name"
	fieldHoldings         logicalField = "holdings"
	fieldRightsIssue      logicalField = "rights_issue"
	fieldAmountDue        logicalField = "amount_due"
	fieldStockbroker      logicalField = "stockbroker"
	fieldCHN              logicalField = "chn"
	fieldContactName      logicalField = "contact_name"
	fieldNextOfKin        logicalField = "next_of_kin"
	fieldDaytimePhone     logicalField = "daytime_phone"
	fieldMobilePhone      logicalField = "mobile_phone"
	fieldEmail            logicalField = "email"
	fieldBankName         logicalField = "bank_name"
	fieldBankBranch       logicalField = "bank_branch"
	fieldAccountNumber    logicalField = "account_number"
	fieldBVN              logicalField = "bvn"
	fieldCorporateName    logicalField = "corporate_name"
	fieldRCNumber         logicalField = "rc_number"
	fieldSignatureType    logicalField = "signature_type"

	// full acceptance branch
	fieldAcceptFull       logicalField = "accept_full"
	fieldAdditionalShares logicalField = "additional_shares"
	fieldAdditionalAmount logicalField = "additional_amount"
	fieldAcceptSmaller    logicalField = "accept_smaller"
	fieldPaymentAmount    logicalField = "payment_amount"
	fieldPaymentBank      logicalField = "payment_bank"
	fieldPaymentCheque    logicalField = "payment_cheque"
	fieldPaymentBranch    logicalField = "payment_branch"

	// renunciation / partial branch
	fieldSharesAccepted  logicalField = "shares_accepted"
	fieldAmountPayable   logicalField = "amount_payable"
	fieldSharesRenounced logicalField = "shares_renounced"
	fieldAcceptPartial   logicalField = "accept_partial"
	fieldRenounceRights  logicalField = "renounce_rights"
	fieldTradeRights     logicalField = "trade_rights"
	fieldPartialBank     logicalField = "partial_bank"
	fieldPartialCheque   logicalField = "partial_cheque"
	fieldPartialBranch   logicalField = "partial_branch"
)

var fieldAliases = map[logicalField][]string{
	fieldRegAccountNumber: {"regAccountNumber", "Reg Account Number"},
	fieldShareholderName:  {"shareholderName", "Shareholder Name", "Name"},
	fieldHoldings:         {"holdings", "Shares Held"},
	fieldRightsIssue:      {"rightsIssue", "Rights Allotted"},
	fieldAmountDue:        {"amountDue", "Amount Due"},
	fieldStockbroker:      {"stockbroker", "Stockbroker"},
	fieldCHN:              {"chn", "CHN"},
	fieldContactName:      {"contactName", "Contact Name"},
	fieldNextOfKin:        {"nextOfKin", "Next of Kin"},
	fieldDaytimePhone:     {"daytimePhone", "Daytime Phone"},
	fieldMobilePhone:      {"mobilePhone", "Mobile Phone"},
	fieldEmail:            {"email", "Email Address"},
	fieldBankName:         {"bankName", "Bank Name"},
	fieldBankBranch:       {"bankBranch", "Bank Branch"},
	fieldAccountNumber:    {"accountNumber", "Account Number"},
	fieldBVN:              {"bvn", "BVN"},
	fieldCorporateName:    {"corporateName", "Company Name"},
	fieldRCNumber:         {"rcNumber", "RC Number"},
	fieldSignatureType:    {"signatureType", "Signature Type"},

	fieldAcceptFull:       {"acceptFull", "Accept Full"},
	fieldAdditionalShares: {"additionalShares", "Additional Shares Applied"},
	fieldAdditionalAmount: {"additionalAmount", "Additional Amount Payable"},
	fieldAcceptSmaller:    {"acceptSmallerAllotment", "Accept Smaller Allotment"},
	fieldPaymentAmount:    {"paymentAmount", "Payment Amount"},
	fieldPaymentBank:      {"paymentBank", "Payment Bank"},
	fieldPaymentCheque:    {"paymentCheque", "Cheque Number"},
	fieldPaymentBranch:    {"paymentBranch", "Payment Branch"},

	fieldSharesAccepted:  {"sharesAccepted", "Shares Accepted"},
	fieldAmountPayable:   {"amountPayable", "Amount Payable"},
	fieldSharesRenounced: {"sharesRenounced", "Shares Renounced"},
	fieldAcceptPartial:   {"acceptPartial", "Accept Partial"},
	fieldRenounceRights:  {"renounceRights", "Renounce Rights"},
	fieldTradeRights:     {"tradeRights", "Trade Rights"},
	fieldPartialBank:     {"partialBank", "Partial Payment Bank"},
	fieldPartialCheque:   {"partialCheque", "Partial Cheque Number"},
	fieldPartialBranch:   {"partialBranch", "Partial Payment Branch"},
}

// Branch-conditional field groups. Both groups are wiped before a branch is
// populated so a shared template never carries residue from the other branch.
var fullAcceptanceFields = []logicalField{
	fieldAcceptFull,
	fieldAdditionalShares,
	fieldAdditionalAmount,
	fieldAcceptSmaller,
	fieldPaymentAmount,
	fieldPaymentBank,
	fieldPaymentCheque,
	fieldPaymentBranch,
}

var renunciationFields = []logicalField{
	fieldSharesAccepted,
	fieldAmountPayable,
	fieldSharesRenounced,
	fieldAcceptPartial,
	fieldRenounceRights,
	fieldTradeRights,
	fieldPartialBank,
	fieldPartialCheque,
	fieldPartialBranch,
}

// resolver maps logical fields to the concrete field names present on a
// loaded template.
type resolver struct {
	available map[string]bool
}

func newResolver(fieldNames []string) *resolver {
	available := make(map[string]bool, len(fieldNames))
	for _, n := range fieldNames {
		available[n] = true
	}
	return &resolver{available: available}
}

// resolve returns the first alias that exists on the template, or "" when
// the logical field has no home (silently skipped by the caller).
func (r *resolver) resolve(f logicalField) string {
	for _, alias := range fieldAliases[f] {
		if r.available[alias] {
			return alias
		}
	}
	return ""
}
