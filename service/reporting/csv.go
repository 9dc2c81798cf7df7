package reporting

import (
	"strings"
	"time"

	"github.com/Favorjs/e-rights-backend/models"
	"github.com/shopspring/decimal"
)

// csvHeader is the fixed export layout consumed by the registrar's
// reconciliation spreadsheets. Column order is part of the contract.
const csvHeader = "Reg Account Number,Name,Holdings,Rights Issue,Holdings After," +
	"Acceptance Type,Shares Accepted,Shares Renounced,Additional Shares," +
	"Amount Payable,Payment Account,Contact Name,Email,Status,Created At"

// CSV renders submissions in the export layout: string columns are always
// quoted, numeric columns are bare, and NULLs become empty cells. Zero rows
// produce the header line alone.
func CSV(subs []models.RightsSubmission) []byte {
	var b strings.Builder

	b.WriteString(csvHeader)
	b.WriteByte('\n')

	for _, sub := range subs {
		cells := []string{
			quote(sub.RegAccountNumber),
			quote(sub.ShareholderName),
			num(sub.Holdings),
			num(sub.RightsIssue),
			num(sub.HoldingsAfter),
			quote(string(sub.ActionType)),
			num(sub.SharesAccepted),
			num(sub.SharesRenounced),
			numPtr(sub.AdditionalShares),
			num(sub.AmountPayable),
			quote(sub.AccountNumber),
			quote(sub.ContactName),
			quote(sub.Email),
			quote(string(sub.Status)),
			quote(sub.CreatedAt.Format(time.RFC3339)),
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteByte('\n')
	}

	return []byte(b.String())
}

func quote(s string) string {
	return `"` + strings.Replace(s, `"`, `""`, -1) + `"`
}

func num(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func numPtr(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}
