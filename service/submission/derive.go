package submission

import (
	"github.com/Favorjs/e-rights-backend/models"
	"github.com/Favorjs/e-rights-backend/models/enum"
	"github.com/Favorjs/e-rights-backend/utils/env"
	"github.com/shopspring/decimal"
)

type derived struct {
	SharesAccepted  decimal.Decimal
	SharesRenounced decimal.Decimal
	AmountPayable   decimal.Decimal
}

// pricePerShare reads the offer price from the environment. The price is a
// term of the offer, not of any single submission, so it is never accepted
// from request input.
func pricePerShare() decimal.Decimal {
	price, err := decimal.NewFromString(env.GetVar("RIGHTS_PRICE_PER_SHARE"))
	if err != nil {
		return decimal.NewFromFloat(7.00)
	}
	return price
}

// derive computes the accepted/renounced share split and the payable amount
// from the shareholder's entitlement. Client-supplied amounts are display
// hints only; the figures stored and billed come from here.
func derive(in *Input, c *coerced, holder *models.Shareholder) *derived {
	price := pricePerShare()
	entitlement := holder.RightsIssue

	switch in.ActionType {
	case enum.FullAcceptance:
		accepted := entitlement
		if in.ApplyAdditional && c.AdditionalShares != nil {
			accepted = accepted.Add(*c.AdditionalShares)
		}
		return &derived{
			SharesAccepted:  accepted,
			SharesRenounced: decimal.Zero,
			AmountPayable:   accepted.Mul(price).Round(2),
		}

	case enum.RenunciationPartial:
		accepted := decimal.Zero
		if c.SharesAccepted != nil {
			accepted = *c.SharesAccepted
		}
		return &derived{
			SharesAccepted:  accepted,
			SharesRenounced: entitlement.Sub(accepted),
			AmountPayable:   accepted.Mul(price).Round(2),
		}
	}

	return &derived{
		SharesAccepted:  decimal.Zero,
		SharesRenounced: entitlement,
		AmountPayable:   decimal.Zero,
	}
}
