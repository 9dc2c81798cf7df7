package reporting

import (
	"strings"
	"testing"
	"time"

	"github.com/Favorjs/e-rights-backend/models"
	"github.com/Favorjs/e-rights-backend/models/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVZeroRowsHeaderOnly(t *testing.T) {
	out := string(CSV(nil))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, csvHeader, lines[0])
}

func TestCSVQuotingContract(t *testing.T) {
	extra := decimal.NewFromFloat(24)
	sub := models.RightsSubmission{
		RegAccountNumber: "TIP0001",
		ShareholderName:  `Doe "JJ" John`,
		Holdings:         decimal.NewFromFloat(1000),
		HoldingsAfter:    decimal.NewFromFloat(1076),
		RightsIssue:      decimal.NewFromFloat(76),
		ActionType:       enum.FullAcceptance,
		SharesAccepted:   decimal.NewFromFloat(100),
		SharesRenounced:  decimal.Zero,
		AdditionalShares: &extra,
		AmountPayable:    decimal.NewFromFloat(700),
		AccountNumber:    "0123456789",
		ContactName:      "John Doe",
		Email:            "john@example.com",
		Status:           enum.SubmissionPending,
		CreatedAt:        time.Date(2024, 8, 15, 10, 0, 0, 0, time.UTC),
	}

	out := string(CSV([]models.RightsSubmission{sub}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	row := lines[1]
	// strings quoted, embedded quotes doubled
	assert.Contains(t, row, `"TIP0001"`)
	assert.Contains(t, row, `"Doe ""JJ"" John"`)
	assert.Contains(t, row, `"full_acceptance"`)
	// numerics bare
	assert.Contains(t, row, `,1000.00,`)
	assert.Contains(t, row, `,700.00,`)
	assert.NotContains(t, row, `"700.00"`)
}

func TestCSVNullNumericsBecomeEmpty(t *testing.T) {
	sub := models.RightsSubmission{
		RegAccountNumber: "TIP0002",
		ShareholderName:  "Adewale Musa",
		ActionType:       enum.RenunciationPartial,
		Status:           enum.SubmissionPending,
		CreatedAt:        time.Now(),
	}

	out := string(CSV([]models.RightsSubmission{sub}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	// AdditionalShares is NULL: two adjacent separators around an empty cell
	assert.Contains(t, lines[1], `,0.00,,`)
}

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, "0.0%", completionRate(0, 0))
	assert.Equal(t, "0.0%", completionRate(5, 0))
	assert.Equal(t, "50.0%", completionRate(1, 2))
	assert.Equal(t, "33.3%", completionRate(1, 3))
}
