package registry

import (
	"github.com/Favorjs/e-rights-backend/service/reporting"
	"github.com/Favorjs/e-rights-backend/service/shareholder"
	"github.com/Favorjs/e-rights-backend/service/stockbroker"
	"github.com/Favorjs/e-rights-backend/service/submission"
)

type Registry interface {
	Shareholder() shareholder.ShareholderService
	Stockbroker() stockbroker.StockbrokerService
	Submission() submission.SubmissionService
	Reporting() reporting.ReportingService
}
