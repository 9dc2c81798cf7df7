package erreg

import (
	"github.com/Favorjs/e-rights-backend/service/registry"
	"github.com/Favorjs/e-rights-backend/service/reporting"
	"github.com/Favorjs/e-rights-backend/service/shareholder"
	"github.com/Favorjs/e-rights-backend/service/stockbroker"
	"github.com/Favorjs/e-rights-backend/service/submission"
)

var Services registry.Registry

type erRegistry struct{}

func (r *erRegistry) Shareholder() shareholder.ShareholderService {
	return shareholder.Service()
}

func (r *erRegistry) Stockbroker() stockbroker.StockbrokerService {
	return stockbroker.Service()
}

func (r *erRegistry) Submission() submission.SubmissionService {
	return submission.Service()
}

func (r *erRegistry) Reporting() reporting.ReportingService {
	return reporting.Service()
}

func init() {
	Services = &erRegistry{}
}
