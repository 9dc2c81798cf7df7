package admin

import (
	"strings"

	"github.com/Favorjs/e-rights-backend/ererrors"
	"github.com/Favorjs/e-rights-backend/models/enum"
	"github.com/Favorjs/e-rights-backend/rest/api"
	"github.com/Favorjs/e-rights-backend/rest/api/controller/entities"
	"github.com/Favorjs/e-rights-backend/rest/api/controller/parameter"
	"github.com/Favorjs/e-rights-backend/service/reporting"
)

func Dashboard(ctx api.Context) {
	stats, err := ctx.Services().Reporting().WithTx(ctx.Tx()).Dashboard()
	if err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.Respond(entities.OK(stats))
}

func ListSubmissions(ctx api.Context) {
	params := reporting.ListParams{
		Search:    ctx.URLParam("search"),
		Status:    ctx.URLParam("status"),
		SortBy:    ctx.URLParam("sort_by"),
		SortOrder: ctx.URLParam("sort_order"),
		Page:      parameter.GetPage(ctx),
		Limit:     parameter.GetLimit(ctx),
	}

	subs, total, err := ctx.Services().Reporting().WithTx(ctx.Tx()).List(params)
	if err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.Respond(entities.Paged(subs, params.Page, params.Limit, total))
}

func GetSubmission(ctx api.Context) {
	sub, err := ctx.Services().Reporting().
		WithTx(ctx.Tx()).
		Get(ctx.Params().Get("submission_id"))
	if err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.Respond(entities.OK(sub))
}

type statusRequest struct {
	Status string `json:"status"`
}

func PatchStatus(ctx api.Context) {
	req := statusRequest{}
	if err := ctx.Read(&req); err != nil {
		ctx.RespondError(ererrors.RequestBodyLoadFailure.WithError(err))
		return
	}

	sub, err := ctx.Services().Reporting().
		WithTx(ctx.Tx()).
		UpdateStatus(ctx.Params().Get("submission_id"), enum.SubmissionStatus(req.Status))
	if err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.Respond(entities.OKWithMessage("Submission status updated successfully", sub))
}

// Export returns every submission as JSON rows or as the fixed-layout CSV.
func Export(ctx api.Context) {
	subs, err := ctx.Services().Reporting().WithTx(ctx.Tx()).Export()
	if err != nil {
		ctx.RespondError(err)
		return
	}

	if strings.EqualFold(ctx.URLParam("format"), "csv") {
		ctx.Header("Content-Disposition", `attachment; filename="submissions.csv"`)
		ctx.RespondWithContent(api.MIMETextCSV, reporting.CSV(subs))
		return
	}

	ctx.Respond(struct {
		Success bool        `json:"success"`
		Data    interface{} `json:"data"`
		Count   int         `json:"count"`
	}{true, subs, len(subs)})
}
