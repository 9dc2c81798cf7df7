package shareholder

import (
	"github.com/Favorjs/e-rights-backend/rest/api"
	"github.com/Favorjs/e-rights-backend/rest/api/controller/entities"
	"github.com/Favorjs/e-rights-backend/rest/api/controller/parameter"
)

// Search matches shareholders by name tokens for the public lookup box.
func Search(ctx api.Context) {
	page := parameter.GetPage(ctx)
	limit := parameter.GetLimit(ctx)

	holders, total, err := ctx.Services().Shareholder().
		WithTx(ctx.Tx()).
		Search(ctx.URLParam("name"), page, limit)
	if err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.Respond(entities.Paged(holders, page, limit, total))
}

func Get(ctx api.Context) {
	id, err := parameter.GetParamShareholderID(ctx, "shareholder_id")
	if err != nil {
		ctx.RespondError(err)
		return
	}

	holder, err := ctx.Services().Shareholder().WithTx(ctx.Tx()).GetByID(id)
	if err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.Respond(entities.OK(holder))
}

func GetByRegNumber(ctx api.Context) {
	holder, err := ctx.Services().Shareholder().
		WithTx(ctx.Tx()).
		GetByRegNumber(ctx.Params().Get("reg_number"))
	if err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.Respond(entities.OK(holder))
}

func List(ctx api.Context) {
	page := parameter.GetPage(ctx)
	limit := parameter.GetLimit(ctx)

	holders, total, err := ctx.Services().Shareholder().
		WithTx(ctx.Tx()).
		List(ctx.URLParam("search"), page, limit)
	if err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.Respond(entities.Paged(holders, page, limit, total))
}
