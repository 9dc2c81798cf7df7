package binder

import (
	"github.com/Favorjs/e-rights-backend/rest/api"
	"github.com/Favorjs/e-rights-backend/rest/api/controller/admin"
	"github.com/Favorjs/e-rights-backend/rest/api/controller/forms"
	"github.com/Favorjs/e-rights-backend/rest/api/controller/shareholder"
	"github.com/Favorjs/e-rights-backend/rest/api/controller/uploads"
	"github.com/Favorjs/e-rights-backend/rest/api/middleware/httplogger"
	"github.com/Favorjs/e-rights-backend/utils"
	"github.com/Favorjs/e-rights-backend/utils/env"
	"github.com/iris-contrib/middleware/cors"
	"github.com/kataras/iris"
)

type APIHandler interface {
	NoAuth(func(api.Context)) iris.Handler
	AuthenticateAdmin(func(api.Context)) iris.Handler
	RouteNotFound(api.Context)
}

// Rights binds the rights issue API handlers to their endpoints
func Rights(api *api.API, r iris.Party) {
	r.Use(httplogger.New())

	// CORS
	{
		getOrigins := func() []string {
			switch {
			case utils.Prod():
				return []string{env.GetVar("FRONTEND_URL")}
			default:
				// staging/dev mode
				return []string{"*"}
			}
		}

		crs := cors.New(cors.Options{
			AllowedOrigins: getOrigins(),
			AllowedMethods: []string{
				iris.MethodGet,
				iris.MethodPost,
				iris.MethodPatch,
				iris.MethodDelete,
				iris.MethodOptions,
			},
			AllowedHeaders:     []string{"*"},
			AllowCredentials:   true,
			OptionsPassthrough: false,
		})

		r.Use(crs)
		r.AllowMethods(iris.MethodOptions) // <- important for the preflight.
	}

	// shareholder lookup
	r.Get("/shareholders/search", api.NoAuth(shareholder.Search))
	r.Get("/shareholders/reg/{reg_number}", api.NoAuth(shareholder.GetByRegNumber))
	r.Get("/shareholders/{shareholder_id}", api.NoAuth(shareholder.Get))
	r.Get("/shareholders", api.NoAuth(shareholder.List))

	// acceptance forms
	r.Post("/forms/preview-rights", api.NoAuth(forms.Preview))
	r.Post("/forms/submit-rights", api.NoAuth(forms.Submit))
	r.Get("/forms/stockbrokers", api.NoAuth(forms.Stockbrokers))
	r.Get("/forms/shareholder/{shareholder_id}", api.NoAuth(forms.GetByShareholder))
	r.Get("/forms/download/{artifact_id:path}", api.NoAuth(forms.Download))
	r.Get("/forms/download-file/{artifact_id:path}", api.NoAuth(forms.DownloadFile))
	r.Get("/forms/stream-file/{artifact_id:path}", api.NoAuth(forms.StreamFile))

	// standalone artifact uploads
	r.Post("/uploads/signature", api.NoAuth(uploads.Signature))
	r.Post("/uploads/receipt", api.NoAuth(uploads.Receipt))
	r.Post("/uploads/both", api.NoAuth(uploads.Both))
	r.Delete("/uploads/file/{artifact_id:path}", api.NoAuth(uploads.Delete))

	// back office
	r.Get("/admin/dashboard", api.AuthenticateAdmin(admin.Dashboard))
	r.Get("/admin/submissions", api.AuthenticateAdmin(admin.ListSubmissions))
	r.Get("/admin/submissions/{submission_id}", api.AuthenticateAdmin(admin.GetSubmission))
	r.Patch("/admin/submissions/{submission_id}/status", api.AuthenticateAdmin(admin.PatchStatus))
	r.Get("/admin/export", api.AuthenticateAdmin(admin.Export))
}
