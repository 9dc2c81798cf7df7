package forms

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/Favorjs/e-rights-backend/docstore"
	"github.com/Favorjs/e-rights-backend/rest/api"
	"github.com/Favorjs/e-rights-backend/rest/api/controller/entities"
	"github.com/Favorjs/e-rights-backend/rest/api/controller/parameter"
	"github.com/kataras/iris"
)

var (
	storeOnce sync.Once
	store     *docstore.Store
)

func getStore() *docstore.Store {
	storeOnce.Do(func() { store = docstore.New() })
	return store
}

// Preview validates the submitted fields and returns the rendered
// acceptance form without persisting anything.
func Preview(ctx api.Context) {
	in, err := parseInput(ctx)
	if err != nil {
		ctx.RespondError(err)
		return
	}

	sub, pdf, err := ctx.Services().Submission().WithTx(ctx.Tx()).Preview(in)
	if err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.Header("Content-Disposition",
		fmt.Sprintf(`inline; filename="%s"`, formFileName(sub.ShareholderName)))
	ctx.RespondWithContent(api.MIMEApplicationPDF, pdf)
}

// Submit runs the full intake workflow. Notifications go out after the
// transaction commits so a mail outage can never fail a stored submission.
func Submit(ctx api.Context) {
	in, err := parseInput(ctx)
	if err != nil {
		ctx.RespondError(err)
		return
	}

	svc := ctx.Services().Submission()

	sub, err := svc.WithTx(ctx.Tx()).Submit(in)
	if err != nil {
		ctx.RespondError(err)
		return
	}

	if err := ctx.Commit(); err != nil {
		ctx.RespondError(err)
		return
	}

	go svc.Notify(sub)

	ctx.RespondWithStatus(
		entities.OKWithMessage("Form submitted successfully", sub),
		iris.StatusCreated)
}

func Stockbrokers(ctx api.Context) {
	brokers, err := ctx.Services().Stockbroker().WithTx(ctx.Tx()).List()
	if err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.Respond(entities.OK(brokers))
}

// GetByShareholder returns the submission on file for a shareholder, used
// by the frontend to short-circuit a second filing attempt.
func GetByShareholder(ctx api.Context) {
	id, err := parameter.GetParamShareholderID(ctx, "shareholder_id")
	if err != nil {
		ctx.RespondError(err)
		return
	}

	sub, err := ctx.Services().Submission().WithTx(ctx.Tx()).GetByShareholder(id)
	if err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.Respond(entities.OK(sub))
}

// Download hands out a short-lived presigned URL for an artifact.
func Download(ctx api.Context) {
	artifactID := ctx.Params().Get("artifact_id")

	url, err := getStore().PresignedURL(artifactID, baseName(artifactID))
	if err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.Respond(entities.OK(iris.Map{
		"artifact_id": artifactID,
		"url":         url,
	}))
}

// DownloadFile streams artifact bytes with an attachment disposition.
func DownloadFile(ctx api.Context) {
	serveArtifact(ctx, "attachment")
}

// StreamFile streams artifact bytes inline, for in-browser viewing.
func StreamFile(ctx api.Context) {
	serveArtifact(ctx, "inline")
}

func serveArtifact(ctx api.Context, disposition string) {
	artifactID := ctx.Params().Get("artifact_id")

	data, err := getStore().Download(artifactID)
	if err != nil {
		ctx.RespondError(err)
		return
	}

	contentType := docstore.ContentType(artifactID)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ctx.Header("Content-Disposition",
		fmt.Sprintf(`%s; filename="%s"`, disposition, baseName(artifactID)))
	ctx.RespondWithContent(contentType, data)
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9]+`)

func formFileName(shareholderName string) string {
	name := unsafeChars.ReplaceAllString(shareholderName, "_")
	if len(name) > 50 {
		name = name[:50]
	}
	return fmt.Sprintf("Rights_Issue_Form_%s.pdf", name)
}

func baseName(artifactID string) string {
	for i := len(artifactID) - 1; i >= 0; i-- {
		if artifactID[i] == '/' {
			return artifactID[i+1:]
		}
	}
	return artifactID
}
