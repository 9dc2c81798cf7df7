package uploads

import (
	"io/ioutil"
	"sync"

	"github.com/Favorjs/e-rights-backend/docstore"
	"github.com/Favorjs/e-rights-backend/ererrors"
	"github.com/Favorjs/e-rights-backend/rest/api"
	"github.com/Favorjs/e-rights-backend/rest/api/controller/entities"
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

type uploaded struct {
	ArtifactID   string `json:"artifact_id"`
	Folder       string `json:"folder"`
	OriginalName string `json:"original_name"`
	Size         int    `json:"size"`
}

// Signature stores a standalone signature image ahead of form submission.
func Signature(ctx api.Context) {
	uploadSingle(ctx, "signature", docstore.Signatures)
}

// Receipt stores a standalone payment receipt ahead of form submission.
func Receipt(ctx api.Context) {
	uploadSingle(ctx, "receipt", docstore.Receipts)
}

// Both stores whichever of the signature and receipt parts are present.
func Both(ctx api.Context) {
	results := iris.Map{}

	parts := []struct {
		field  string
		folder string
	}{
		{"signature", docstore.Signatures},
		{"receipt", docstore.Receipts},
	}

	for _, p := range parts {
		file, err := readFile(ctx, p.field)
		if err != nil {
			ctx.RespondError(err)
			return
		}
		if file == nil {
			continue
		}

		artifactID, err := getStore().Upload(file.Data, file.Name, p.folder)
		if err != nil {
			ctx.RespondError(err)
			return
		}

		results[p.field] = uploaded{
			ArtifactID:   artifactID,
			Folder:       p.folder,
			OriginalName: file.Name,
			Size:         len(file.Data),
		}
	}

	if len(results) == 0 {
		ctx.RespondError(ererrors.InvalidRequestParam.WithMsg("no files uploaded"))
		return
	}

	ctx.Respond(entities.OKWithMessage("Files uploaded successfully", results))
}

// Delete removes a previously uploaded artifact.
func Delete(ctx api.Context) {
	artifactID := ctx.Params().Get("artifact_id")

	if err := getStore().Delete(artifactID); err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.Respond(entities.OKWithMessage("File deleted successfully", iris.Map{
		"artifact_id": artifactID,
	}))
}

func uploadSingle(ctx api.Context, field, folder string) {
	file, err := readFile(ctx, field)
	if err != nil {
		ctx.RespondError(err)
		return
	}
	if file == nil {
		ctx.RespondError(ererrors.InvalidRequestParam.WithMsg("no " + field + " file uploaded"))
		return
	}

	artifactID, err := getStore().Upload(file.Data, file.Name, folder)
	if err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.Respond(entities.OKWithMessage(field+" uploaded successfully", uploaded{
		ArtifactID:   artifactID,
		Folder:       folder,
		OriginalName: file.Name,
		Size:         len(file.Data),
	}))
}

func readFile(ctx api.Context, field string) (*docstore.File, error) {
	part, header, err := ctx.FormFile(field)
	if err != nil {
		return nil, nil
	}
	defer part.Close()

	data, err := ioutil.ReadAll(part)
	if err != nil {
		return nil, ererrors.RequestBodyLoadFailure.WithError(err)
	}

	return &docstore.File{Name: header.Filename, Data: data}, nil
}
