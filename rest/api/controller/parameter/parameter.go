package parameter

import (
	"strconv"

	"github.com/Favorjs/e-rights-backend/ererrors"
	"github.com/Favorjs/e-rights-backend/rest/api"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// GetPage returns the 1-based page number from the query string.
func GetPage(ctx api.Context) int {
	page, err := strconv.Atoi(ctx.URLParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// GetLimit returns the page size from the query string, capped to keep a
// single request from dragging the whole table over the wire.
func GetLimit(ctx api.Context) int {
	limit, err := strconv.Atoi(ctx.URLParam("limit"))
	if err != nil || limit < 1 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

// GetParamShareholderID parses the shareholder id path parameter.
func GetParamShareholderID(ctx api.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params().Get(name), 10, 64)
	if err != nil || id == 0 {
		return 0, ererrors.InvalidRequestParam.WithMsg("invalid shareholder id")
	}
	return uint(id), nil
}
