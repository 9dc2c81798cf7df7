package api

import (
	"encoding/json"
	"sync/atomic"

	"github.com/Favorjs/e-rights-backend/ererrors"
	"github.com/Favorjs/e-rights-backend/service/registry"
	"github.com/Favorjs/e-rights-backend/utils"
	"github.com/Favorjs/e-rights-backend/utils/db"
	"github.com/Favorjs/e-rights-backend/utils/log"
	"github.com/jinzhu/gorm"
	"github.com/kataras/iris"
)

// MIME types
const (
	charsetUTF8 = "charset=utf-8"
)
const (
	MIMEApplicationJSON            = "application/json"
	MIMEApplicationJSONCharsetUTF8 = MIMEApplicationJSON + "; " + charsetUTF8
	MIMEApplicationPDF             = "application/pdf"
	MIMETextCSV                    = "text/csv"
	MIMETextPlain                  = "text/plain"
	MIMETextPlainCharsetUTF8       = MIMETextPlain + "; " + charsetUTF8
)

type Context interface {
	iris.Context
	Services() registry.Registry
	Commit() error
	Rollback()
	Tx() *gorm.DB
	Respond(interface{})
	RespondWithStatus(interface{}, int)
	RespondWithContent(string, interface{})
	RespondError(error)
	Read(interface{}) error
}

type context struct {
	iris.Context
	services registry.Registry
	tx       *gorm.DB
	txClosed atomic.Value
}

func (ctx *context) Services() registry.Registry {
	return ctx.services
}

func (ctx *context) Commit() error {
	if !ctx.TxClosed() && ctx.tx != nil {
		ctx.txClosed.Store(true)
		log.Debug("api tx committed", "path", ctx.RequestPath(false))
		err := ctx.tx.Commit().Error
		ctx.tx = nil
		return err
	}
	return nil
}

func (ctx *context) Rollback() {
	if !ctx.TxClosed() && ctx.tx != nil {
		ctx.txClosed.Store(true)
		log.Debug("api tx rolled back", "path", ctx.RequestPath(false))
		if !db.IsConnectionError(ctx.tx.Error) {
			ctx.tx.Rollback()
		}
		ctx.tx = nil
	}
}

func (ctx *context) TxClosed() bool {
	if v := ctx.txClosed.Load(); v != nil && v.(bool) {
		return true
	}
	return false
}

func (ctx *context) Tx() *gorm.DB {
	if ctx.tx == nil || ctx.TxClosed() {
		log.Debug("api tx opened", "path", ctx.RequestPath(false))
		ctx.tx = db.Begin()

		if ctx.tx.Error != nil && db.IsConnectionError(ctx.tx.Error) {
			// Long idle connections can get killed at the tcp level by
			// in-between routers. Worth one reconnect attempt; if that
			// fails there is nothing useful left to do.
			if err := db.Reconnect(); err != nil {
				log.Panic("unable to connect to database", "error", err)
			}

			if ctx.tx = db.Begin(); ctx.tx.Error != nil {
				log.Panic("unable to begin database transaction", "error", ctx.tx.Error)
			}
		} else if ctx.tx.Error != nil {
			err := ctx.tx.Error
			ctx.tx = nil
			log.Panic("unrecoverable BEGIN failure", "error", err)
		}
		ctx.txClosed.Store(false)
	}

	return ctx.tx
}

func (ctx *context) Respond(body interface{}) {
	ctx.RespondWithStatus(body, iris.StatusOK)
}

func (ctx *context) RespondWithStatus(body interface{}, statusCode int) {
	ctx.StatusCode(statusCode)
	ctx.RespondWithContent(MIMEApplicationJSON, body)
}

func (ctx *context) RespondWithContent(contentType string, body interface{}) {
	if err := ctx.Commit(); err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.ContentType(contentType)

	if body != nil {
		switch b := body.(type) {
		case []byte:
			ctx.Write(b)
		default:
			ctx.JSON(body)
		}
	}
}

var masks = []string{
	"password",
	"bvn",
	"account_number",
}

func (ctx *context) RespondError(err error) {
	ctx.Rollback()

	if ererr, ok := err.(ererrors.IException); ok {
		ctx.StatusCode(ererr.ExceptionStatusCode())
		body := ererr.ExceptionBody()
		if !utils.Prod() {
			if ererr.RawException() != nil {
				body["debug"] = ererr.RawException().Error()
			}
		}
		ctx.JSON(body)
	} else {
		ctx.StatusCode(ererrors.InternalServerError.ExceptionStatusCode())
		ctx.JSON(ererrors.InternalServerError.ExceptionBody())
	}

	// Only status_code = 500 errors are tracked in detail.
	if ctx.GetStatusCode() != 500 {
		return
	}

	var reqBody string
	parsing := map[string]interface{}{}
	if err := ctx.Read(&parsing); err == nil {
		// credential fields must not reach the logs
		for i := range masks {
			if _, ok := parsing[masks[i]]; ok {
				parsing[masks[i]] = "xxx"
			}
		}
		reqBin, _ := json.Marshal(parsing)
		reqBody = string(reqBin)
	}

	log.Error(
		"http exception",
		"method", ctx.Request().Method,
		"url", ctx.Request().URL.String(),
		"error", ererrors.Format(err),
		"body", reqBody)
}

func (ctx *context) Read(v interface{}) error {
	if v == nil {
		return nil
	}
	return ctx.ReadJSON(v)
}
