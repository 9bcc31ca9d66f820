package echox

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/pawhub/pawhub/errors"
	"github.com/pawhub/pawhub/models/dto"
)

// Response in order to unify the returned response structure
type Response struct {
	Code      int             `json:"-"`
	Pretty    bool            `json:"-"`
	BizCode   string          `json:"code"`
	Data      interface{}     `json:"data,omitempty"`
	Page      *dto.Pagination `json:"page,omitempty"`
	PageItems []dto.PageItem  `json:"pageItems,omitempty"`
	Message   interface{}     `json:"message"`
}

// JSON sends the response with its status code.
func (a Response) JSON(ctx echo.Context) error {
	if a.Message == "" || a.Message == nil {
		a.Message = http.StatusText(a.Code)
	}

	if err, ok := a.Message.(error); ok {
		if status := errors.HTTPStatusCode(err); status != 0 {
			a.Code = status
		}
		a.Message = err.Error()
	}

	// business code: "00000" for success, "A" otherwise
	if a.BizCode == "" {
		if a.Code == http.StatusOK {
			a.BizCode = "00000"
		} else {
			a.BizCode = "A"
		}
	}

	if a.Pretty {
		return ctx.JSONPretty(a.Code, a, "\t")
	}

	return ctx.JSON(a.Code, a)
}

// OK returns a success response
func OK(ctx echo.Context, data interface{}) error {
	return Response{Code: http.StatusOK, Data: data}.JSON(ctx)
}

// OKWithPage returns a success response with page metadata and the
// computed pagination window
func OKWithPage(ctx echo.Context, data interface{}, page *dto.Pagination, withEllipsis bool) error {
	resp := Response{Code: http.StatusOK, Data: data, Page: page}
	if page != nil {
		resp.PageItems = page.PageWindow(withEllipsis)
	}
	return resp.JSON(ctx)
}

// Fail returns a failure response; the status code comes from the error
// registry when the error is a known sentinel
func Fail(ctx echo.Context, err error) error {
	return Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
}

// FailWithCode returns a failure response with an explicit status code
func FailWithCode(ctx echo.Context, code int, err error) error {
	return Response{Code: code, Message: err}.JSON(ctx)
}

// GetTrx fetches the per-request database transaction, nil outside the
// core middleware (SQLite, websocket)
func GetTrx(ctx echo.Context, key string) *gorm.DB {
	if trx, ok := ctx.Get(key).(*gorm.DB); ok {
		return trx
	}
	return nil
}

// GetPathID parses a numeric path parameter
func GetPathID(ctx echo.Context, param string) (uint64, error) {
	return strconv.ParseUint(ctx.Param(param), 10, 64)
}
