package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reoring/chatcard"
	"github.com/reoring/chatcard/middleware"
)

// ValidateMessage decodes the request body as a cardsV2 message with opt (or
// DefaultDecodeOpt when omitted), stores it in the request context on
// success, or returns 400 with Issues when decoding fails.
func ValidateMessage(opts ...chatcard.DecodeOpt) echo.MiddlewareFunc {
	return ValidateJSON[chatcard.Message](opts...)
}

// ValidateJSON is ValidateMessage for any document type, such as a single
// chatcard.Card.
func ValidateJSON[T any, PT chatcard.Document[T]](opts ...chatcard.DecodeOpt) echo.MiddlewareFunc {
	opt := middleware.DefaultDecodeOpt()
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			doc, payload := middleware.DecodeBody[T, PT](c.Request().Body, opt)
			if payload != nil {
				return c.JSON(http.StatusBadRequest, payload)
			}
			ctx := middleware.ContextWithDocument(c.Request().Context(), doc)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// GetMessage fetches the decoded message from echo.Context.
func GetMessage(c echo.Context) (*chatcard.Message, bool) {
	return GetDocument[chatcard.Message](c)
}

// GetDocument fetches a decoded *T from echo.Context.
func GetDocument[T any](c echo.Context) (*T, bool) {
	return middleware.DocumentFromContext[T](c.Request().Context())
}
