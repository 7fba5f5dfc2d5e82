package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reoring/chatcard"
	"github.com/reoring/chatcard/middleware"
)

// ValidateMessage decodes the request body as a cardsV2 message with opt (or
// DefaultDecodeOpt when omitted), stores it in the request context, and on
// failure aborts with 400 and the Issues payload.
func ValidateMessage(opts ...chatcard.DecodeOpt) gin.HandlerFunc {
	return ValidateJSON[chatcard.Message](opts...)
}

// ValidateJSON is ValidateMessage for any document type.
func ValidateJSON[T any, PT chatcard.Document[T]](opts ...chatcard.DecodeOpt) gin.HandlerFunc {
	opt := middleware.DefaultDecodeOpt()
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return func(c *gin.Context) {
		doc, payload := middleware.DecodeBody[T, PT](c.Request.Body, opt)
		if payload != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, payload)
			return
		}
		// store decoded in request context
		c.Request = c.Request.WithContext(middleware.ContextWithDocument(c.Request.Context(), doc))
		c.Next()
	}
}

// GetMessage fetches the decoded message from gin.Context.
func GetMessage(c *gin.Context) (*chatcard.Message, bool) {
	return middleware.DocumentFromContext[chatcard.Message](c.Request.Context())
}
