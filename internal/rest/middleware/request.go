package middleware

import (
	"context"

	"github.com/flexcart/flexcart/internal/types"
	"github.com/gin-gonic/gin"
)

// HeaderRequestID is the header carrying the request id on responses.
const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware attaches a request id to the context and the response
// headers, generating one when the client did not send one.
func RequestIDMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	requestID := c.GetHeader(HeaderRequestID)
	if requestID == "" {
		requestID = types.GenerateShortID()
	}

	ctx = context.WithValue(ctx, types.CtxRequestID, requestID)
	c.Request = c.Request.WithContext(ctx)
	c.Header(HeaderRequestID, requestID)

	c.Next()
}
