package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"newsdesk/internal/apperr"
)

// fail renders the translated error as the {"msg": ...} body every failure
// path uses. Unexpected errors are logged before the client sees a 500.
func fail(c *gin.Context, log *zap.Logger, err error) {
	status, msg, unexpected := apperr.Translate(err)
	if unexpected && log != nil {
		log.Error("unhandled error",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	c.JSON(status, gin.H{"msg": msg})
}

// bindBody decodes a JSON object body. An absent body decodes to an empty
// map so per-endpoint validators decide whether that is acceptable.
func bindBody(c *gin.Context) (map[string]any, error) {
	body := map[string]any{}
	if err := c.ShouldBindJSON(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, apperr.Invalid("Invalid request")
	}
	return body, nil
}
