package middleware

import (
	"log/slog"
	"net/http"

	"atlas-hotel/internal/handler/httperr"
	"atlas-hotel/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLines = 12

// ErrorHandler renders errors handlers attached with c.Error but did not
// write. Public errors carry their response in Meta; anything else becomes a
// 500 server_error and is logged with its stack.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		last := c.Errors.Last()

		if resp, ok := last.Meta.(httperr.Response); ok && last.IsType(gin.ErrorTypePublic) {
			if resp.Status >= http.StatusInternalServerError {
				logServerError(c, last.Err)
			}
			if !c.Writer.Written() {
				c.JSON(resp.Status, resp)
			}
			return
		}

		logServerError(c, last.Err)
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, httperr.Response{Error: httperr.CodeServerError})
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logServerError(c, errs.Newf("panic: %v", rec))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.Response{Status: http.StatusInternalServerError, Error: httperr.CodeServerError})
			}
		}()
		c.Next()
	}
}

func logServerError(c *gin.Context, err error) {
	slog.Error("request failed",
		slog.String("request_id", GetRequestID(c)),
		slog.String("path", c.Request.URL.Path),
		slog.String("error", err.Error()),
		slog.Any("stack", errs.ExtractStackLines(err, stackLines)),
	)
}
