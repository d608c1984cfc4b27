package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tarifflens/tarifflens-api/internal/logger"
)

// bodyLogWriter wraps gin.ResponseWriter and captures the response body.
type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// RequestLogging logs request and response bodies in development mode.
// Disabled entirely outside development; request bodies may contain
// commercially sensitive declared values.
func RequestLogging(isDevelopment bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isDevelopment || logger.Log == nil {
			c.Next()
			return
		}

		start := time.Now()
		log := logger.Log.With(zap.String("correlation_id", GetCorrelationID(c)))

		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		var requestJSON interface{}
		if c.GetHeader("Content-Type") == "application/json" && len(requestBody) > 0 {
			if err := json.Unmarshal(requestBody, &requestJSON); err == nil {
				log.Debug("Request body", zap.String("dump", spew.Sdump(requestJSON)))
			}
		}

		writer := bodyLogWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		log.Info("Request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.Int("response_size", writer.body.Len()),
		)
	}
}
