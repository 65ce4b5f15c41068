package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxLoggedField caps long string fields such as diff before they hit the logs
const maxLoggedField = 512

var sensitiveHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
	"X-Api-Key":     true,
}

// bodyLogWriter is a wrapper around gin.ResponseWriter that captures the response body
type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// EnhancedLoggingMiddleware logs request and response bodies in development.
// Long string fields are truncated and credential headers redacted.
func EnhancedLoggingMiddleware(isDevelopment bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isDevelopment {
			c.Next()
			return
		}

		startTime := time.Now()
		log := LogWithCorrelationID(c.Request.Context())

		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(requestBody))
		}

		log.Debug("Detailed request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Any("headers", redactHeaders(c.Request.Header)),
			zap.Any("body", summarizeJSON(c.ContentType(), requestBody)),
			zap.Int("body_size", len(requestBody)),
		)

		blw := &bodyLogWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		log.Debug("Detailed response",
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.Any("body", summarizeJSON(c.Writer.Header().Get("Content-Type"), blw.body.Bytes())),
			zap.Int("body_size", blw.body.Len()),
		)

		for _, err := range c.Errors {
			log.Error("Request error", zap.Error(err.Err), zap.Any("meta", err.Meta))
		}
	}
}

// RequestLoggingMiddleware logs one line per completed request
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}

		log := LogWithCorrelationID(c.Request.Context())
		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error("Request completed", fields...)
		case status >= 400:
			log.Warn("Request completed", fields...)
		default:
			log.Info("Request completed", fields...)
		}
	}
}

func redactHeaders(h map[string][]string) map[string]string {
	out := make(map[string]string, len(h))
	for key, values := range h {
		if sensitiveHeaders[key] {
			out[key] = "[REDACTED]"
			continue
		}
		if len(values) > 0 {
			out[key] = values[0]
		}
	}
	return out
}

// summarizeJSON decodes a JSON body and truncates long string values
func summarizeJSON(contentType string, body []byte) interface{} {
	if len(body) == 0 || !strings.HasPrefix(contentType, "application/json") {
		return nil
	}
	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return truncateField(string(body))
	}
	return truncateStrings(decoded)
}

func truncateStrings(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, val := range t {
			t[k] = truncateStrings(val)
		}
		return t
	case []interface{}:
		for i, val := range t {
			t[i] = truncateStrings(val)
		}
		return t
	case string:
		return truncateField(t)
	default:
		return v
	}
}

func truncateField(s string) string {
	if len(s) <= maxLoggedField {
		return s
	}
	return s[:maxLoggedField] + "...(truncated)"
}
