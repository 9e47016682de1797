package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mifimn/portfolio/internal/logging"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// quietPrefixes are served without a request log line.
var quietPrefixes = []string{"/static/", "/assets/", "/favicon", "/healthz"}

// clientHasher turns client addresses into short salted digests. The salt is
// regenerated per process, so digests correlate requests only within one run.
type clientHasher struct {
	salt string
}

func newClientHasher() (*clientHasher, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return &clientHasher{salt: hex.EncodeToString(b)}, nil
}

func (h *clientHasher) hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// requestLogger tags each request with an id, attaches a request-scoped logger
// to the request context and logs the outcome. Do Not Track requests are
// logged without the client digest.
func requestLogger(base *log.Logger, hasher *clientHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)

		logger := base.With("request_id", id)
		c.Request = c.Request.WithContext(logging.WithLogger(c.Request.Context(), logger))

		path := c.Request.URL.Path
		for _, p := range quietPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}

		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).Round(time.Microsecond),
		}
		if c.GetHeader("DNT") != "1" {
			fields = append(fields, "client", hasher.hash(c.ClientIP()))
		}
		if len(c.Errors) > 0 {
			logger.Error("request failed", append(fields, "err", c.Errors.String())...)
			return
		}
		logger.Info("request", fields...)
	}
}
