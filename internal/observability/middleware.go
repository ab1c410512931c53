package observability

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TargetHeader names the fuzzing target served by this coordinator on every admin response.
const TargetHeader = "X-Fuzzing-Target"

// adminRoute returns the registered route, or the raw path for unmatched requests.
func adminRoute(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return c.Request.URL.Path
}

// RequestLogger logs admin requests. Prometheus scrapes and health probes log
// at trace level so a poller does not bury the coordinator's own output.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		route := adminRoute(c)

		var event *zerolog.Event
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		case route == "/metrics" || route == "/healthz":
			event = logger.Trace()
		default:
			event = logger.Debug()
		}

		event.
			Str("method", c.Request.Method).
			Str("route", route).
			Int("status", status).
			Dur("took", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("observability.admin request")
	}
}

// TargetMiddleware stamps the fuzzing target on responses and records
// request metrics under it.
func TargetMiddleware(target string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Header(TargetHeader, target)
		c.Next()

		RecordHTTPRequest(target, c.Request.Method, adminRoute(c), c.Writer.Status(), time.Since(start))
	}
}
