package summarizer

import (
	"net/http"
	"time"

	"review-insight/config"
	"review-insight/trace"
)

// loggingRoundTripper logs outbound model calls and forwards the request id.
// The query string is never logged because it may carry the API key.
type loggingRoundTripper struct {
	inner http.RoundTripper
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	requestID, spanID := trace.NextSpanID(req.Context())
	req = req.Clone(req.Context())
	req.Header.Set("X-Request-Id", requestID)
	req.Header.Set("X-Span-Id", spanID)

	resp, err := l.inner.RoundTrip(req)
	duration := time.Since(start)

	fields := config.Fields{
		"method":     req.Method,
		"host":       req.URL.Host,
		"path":       req.URL.Path,
		"duration":   duration.String(),
		"request_id": requestID,
		"span_id":    spanID,
	}
	if err != nil {
		fields["error"] = err.Error()
		config.ErrorWithFields("llm request failed", fields)
		return nil, err
	}

	fields["status"] = resp.StatusCode
	config.DebugWithFields("llm request success", fields)
	return resp, nil
}
