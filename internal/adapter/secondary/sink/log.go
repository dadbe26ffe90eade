package sink

import (
	"context"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"folio/internal/domain"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// Sanitize strips markup from a submitted value.
func Sanitize(raw string) string {
	return strings.TrimSpace(sanitizer().Sanitize(raw))
}

// LogSink implements domain.SubmissionSink by logging the submission.
// Nothing is stored; delivery is simulated.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a sink writing to logger.
func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSink{logger: logger}
}

var _ domain.SubmissionSink = (*LogSink)(nil)

// Deliver logs the submission. Field values are personal data and only
// appear, sanitised, at debug level.
func (s *LogSink) Deliver(ctx context.Context, sub domain.Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Info("contact submission received",
		zap.String("session", sub.SessionID),
		zap.Time("submittedAt", sub.SubmittedAt),
	)
	if ce := s.logger.Check(zap.DebugLevel, "contact submission fields"); ce != nil {
		fields := []zap.Field{zap.String("session", sub.SessionID)}
		for _, f := range domain.Fields {
			fields = append(fields, zap.String(string(f), Sanitize(sub.Values[f])))
		}
		ce.Write(fields...)
	}
	return nil
}
