package domain

import "context"

// ImageProber is a secondary port that reports whether an image path exists.
// Implementations are called once per candidate and never retried.
type ImageProber interface {
	Exists(ctx context.Context, path string) (bool, error)
}

// SubmissionSink is a secondary port that receives accepted contact forms.
type SubmissionSink interface {
	Deliver(ctx context.Context, sub Submission) error
}
