package vcs

import (
	"context"
	"io"
)

// Reader is a history source backed by pre-formatted log output, such as
// piped `git log --pretty=format:` output. LogOpts are ignored; the records
// are returned as read.
type Reader struct {
	R io.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{R: r}
}

func (r *Reader) ReadRawCommits(ctx context.Context, opts LogOpts) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := io.ReadAll(r.R)
	if err != nil {
		return nil, err
	}
	return SplitRecords(string(b)), nil
}
