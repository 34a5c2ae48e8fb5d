package mock

import (
	"context"

	"github.com/63kitsune/htmlgrep"
)

var _ htmlgrep.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of htmlgrep.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
