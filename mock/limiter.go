package mock

import (
	"context"

	"gutenfreq"
)

var _ gutenfreq.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of gutenfreq.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
