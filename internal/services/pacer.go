package services

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer is the process-global dispatch gate for the AI provider: at least
// minInterval between dispatch starts and at most one call in flight.
// Excess callers block in Acquire until their turn; nothing is rejected.
type Pacer struct {
	limiter *rate.Limiter
	slot    chan struct{}
}

func NewPacer(minInterval time.Duration) *Pacer {
	return &Pacer{
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
		slot:    make(chan struct{}, 1),
	}
}

// Acquire blocks until the caller may dispatch. Pair with Release.
func (p *Pacer) Acquire(ctx context.Context) error {
	select {
	case p.slot <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	if err := p.limiter.Wait(ctx); err != nil {
		<-p.slot
		return err
	}
	return nil
}

func (p *Pacer) Release() {
	<-p.slot
}
