package progress

import (
	"context"
	"errors"
	"time"
)

// ErrCancelled is returned by any stage that stopped because its
// Communicator asked it to.
var ErrCancelled = errors.New("progress: operation cancelled")

// DefaultInterval is the polling interval used when none is configured.
const DefaultInterval = 500 * time.Millisecond

// Communicator reports progress to, and takes cancellation from, a caller.
// Implementations must be safe for use from the goroutine running the stage.
type Communicator interface {
	SetSteps(n int)
	SetRecord(i int)
	Cancelled() bool
}

type nop struct{}

func (nop) SetSteps(int)    {}
func (nop) SetRecord(int)   {}
func (nop) Cancelled() bool { return false }

// Nop returns a Communicator that ignores progress and never cancels.
func Nop() Communicator { return nop{} }

type ctxComm struct {
	Communicator
	ctx context.Context
}

func (c ctxComm) Cancelled() bool {
	if c.ctx.Err() != nil {
		return true
	}
	return c.Communicator.Cancelled()
}

// FromContext returns a Communicator that cancels once ctx is done.
func FromContext(ctx context.Context) Communicator {
	return WithContext(ctx, nil)
}

// WithContext joins ctx to comm: the result cancels when either does.
// A nil comm behaves like Nop; a nil ctx leaves comm as is.
func WithContext(ctx context.Context, comm Communicator) Communicator {
	if comm == nil {
		comm = Nop()
	}
	if ctx == nil {
		return comm
	}
	return ctxComm{Communicator: comm, ctx: ctx}
}

// Poller consults a Communicator at most once per interval.
// The zero interval consults it on every call.
type Poller struct {
	comm     Communicator
	interval time.Duration
	last     time.Time
}

// NewPoller returns a Poller over comm (nil means Nop).
func NewPoller(comm Communicator, interval time.Duration) *Poller {
	if comm == nil {
		comm = Nop()
	}
	return &Poller{comm: comm, interval: interval, last: time.Now()}
}

// Steps announces the total number of records of the current stage.
func (p *Poller) Steps(n int) { p.comm.SetSteps(n) }

// Poll posts record and reports ErrCancelled if the communicator asks to
// stop. Between intervals it returns nil without contacting the communicator.
func (p *Poller) Poll(record int) error {
	if p.interval > 0 {
		now := time.Now()
		if now.Sub(p.last) < p.interval {
			return nil
		}
		p.last = now
	}
	p.comm.SetRecord(record)
	if p.comm.Cancelled() {
		return ErrCancelled
	}
	return nil
}
