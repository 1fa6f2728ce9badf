package fio

import "time"

const (
	initialRetryMs = 100
	maxRetryMs     = 3000
)

// RetryBackoff is the per-request retry budget. The zero value never retries;
// the default schedule starts at 100ms and doubles until the next delay would
// reach 3000ms, which ends the sequence.
type RetryBackoff struct {
	delayMs int64
}

// Never returns a backoff that refuses all retries.
func Never() RetryBackoff {
	return RetryBackoff{}
}

// RetryAfter returns a backoff whose next retry waits the given delay.
func RetryAfter(ms int64) RetryBackoff {
	return RetryBackoff{delayMs: ms}
}

// DefaultBackoff is the schedule applied to rate-limited responses.
func DefaultBackoff() RetryBackoff {
	return RetryAfter(initialRetryMs)
}

// Active reports whether another retry may be attempted.
func (b RetryBackoff) Active() bool {
	return b.delayMs > 0
}

// Delay returns the wait before the next attempt.
func (b RetryBackoff) Delay() time.Duration {
	return time.Duration(b.delayMs) * time.Millisecond
}

// Next advances the schedule. Doubling to 3000ms or beyond terminates it.
func (b RetryBackoff) Next() RetryBackoff {
	if b.delayMs == 0 {
		return Never()
	}
	next := b.delayMs * 2
	if next >= maxRetryMs {
		return Never()
	}
	return RetryAfter(next)
}
