// Package quota rate-limits calls to the narrative generation model.
package quota

import (
	"context"
	"sync"
	"time"

	"review-insight/config"
)

// Limiter enforces per-minute spacing and a daily cap on LLM calls. Counters
// live in memory and reset on restart.
type Limiter struct {
	mu sync.Mutex

	dailyLimit int
	usedToday  int
	dayKey     string

	interval time.Duration
	lastCall time.Time

	now func() time.Time
}

// NewLimiterFromConfig builds a Limiter from the llm_quota section. Values of
// 0 or less disable the corresponding limit.
func NewLimiterFromConfig(cfg config.AppConfig) *Limiter {
	return NewLimiter(cfg.LLMQuota.RequestsPerMinute, cfg.LLMQuota.RequestsPerDay)
}

func NewLimiter(requestsPerMinute, requestsPerDay int) *Limiter {
	if requestsPerDay < 0 {
		requestsPerDay = 0
	}

	var interval time.Duration
	if requestsPerMinute > 0 {
		interval = time.Minute / time.Duration(requestsPerMinute)
	}

	return &Limiter{
		dailyLimit: requestsPerDay,
		interval:   interval,
		now:        time.Now,
	}
}

// WaitAndReserve blocks until a call may be made and reserves it.
//   - daily cap reached: (false, nil), the caller should skip the LLM call.
//   - context cancelled while waiting: (false, ctx.Err()).
func (l *Limiter) WaitAndReserve(ctx context.Context) (bool, error) {
	for {
		l.mu.Lock()

		now := l.now().UTC()
		todayKey := now.Format("2006-01-02")
		if l.dayKey != todayKey {
			l.dayKey = todayKey
			l.usedToday = 0
		}

		if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
			l.mu.Unlock()
			return false, nil
		}

		var delay time.Duration
		if l.interval > 0 && !l.lastCall.IsZero() {
			delay = l.lastCall.Add(l.interval).Sub(now)
		}

		if delay <= 0 {
			l.usedToday++
			l.lastCall = now
			l.mu.Unlock()
			return true, nil
		}

		l.mu.Unlock()
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}

// Remaining reports how many calls are left today, or -1 when unlimited.
func (l *Limiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.dailyLimit <= 0 {
		return -1
	}
	if l.dayKey != l.now().UTC().Format("2006-01-02") {
		return l.dailyLimit
	}
	return l.dailyLimit - l.usedToday
}
