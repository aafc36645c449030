// Package ratelimiter は外部API呼び出しの頻度制御を提供します。
// Vision / Gemini のクォータ超過を避けるために使用されます。
package ratelimiter

import (
	"log/slog"
	"sync"
	"time"
)

// RateLimiter は一定間隔あたりの呼び出し回数を制限します。
// 上限に達した呼び出しは次の間隔まで待機します。
type RateLimiter struct {
	limit    int           // 1間隔あたりの呼び出し上限
	interval time.Duration // カウントをリセットする間隔

	mu        sync.Mutex
	count     int
	lastReset time.Time
}

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded は上限に達している場合、次の間隔まで待機します。
// 複数goroutineから同時に呼び出せます。
func (rl *RateLimiter) WaitIfNeeded() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			slog.Warn("rate limit reached, pausing external API calls",
				"limit", rl.limit, "sleep", sleep)
			time.Sleep(sleep)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}
