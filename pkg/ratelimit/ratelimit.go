// Package ratelimit 提供客户端侧的请求限速
// 交易所按 10 秒窗口计数，客户端侧先行限速可以把 429 挡在发出之前
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter 速率限制器
type Limiter interface {
	// Wait 阻塞到允许下一次请求或 ctx 取消
	Wait(ctx context.Context) error
	// Allow 非阻塞检查
	Allow() bool
	// Remaining 当前窗口剩余配额
	Remaining() int
}

// SlidingWindow 滑动窗口限速器
// 记录窗口内每次请求的时间戳，与服务端的计数方式一致
type SlidingWindow struct {
	limit      int
	windowSize time.Duration
	requests   []time.Time
	mu         sync.Mutex
}

// NewSlidingWindow 创建滑动窗口限速器
func NewSlidingWindow(limit int, windowSize time.Duration) *SlidingWindow {
	return &SlidingWindow{
		limit:      limit,
		windowSize: windowSize,
	}
}

// evict 丢弃窗口外的时间戳，调用方必须持有锁
func (sw *SlidingWindow) evict(now time.Time) {
	cutoff := now.Add(-sw.windowSize)
	kept := sw.requests[:0]
	for _, ts := range sw.requests {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	sw.requests = kept
}

// Allow 检查并占用一个配额
func (sw *SlidingWindow) Allow() bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	now := time.Now()
	sw.evict(now)
	if len(sw.requests) >= sw.limit {
		return false
	}
	sw.requests = append(sw.requests, now)
	return true
}

// Wait 阻塞到配额可用
func (sw *SlidingWindow) Wait(ctx context.Context) error {
	for {
		if sw.Allow() {
			return nil
		}

		sw.mu.Lock()
		waitTime := 100 * time.Millisecond
		if len(sw.requests) > 0 {
			waitTime = sw.windowSize - time.Since(sw.requests[0])
		}
		sw.mu.Unlock()
		if waitTime <= 0 {
			waitTime = 100 * time.Millisecond
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

// Remaining 当前窗口剩余配额
func (sw *SlidingWindow) Remaining() int {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	sw.evict(time.Now())
	if left := sw.limit - len(sw.requests); left > 0 {
		return left
	}
	return 0
}

// 私有 API 的默认限额，按 10 秒窗口
const (
	defaultReadLimit  = 175
	defaultWriteLimit = 100
	defaultWindow     = 10 * time.Second
)

// PrivateLimiter 私有 API 的分类限速器
// 读写分开计数：批量查询不应该挤占下单撤单的配额
type PrivateLimiter struct {
	read  Limiter
	write Limiter
}

// NewPrivateLimiter 按默认限额创建私有 API 限速器
func NewPrivateLimiter() *PrivateLimiter {
	return &PrivateLimiter{
		read:  NewSlidingWindow(defaultReadLimit, defaultWindow),
		write: NewSlidingWindow(defaultWriteLimit, defaultWindow),
	}
}

// WaitRead 等待一个读配额
func (p *PrivateLimiter) WaitRead(ctx context.Context) error {
	return p.read.Wait(ctx)
}

// WaitWrite 等待一个写配额
func (p *PrivateLimiter) WaitWrite(ctx context.Context) error {
	return p.write.Wait(ctx)
}
