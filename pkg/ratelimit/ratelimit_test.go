package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestSlidingWindow_Allow(t *testing.T) {
	sw := NewSlidingWindow(3, time.Second)
	for i := 0; i < 3; i++ {
		if !sw.Allow() {
			t.Fatalf("第 %d 次请求应被允许", i+1)
		}
	}
	if sw.Allow() {
		t.Error("超出限额的请求不应被允许")
	}
	if sw.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", sw.Remaining())
	}
}

func TestSlidingWindow_WindowSlides(t *testing.T) {
	sw := NewSlidingWindow(1, 50*time.Millisecond)
	if !sw.Allow() {
		t.Fatal("首次请求应被允许")
	}
	if sw.Allow() {
		t.Fatal("窗口内第二次请求不应被允许")
	}
	time.Sleep(60 * time.Millisecond)
	if !sw.Allow() {
		t.Error("窗口滑过后请求应被允许")
	}
}

func TestSlidingWindow_WaitRespectsContext(t *testing.T) {
	sw := NewSlidingWindow(1, time.Minute)
	if !sw.Allow() {
		t.Fatal("首次请求应被允许")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := sw.Wait(ctx); err == nil {
		t.Error("配额耗尽且 ctx 超时后 Wait 应报错")
	}
}

func TestPrivateLimiter_ReadWriteSeparate(t *testing.T) {
	p := NewPrivateLimiter()
	ctx := context.Background()
	if err := p.WaitRead(ctx); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := p.WaitWrite(ctx); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.read.Remaining() != defaultReadLimit-1 {
		t.Errorf("读配额 = %d, want %d", p.read.Remaining(), defaultReadLimit-1)
	}
	if p.write.Remaining() != defaultWriteLimit-1 {
		t.Errorf("写配额 = %d, want %d", p.write.Remaining(), defaultWriteLimit-1)
	}
}
