package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL 客户端多久没有请求后可以回收其令牌桶
const idleTTL = 10 * time.Minute

// sweepThreshold 客户端数量超过该值时,在请求路径上顺带清理空闲条目
const sweepThreshold = 1024

// ClientLimiter 按客户端(IP)区分的 QPS 限制器
// qps<=0 时不限制.没有后台协程,空闲条目在访问时惰性清理.
type ClientLimiter struct {
	qps     int
	mu      sync.Mutex
	clients map[string]*client
	now     func() time.Time
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewClientLimiter 创建限制器,允许短时间内突发 qps 个请求
func NewClientLimiter(qps int) *ClientLimiter {
	return &ClientLimiter{
		qps:     qps,
		clients: make(map[string]*client),
		now:     time.Now,
	}
}

// Enabled 是否启用限流
func (l *ClientLimiter) Enabled() bool {
	return l.qps > 0
}

// QPS 当前每个客户端的QPS限制,0 表示不限制
func (l *ClientLimiter) QPS() int {
	if l.qps <= 0 {
		return 0
	}
	return l.qps
}

// Allow 检查 key 对应的客户端是否允许当前请求,不阻塞
func (l *ClientLimiter) Allow(key string) bool {
	if !l.Enabled() {
		return true
	}

	now := l.now()

	l.mu.Lock()
	c, ok := l.clients[key]
	if !ok {
		if len(l.clients) >= sweepThreshold {
			l.sweepLocked(now)
		}
		c = &client{limiter: rate.NewLimiter(rate.Limit(l.qps), l.qps)}
		l.clients[key] = c
	}
	c.lastSeen = now
	l.mu.Unlock()

	return c.limiter.AllowN(now, 1)
}

// Len 当前跟踪的客户端数量
func (l *ClientLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func (l *ClientLimiter) sweepLocked(now time.Time) {
	for key, c := range l.clients {
		if now.Sub(c.lastSeen) > idleTTL {
			delete(l.clients, key)
		}
	}
}
