package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"autoviz-server/internal/logger"
	"autoviz-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips.Store(ip, &client{limiter: limiter, lastSeen: time.Now()})

	return limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	for {
		time.Sleep(1 * time.Minute)
		i.ips.Range(func(key, value interface{}) bool {
			client := value.(*client)
			if time.Since(client.lastSeen) > 3*time.Minute {
				i.ips.Delete(key)
			}
			return true
		})
	}
}

// RateLimitMiddleware 按 IP 限流。Redis 可用时跨实例共享窗口，出错时回退本地令牌桶。
func RateLimitMiddleware(name string, enabled bool, rps float64, burst int) gin.HandlerFunc {
	if !enabled || rps <= 0 || burst <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	local := NewIPRateLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		allowed := false
		if redisClient := service.GetRedisClient(); redisClient != nil {
			ok, err := allowByRedisRateLimit(redisClient, name, ip, rps, burst)
			if err == nil {
				allowed = ok
			} else {
				logger.Warningf("Redis 限流失败，回退本地限流: %v", err)
				allowed = local.getLimiter(ip).Allow()
			}
		} else {
			allowed = local.getLimiter(ip).Allow()
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁，请稍后再试"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// allowByRedisRateLimit 固定窗口计数：窗口长度 burst/rps 秒，窗口内最多 burst 次
func allowByRedisRateLimit(client *redis.Client, name, ip string, rps float64, burst int) (bool, error) {
	if client == nil || rps <= 0 || burst <= 0 {
		return true, nil
	}

	window := time.Duration(math.Ceil(float64(burst)/rps)) * time.Second
	if window < time.Second {
		window = time.Second
	}
	slot := time.Now().UnixNano() / int64(window)
	key := service.RedisKey("rate", name, ip, strconv.FormatInt(slot, 10))

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	pipe := client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= int64(burst), nil
}
