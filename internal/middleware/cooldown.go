package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/keshon/commandgate/pkg/cmd"
)

// Cooldown limits how many commands each sender may run per minute. One
// Cooldown is shared by all commands it wraps.
type Cooldown struct {
	perMinute int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewCooldown returns a Cooldown allowing perMinute commands per sender,
// with bursts of the same size. perMinute <= 0 disables it.
func NewCooldown(perMinute int) *Cooldown {
	return &Cooldown{
		perMinute: perMinute,
		limiters:  make(map[string]*rate.Limiter),
	}
}

func (c *Cooldown) limiter(key string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.limiters[key]
	if !ok {
		l = rate.NewLimiter(rate.Every(time.Minute/time.Duration(c.perMinute)), c.perMinute)
		c.limiters[key] = l
	}
	return l
}

// Allow reports whether sender may run a command now, using up one token.
func (c *Cooldown) Allow(sender cmd.Sender) bool {
	if c == nil || c.perMinute <= 0 {
		return true
	}
	id, scope := identify(sender)
	return c.limiter(scope + "/" + id).Allow()
}

// Remaining reports how many commands sender can run right away.
func (c *Cooldown) Remaining(sender cmd.Sender) int {
	if c == nil || c.perMinute <= 0 {
		return -1
	}
	id, scope := identify(sender)
	return int(c.limiter(scope + "/" + id).Tokens())
}

// Middleware refuses runs over the limit with a message to the sender.
func (c *Cooldown) Middleware() cmd.Middleware {
	return func(e cmd.Executor) cmd.Executor {
		return cmd.Wrap(e, func(ctx context.Context, inv *cmd.Invocation) error {
			if !c.Allow(inv.Sender) {
				inv.Sender.SendMessage(fmt.Sprintf("Slow down! You can run %d commands per minute.", c.perMinute))
				return nil
			}
			return e.Execute(ctx, inv)
		})
	}
}
