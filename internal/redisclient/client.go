package redisclient

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Client wraps a Redis client with OpenTelemetry tracing
type Client struct {
	cmdable redis.Cmdable
}

// NewClient creates a new traced Redis client for a single Redis instance
func NewClient(client *redis.Client) *Client {
	return &Client{cmdable: client}
}

// NewClusterClient creates a new traced Redis client for a Redis cluster
func NewClusterClient(client *redis.ClusterClient) *Client {
	return &Client{cmdable: client}
}

// startSpan opens a span for a Redis command and returns a finish callback
// that records duration and the command error.
func startSpan(ctx context.Context, op, key string) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := otel.Tracer("redis").Start(ctx, "redis."+op,
		trace.WithAttributes(
			attribute.String("redis.key", key),
			attribute.String("redis.operation", op),
			attribute.String("redis.client", "exegese-app"),
		),
	)
	return ctx, func(err error) {
		span.SetAttributes(attribute.Int64("redis.duration_ms", time.Since(start).Milliseconds()))
		if err != nil && err != redis.Nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "success")
		}
		span.End()
	}
}

// Get wraps Redis GET with tracing
func (c *Client) Get(ctx context.Context, key string) *redis.StringCmd {
	ctx, finish := startSpan(ctx, "get", key)
	cmd := c.cmdable.Get(ctx, key)
	finish(cmd.Err())
	return cmd
}

// Set wraps Redis SET with tracing
func (c *Client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	ctx, finish := startSpan(ctx, "set", key)
	cmd := c.cmdable.Set(ctx, key, value, expiration)
	finish(cmd.Err())
	return cmd
}

// Del wraps Redis DEL with tracing
func (c *Client) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	key := ""
	if len(keys) > 0 {
		key = keys[0]
	}
	ctx, finish := startSpan(ctx, "del", key)
	cmd := c.cmdable.Del(ctx, keys...)
	finish(cmd.Err())
	return cmd
}

// LPush wraps Redis LPUSH with tracing
func (c *Client) LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd {
	ctx, finish := startSpan(ctx, "lpush", key)
	cmd := c.cmdable.LPush(ctx, key, values...)
	finish(cmd.Err())
	return cmd
}

// RPop wraps Redis RPOP with tracing
func (c *Client) RPop(ctx context.Context, key string) *redis.StringCmd {
	ctx, finish := startSpan(ctx, "rpop", key)
	cmd := c.cmdable.RPop(ctx, key)
	finish(cmd.Err())
	return cmd
}

// LLen wraps Redis LLEN with tracing
func (c *Client) LLen(ctx context.Context, key string) *redis.IntCmd {
	ctx, finish := startSpan(ctx, "llen", key)
	cmd := c.cmdable.LLen(ctx, key)
	finish(cmd.Err())
	return cmd
}

// Keys wraps Redis KEYS with tracing
func (c *Client) Keys(ctx context.Context, pattern string) *redis.StringSliceCmd {
	ctx, finish := startSpan(ctx, "keys", pattern)
	cmd := c.cmdable.Keys(ctx, pattern)
	finish(cmd.Err())
	return cmd
}

// Ping wraps Redis PING with tracing
func (c *Client) Ping(ctx context.Context) *redis.StatusCmd {
	ctx, finish := startSpan(ctx, "ping", "")
	cmd := c.cmdable.Ping(ctx)
	finish(cmd.Err())
	return cmd
}
