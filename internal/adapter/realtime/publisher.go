package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
)

// Publisher pushes a dispatched notification to its recipient's live channel.
type Publisher interface {
	Publish(ctx context.Context, n model.Notification) error
}

// Channel names the per-user pub/sub channel.
func Channel(userID fmt.Stringer) string {
	return "notifications:" + userID.String()
}

type event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	OrderID   *string   `json:"orderId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func encode(n model.Notification) ([]byte, error) {
	e := event{
		ID:        n.ID.String(),
		Type:      string(n.Type),
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	}
	if n.OrderID != nil {
		id := n.OrderID.String()
		e.OrderID = &id
	}
	return json.Marshal(e)
}

type redisClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// RedisPublisher fans notifications out over Redis pub/sub.
type RedisPublisher struct {
	rdb    redisClient
	logger *slog.Logger
}

// NewRedisPublisher parses url and builds a publisher. No connection is made until first use.
func NewRedisPublisher(url string, logger *slog.Logger) (*RedisPublisher, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &RedisPublisher{rdb: redis.NewClient(opt), logger: logger}, nil
}

func (p *RedisPublisher) Publish(ctx context.Context, n model.Notification) error {
	payload, err := encode(n)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	receivers, err := p.rdb.Publish(ctx, Channel(n.UserID), payload).Result()
	if err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	p.logger.DebugContext(ctx, "notification published",
		slog.String("notification_id", n.ID.String()),
		slog.Int64("receivers", receivers),
	)
	return nil
}

// Ping checks the Redis connection.
func (p *RedisPublisher) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}

func (p *RedisPublisher) Close() error {
	return p.rdb.Close()
}

// LogPublisher only logs notifications; it serves deployments without Redis.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher constructs LogPublisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, n model.Notification) error {
	p.logger.InfoContext(ctx, "notification",
		slog.String("user_id", n.UserID.String()),
		slog.String("type", string(n.Type)),
		slog.String("message", n.Message),
	)
	return nil
}
