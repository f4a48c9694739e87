package realtime

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/GuiiMoreira/jobah-api/internal/config"
	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	testhelpers "github.com/GuiiMoreira/jobah-api/internal/test"
)

type redisStub struct {
	channel    string
	payload    []byte
	publishErr error
	pingErr    error
	closed     bool
}

func (s *redisStub) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	s.channel = channel
	s.payload, _ = message.([]byte)
	cmd := redis.NewIntCmd(ctx)
	if s.publishErr != nil {
		cmd.SetErr(s.publishErr)
	} else {
		cmd.SetVal(1)
	}
	return cmd
}

func (s *redisStub) Ping(ctx context.Context) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	if s.pingErr != nil {
		cmd.SetErr(s.pingErr)
	}
	return cmd
}

func (s *redisStub) Close() error {
	s.closed = true
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestRedisPublisherPublishesToUserChannel(t *testing.T) {
	stub := &redisStub{}
	pub := &RedisPublisher{rdb: stub, logger: testLogger()}
	orderID := uuid.New()
	n := model.Notification{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Type:      model.NotificationPaymentReleased,
		Message:   "paid",
		OrderID:   &orderID,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := pub.Publish(context.Background(), n); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.channel != "notifications:"+n.UserID.String() {
		t.Fatalf("unexpected channel %q", stub.channel)
	}

	var got map[string]any
	if err := json.Unmarshal(stub.payload, &got); err != nil {
		t.Fatalf("payload is not json: %v", err)
	}
	if got["type"] != string(model.NotificationPaymentReleased) || got["orderId"] != orderID.String() {
		t.Fatalf("unexpected payload %v", got)
	}
}

func TestRedisPublisherOmitsMissingOrder(t *testing.T) {
	stub := &redisStub{}
	pub := &RedisPublisher{rdb: stub, logger: testLogger()}
	if err := pub.Publish(context.Background(), model.Notification{ID: uuid.New(), UserID: uuid.New()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bytes.Contains(stub.payload, []byte("orderId")) {
		t.Fatalf("expected orderId to be omitted, got %s", stub.payload)
	}
}

func TestRedisPublisherWrapsErrors(t *testing.T) {
	boom := errors.New("connection refused")
	stub := &redisStub{publishErr: boom, pingErr: boom}
	pub := &RedisPublisher{rdb: stub, logger: testLogger()}

	err := pub.Publish(context.Background(), model.Notification{ID: uuid.New(), UserID: uuid.New()})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped redis error, got %v", err)
	}
	if err := pub.Ping(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected ping error, got %v", err)
	}
	if err := pub.Close(); err != nil || !stub.closed {
		t.Fatal("expected client to be closed")
	}
}

func TestNewRedisPublisherValidatesURL(t *testing.T) {
	if _, err := NewRedisPublisher("not a url", testLogger()); err == nil {
		t.Fatal("expected parse error")
	}
	pub, err := NewRedisPublisher("redis://localhost:6379/0", testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = pub.Close()
}

func TestLogPublisherWritesEntry(t *testing.T) {
	var buf bytes.Buffer
	pub := NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))
	if err := pub.Publish(context.Background(), model.Notification{UserID: uuid.New(), Type: model.NotificationNewOrder, Message: "hello"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "NEW_ORDER") {
		t.Fatalf("expected notification type in log, got %s", buf.String())
	}
}

func TestNewPublisherSelectsImplementation(t *testing.T) {
	lc := &testhelpers.LifecycleRecorder{}
	pub, err := newPublisher(publisherParams{Lifecycle: lc, Config: &config.Config{}, Logger: testLogger()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := pub.(*LogPublisher); !ok {
		t.Fatalf("expected log publisher, got %T", pub)
	}
	if len(lc.Hooks) != 0 {
		t.Fatal("log publisher needs no lifecycle hooks")
	}

	pub, err = newPublisher(publisherParams{Lifecycle: lc, Config: &config.Config{RedisURL: "redis://localhost:6379/0"}, Logger: testLogger()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := pub.(*RedisPublisher); !ok {
		t.Fatalf("expected redis publisher, got %T", pub)
	}
	if len(lc.Hooks) != 1 || lc.Hooks[0].OnStop == nil {
		t.Fatal("expected close hook")
	}
	if err := lc.Stop(context.Background()); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	if _, err := newPublisher(publisherParams{Lifecycle: lc, Config: &config.Config{RedisURL: "::"}, Logger: testLogger()}); err == nil {
		t.Fatal("expected error for bad url")
	}
}
