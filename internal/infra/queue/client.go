package queue

import (
	"context"
	"strings"

	"cuponera-backend/internal/pkg/config"

	"github.com/hibiken/asynq"
)

const (
	DefaultQueue = "default"
	maxRetry     = 5
)

// Client wraps asynq. A disabled client accepts every task and drops it.
type Client struct {
	client  *asynq.Client
	enabled bool
}

func NewClient(cfg config.QueueConfig) *Client {
	if !cfg.Enabled {
		return &Client{enabled: false}
	}
	return &Client{client: asynq.NewClient(RedisOpt(cfg)), enabled: true}
}

func (c *Client) Enabled() bool {
	return c != nil && c.enabled && c.client != nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *Client) EnqueueEmail(ctx context.Context, payload SendEmailPayload) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewSendEmailTask(payload)
	if err != nil {
		return err
	}
	_, err = c.client.EnqueueContext(ctx, task, asynq.Queue(DefaultQueue), asynq.MaxRetry(maxRetry))
	return err
}

func (c *Client) EnqueuePush(ctx context.Context, payload PushNotificationPayload) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewPushNotificationTask(payload)
	if err != nil {
		return err
	}
	_, err = c.client.EnqueueContext(ctx, task, asynq.Queue(DefaultQueue), asynq.MaxRetry(maxRetry))
	return err
}

func RedisOpt(cfg config.QueueConfig) asynq.RedisClientOpt {
	addr := strings.TrimSpace(cfg.RedisAddr)
	if addr == "" {
		addr = "127.0.0.1:6379"
	}
	return asynq.RedisClientOpt{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func ServerConfig(cfg config.QueueConfig) asynq.Config {
	concurrency := 10
	if cfg.Concurrency > 0 {
		concurrency = cfg.Concurrency
	}
	return asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{DefaultQueue: 1},
	}
}
