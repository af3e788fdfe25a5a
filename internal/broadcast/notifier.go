// Package broadcast pushes store changes to Centrifugo subscribers.
package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/centrifugal/gocent"
	"github.com/m3terscan/m3terscan-backend/internal/store"
	"go.uber.org/zap"
)

const (
	DefaultChannel = "m3terscan"

	publishTimeout = 3 * time.Second
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Publisher sends a message to a channel; *gocent.Client satisfies it.
	Publisher interface {
		Publish(ctx context.Context, channel string, data []byte) error
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Config describes the Centrifugo HTTP API.
type Config struct {
	Addr    string
	Key     string
	Channel string
}

// Message is the payload published on every change.
type Message struct {
	Resource store.Resource `json:"resource"`
	State    store.State    `json:"state"`
}

// Notifier implements store.Notifier.
type Notifier struct {
	publisher Publisher
	channel   string
	metrics   Metrics
	logger    *zap.Logger
}

// NewCentrifugo connects a Notifier to the Centrifugo API at cfg.Addr.
func NewCentrifugo(cfg Config, metrics Metrics, logger *zap.Logger) (*Notifier, error) {
	if cfg.Addr == "" {
		return nil, errors.New("centrifugo address is required")
	}
	client := gocent.New(gocent.Config{
		Addr: cfg.Addr,
		Key:  cfg.Key,
	})
	return NewNotifier(client, cfg.Channel, metrics, logger)
}

func NewNotifier(publisher Publisher, channel string, metrics Metrics, logger *zap.Logger) (*Notifier, error) {
	if publisher == nil {
		return nil, errors.New("broadcast publisher is required")
	}
	if metrics == nil {
		return nil, errors.New("broadcast metrics is required")
	}
	if channel == "" {
		channel = DefaultChannel
	}
	return &Notifier{
		publisher: publisher,
		channel:   channel,
		metrics:   metrics,
		logger:    logger.Named("broadcast").With(zap.String("channel", channel)),
	}, nil
}

// Notify publishes the state snapshot. Failures are logged and never reach the store.
func (n *Notifier) Notify(ctx context.Context, resource store.Resource, state store.State) {
	msg, err := json.Marshal(Message{Resource: resource, State: state})
	if err != nil {
		n.logger.Error("encode state", zap.String("resource", string(resource)), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	started := time.Now()
	err = n.publisher.Publish(ctx, n.channel, msg)
	n.metrics.Observe("publish", err, started)
	if err != nil {
		n.logger.Warn("publish failed", zap.String("resource", string(resource)), zap.Error(err))
	}
}
