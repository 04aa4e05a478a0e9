package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const channelPrefix = "clinicdesk:"

// RedisBroker relays events through Redis pub/sub so that every server
// process sees events published by any of them. Local delivery goes
// through a Hub.
type RedisBroker struct {
	client *redis.Client
	local  *Hub
	pubsub *redis.PubSub
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRedisBroker connects to url (redis://...) and starts relaying.
func NewRedisBroker(ctx context.Context, url string) (*RedisBroker, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return newRedisBroker(client), nil
}

func newRedisBroker(client *redis.Client) *RedisBroker {
	ctx, cancel := context.WithCancel(context.Background())
	b := &RedisBroker{
		client: client,
		local:  NewHub(),
		pubsub: client.PSubscribe(ctx, channelPrefix+"*"),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go b.receive(ctx)
	return b
}

func (b *RedisBroker) Publish(ctx context.Context, topic Topic, payload []byte) error {
	if err := b.client.Publish(ctx, channelPrefix+string(topic), payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

func (b *RedisBroker) Subscribe(ctx context.Context, topic Topic) (<-chan []byte, error) {
	return b.local.Subscribe(ctx, topic)
}

func (b *RedisBroker) receive(ctx context.Context) {
	defer close(b.done)
	ch := b.pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			topic := Topic(strings.TrimPrefix(msg.Channel, channelPrefix))
			if err := b.local.Publish(ctx, topic, []byte(msg.Payload)); err != nil {
				log.Error().Err(err).Str("topic", string(topic)).Msg("Error relaying event")
			}
		}
	}
}

func (b *RedisBroker) Close() error {
	b.cancel()
	err := b.pubsub.Close()
	<-b.done
	if cerr := b.client.Close(); err == nil {
		err = cerr
	}
	return err
}
