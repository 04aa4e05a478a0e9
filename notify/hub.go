package notify

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// DefaultBuffer is how many undelivered events a subscriber may hold before
// new ones are dropped for it.
const DefaultBuffer = 32

// Hub is the in-process Broker.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[Topic]map[chan []byte]struct{}
	buffer      int
}

func NewHub() *Hub {
	return NewHubWithBuffer(DefaultBuffer)
}

func NewHubWithBuffer(buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		subscribers: make(map[Topic]map[chan []byte]struct{}),
		buffer:      buffer,
	}
}

func (h *Hub) Publish(_ context.Context, topic Topic, payload []byte) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subscribers[topic] {
		select {
		case ch <- payload:
		default:
			log.Warn().Str("topic", string(topic)).Msg("Subscriber buffer full, dropping event")
		}
	}
	return nil
}

func (h *Hub) Subscribe(ctx context.Context, topic Topic) (<-chan []byte, error) {
	ch := make(chan []byte, h.buffer)

	h.mu.Lock()
	if h.subscribers[topic] == nil {
		h.subscribers[topic] = make(map[chan []byte]struct{})
	}
	h.subscribers[topic][ch] = struct{}{}
	n := len(h.subscribers[topic])
	h.mu.Unlock()

	log.Debug().Str("topic", string(topic)).Int("subscribers", n).Msg("Subscribed")

	go func() {
		<-ctx.Done()
		h.remove(topic, ch)
	}()
	return ch, nil
}

// Subscribers reports how many clients are attached to topic.
func (h *Hub) Subscribers(topic Topic) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[topic])
}

func (h *Hub) remove(topic Topic, ch chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.subscribers[topic]
	if !ok {
		return
	}
	if _, ok := subs[ch]; !ok {
		return
	}
	delete(subs, ch)
	close(ch)
	if len(subs) == 0 {
		delete(h.subscribers, topic)
	}
}
