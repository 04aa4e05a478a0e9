// Package notify fans server-side events out to connected stream clients.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
)

type Topic string

const (
	TopicReviews       Topic = "reviews"
	TopicContacts      Topic = "contacts"
	TopicReviewsCount  Topic = "reviews-count"
	TopicContactsCount Topic = "contacts-count"
	TopicMail          Topic = "mail"
)

// Broker delivers every published payload to every subscriber of the topic
// that is connected at publish time. There is no replay.
type Broker interface {
	Publish(ctx context.Context, topic Topic, payload []byte) error
	// Subscribe registers a subscriber until ctx is done; the returned
	// channel is closed afterwards.
	Subscribe(ctx context.Context, topic Topic) (<-chan []byte, error)
}

// PublishJSON serialises v once and publishes it.
func PublishJSON(ctx context.Context, b Broker, topic Topic, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", topic, err)
	}
	return b.Publish(ctx, topic, data)
}

// Count is the payload of the unviewed-counter topics.
type Count struct {
	Count int64 `json:"count"`
}
