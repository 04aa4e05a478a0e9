package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"ClinicDesk/notify"
	"ClinicDesk/util"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// greeting produces the first frame written when a client connects. A nil
// greeting writes nothing until the first event.
type greeting func(ctx context.Context) ([]byte, error)

func (h *Controller) Stream(router *gin.Engine) {
	router.GET("/sse", h.stream(notify.TopicMail, func(context.Context) ([]byte, error) {
		return []byte(util.SSE_WELCOME), nil
	}))
	router.GET("/sse/reviews", h.stream(notify.TopicReviews, nil))
	router.GET("/sse/contacts", h.stream(notify.TopicContacts, nil))
	router.GET("/sse/reviews/count", h.stream(notify.TopicReviewsCount, h.countGreeting(h.svc.ReviewCount)))
	router.GET("/sse/contacts/count", h.stream(notify.TopicContactsCount, h.countGreeting(h.svc.ContactCount)))
}

func (h *Controller) countGreeting(count func(context.Context) (int64, error)) greeting {
	return func(ctx context.Context) ([]byte, error) {
		n, err := count(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(notify.Count{Count: n})
	}
}

/*
* Subscribe before greeting so no event published in between is lost
* Write every payload as a data frame and flush it
* Return when the client goes away or the subscription closes
 */
func (h *Controller) stream(topic notify.Topic, greet greeting) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		events, err := h.svc.Broker().Subscribe(ctx, topic)
		if err != nil {
			log.Error().Err(err).Str("topic", string(topic)).Msg("Error subscribing to stream")
			c.JSON(http.StatusInternalServerError, util.FailedMessage(util.INTERNAL_SERVER_ERROR))
			return
		}

		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Status(http.StatusOK)

		write := func(payload []byte) bool {
			if err := sse.Encode(c.Writer, sse.Event{Data: string(payload)}); err != nil {
				log.Warn().Err(err).Str("topic", string(topic)).Msg("Error writing stream event")
				return false
			}
			c.Writer.Flush()
			return true
		}

		if greet != nil {
			payload, err := greet(ctx)
			if err != nil {
				log.Error().Err(err).Str("topic", string(topic)).Msg("Error building stream greeting")
				return
			}
			if !write(payload) {
				return
			}
		} else {
			c.Writer.Flush()
		}

		for {
			select {
			case <-ctx.Done():
				return
			case payload, ok := <-events:
				if !ok || !write(payload) {
					return
				}
			}
		}
	}
}
