package rabbitmq

import (
	"errors"
	"testing"
	"time"

	amqp "github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeAndHandleDelivery(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	body, err := Encode("restaurant.created", map[string]interface{}{"restaurantID": "r-1"}, at)
	require.NoError(t, err)

	var got Event
	err = HandleDelivery(body, func(ev Event) error {
		got = ev
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "restaurant.created", got.Type)
	assert.True(t, at.Equal(got.OccurredAt))
	assert.Equal(t, "r-1", got.Payload["restaurantID"])
}

func TestHandleDelivery_Errors(t *testing.T) {
	err := HandleDelivery([]byte("not json"), LogEvent)
	assert.Error(t, err)

	body, err := Encode("profile.updated", nil, time.Now())
	require.NoError(t, err)
	boom := errors.New("boom")
	err = HandleDelivery(body, func(Event) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestPublish_NoChannel(t *testing.T) {
	c := &Client{}
	err := c.Publish("restaurant.updated", map[string]interface{}{})
	assert.Error(t, err)
	assert.Error(t, c.ConsumeEvents("#", LogEvent))
}

func TestNewPublishing(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	msg, err := NewPublishing("restaurant.updated", map[string]interface{}{"restaurantID": "r-9"}, at)
	require.NoError(t, err)

	assert.Equal(t, "restaurant.updated", msg.Type)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.True(t, at.Equal(msg.Timestamp))

	var got Event
	require.NoError(t, HandleDelivery(msg.Body, func(ev Event) error {
		got = ev
		return nil
	}))
	assert.Equal(t, "restaurant.updated", got.Type)
	assert.Equal(t, "r-9", got.Payload["restaurantID"])
}
