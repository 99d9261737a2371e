package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

const (
	sessionQueue    = "advising_sessions"
	updatesExchange = "session_updates"
)

// PublishSessionUpdate emits a status event for one advising session so the
// frontend can follow progress.
func PublishSessionUpdate(rabbitConn *amqp.Connection, sessionID, status, message string) error {
	ch, err := rabbitConn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, _ := json.Marshal(map[string]any{
		"session_id": sessionID,
		"status":     status,
		"message":    message,
		"timestamp":  time.Now(),
	})
	routingKey := fmt.Sprintf("session.%s", sessionID)

	return ch.Publish(
		updatesExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
