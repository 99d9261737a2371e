package queue

import (
	"testing"

	"github.com/acadmentor/advisor/internal/logger"
)

func TestHandleDeliveryDropsUndecodableBody(t *testing.T) {
	// DB and RabbitConn are nil: a dropped message must not reach either,
	// so any status write here would panic.
	c := &Consumer{Log: logger.NewNop()}
	c.handleDelivery(c.Log, []byte("not json"))
}
