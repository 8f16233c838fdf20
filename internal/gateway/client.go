// Package gateway implements both sides of the notify.v1 wire contract: the
// shared delivery client and the stateless gateway service.
package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	notifyv1 "github.com/osokin/eventbook/api/gen/go/notify/v1"
	"github.com/osokin/eventbook/internal/model"
)

var typeMapping = map[model.NotificationType]notifyv1.NotificationType{
	model.NotificationEventReminder:       notifyv1.NotificationType_EVENT_REMINDER,
	model.NotificationBookingConfirmation: notifyv1.NotificationType_BOOKING_CONFIRMATION,
	model.NotificationEventCancelled:      notifyv1.NotificationType_EVENT_CANCELLED,
	model.NotificationEventUpdated:        notifyv1.NotificationType_EVENT_UPDATED,
}

// Client sends notifications to the remote gateway over a single shared
// connection. The connection is established lazily and re-established when it
// has shut down; the mutex makes that single-flight, so concurrent callers
// cannot race to create duplicate connections.
type Client struct {
	addr    string
	timeout time.Duration

	mu   sync.Mutex
	conn *grpc.ClientConn
	stub notifyv1.NotificationSenderClient
}

// NewClient creates a Client for the gateway at addr. Each call is bounded by
// timeout. No connection is made until the first Send.
func NewClient(addr string, timeout time.Duration) *Client {
	return &Client{addr: addr, timeout: timeout}
}

// Send performs one SendNotification call and reports the gateway's success
// flag. Any transport failure is returned as an error; the caller treats both
// outcomes as delivery failure.
func (c *Client) Send(ctx context.Context, n *model.Notification) (bool, error) {
	stub, err := c.ensureConn()
	if err != nil {
		return false, err
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := stub.SendNotification(callCtx, &notifyv1.Notification{
		Id:      n.ID,
		UserId:  n.UserID,
		Type:    typeMapping[n.Type],
		Title:   n.Title,
		Message: n.Message,
	})
	if err != nil {
		return false, fmt.Errorf("send notification %d: %w", n.ID, err)
	}

	return resp.GetSuccess(), nil
}

// Close tears down the shared connection if one was established.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	conn := c.conn
	c.conn = nil
	c.stub = nil

	return conn.Close()
}

func (c *Client) ensureConn() (notifyv1.NotificationSenderClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		state := c.conn.GetState()
		if state != connectivity.Shutdown {
			if state == connectivity.Idle {
				c.conn.Connect()
			}
			return c.stub, nil
		}
		_ = c.conn.Close()
		c.conn = nil
		c.stub = nil
	}

	conn, err := grpc.NewClient(c.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("connect to gateway at %s: %w", c.addr, err)
	}
	c.conn = conn
	c.stub = notifyv1.NewNotificationSenderClient(conn)

	return c.stub, nil
}
