package tcp

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"
)

type Client struct {
	log         *slog.Logger
	addr        string
	dialTimeout time.Duration
	timeout     time.Duration
	initiator   Initiator
}

func NewClient(log *slog.Logger, addr string, dialTimeout, timeout time.Duration, initiator Initiator) *Client {
	return &Client{
		log:         log,
		addr:        addr,
		dialTimeout: dialTimeout,
		timeout:     timeout,
		initiator:   initiator,
	}
}

// Fetch dials the server, runs one handshake and returns the wisdom.
// Cancelling ctx interrupts a handshake blocked on the network.
func (c *Client) Fetch(ctx context.Context) (string, error) {
	dialCtx := ctx
	if c.dialTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, c.dialTimeout)
		defer cancel()
	}
	conn, err := (&net.Dialer{}).DialContext(dialCtx, "tcp", c.addr)
	if err != nil {
		return "", fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()
	c.log.Debug("connected", "server_addr", c.addr)

	if c.timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(c.timeout))
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.SetDeadline(time.Now()) })
	defer stop()

	wisdom, err := c.initiator.Run(NewFrameConn(conn))
	if err != nil {
		return "", fmt.Errorf("handshake with %s: %w", c.addr, err)
	}
	return wisdom, nil
}
