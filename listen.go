package main

import (
	"context"
	"net"
)

// newListener binds a TCP listener with SO_REUSEADDR where the
// platform supports it, so rapid stop/start cycles during development
// do not trip over lingering sockets.
func newListener(ctx context.Context, addr string) (net.Listener, error) {
	lc := net.ListenConfig{Control: reuseAddr}
	return lc.Listen(ctx, "tcp", addr)
}
