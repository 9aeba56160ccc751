package model

import (
	"context"
	"net"
)

// SecurityLayer opens the network listener the HTTP server serves on,
// either plain TCP or TLS depending on configuration.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is the lifecycle of the HTTP server as seen from main: Start
// blocks until the server stops, Stop drains in-flight requests.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
