package repository

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/samandr77/microservices/portal/internal/entity"
)

// Network simulates the round trip to a backend that does not exist.
type Network struct {
	latency time.Duration
	offline atomic.Bool
}

func NewNetwork(latency time.Duration, offline bool) *Network {
	n := &Network{latency: latency}
	n.offline.Store(offline)

	return n
}

// SetOffline makes every following round trip fail with entity.ErrNetworkUnavailable.
func (n *Network) SetOffline(offline bool) {
	n.offline.Store(offline)
}

func (n *Network) Offline() bool {
	return n.offline.Load()
}

func (n *Network) Latency() time.Duration {
	return n.latency
}

// RoundTrip waits for the configured latency, or until ctx is done.
func (n *Network) RoundTrip(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if n.latency > 0 {
		timer := time.NewTimer(n.latency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if n.offline.Load() {
		return entity.ErrNetworkUnavailable
	}

	return nil
}
