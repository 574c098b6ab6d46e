package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// Counter reports how many items a component currently holds.
type Counter interface {
	Len() int
}

// CapacityHealthChecker is healthy while the counter stays below its limit.
type CapacityHealthChecker struct {
	counter Counter
	limit   int
}

func NewCapacityHealthChecker(counter Counter, limit int) *CapacityHealthChecker {
	return &CapacityHealthChecker{counter: counter, limit: limit}
}

func (hc *CapacityHealthChecker) Healthy(ctx context.Context) bool {
	return hc.counter.Len() < hc.limit
}
