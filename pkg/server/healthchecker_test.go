package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedCounter int

func (c fixedCounter) Len() int { return int(c) }

func TestCapacityHealthChecker(t *testing.T) {
	ctx := context.Background()

	assert.True(t, NewCapacityHealthChecker(fixedCounter(3), 4).Healthy(ctx))
	assert.False(t, NewCapacityHealthChecker(fixedCounter(4), 4).Healthy(ctx))
	assert.True(t, NewOkHealthChecker().Healthy(ctx))
}
