package helper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckDeadline(t *testing.T) {
	assert.NoError(t, CheckDeadline(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, CheckDeadline(ctx), context.Canceled)
}
