package entities

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActorContext(t *testing.T) {
	_, ok := ActorFrom(context.Background())
	assert.False(t, ok)

	ctx := WithActor(context.Background(), Actor{ID: "u-1", Role: RoleAdmin})
	a, ok := ActorFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, Actor{ID: "u-1", Role: RoleAdmin}, a)
}
