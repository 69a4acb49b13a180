package events

import (
	"context"
	"testing"

	"mass_oss/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_DeliversPerOrg(t *testing.T) {
	hub := NewHub(4)
	ch, unsubscribe := hub.Subscribe("org-1")
	defer unsubscribe()
	other, unsubscribeOther := hub.Subscribe("org-2")
	defer unsubscribeOther()

	hub.Notify(context.Background(), entities.MutationResult{ID: "r1", OrgID: "org-1", OK: true})

	select {
	case r := <-ch:
		assert.Equal(t, "r1", r.ID)
	default:
		t.Fatal("expected event for org-1")
	}
	select {
	case r := <-other:
		t.Fatalf("unexpected event for org-2: %+v", r)
	default:
	}
}

func TestHub_DropsWhenSubscriberFull(t *testing.T) {
	hub := NewHub(1)
	ch, unsubscribe := hub.Subscribe("org-1")
	defer unsubscribe()

	hub.Notify(context.Background(), entities.MutationResult{ID: "r1", OrgID: "org-1"})
	hub.Notify(context.Background(), entities.MutationResult{ID: "r2", OrgID: "org-1"})

	r := <-ch
	assert.Equal(t, "r1", r.ID)
	assert.Len(t, ch, 0)
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := NewHub(0)
	ch, unsubscribe := hub.Subscribe("org-1")
	require.Equal(t, 1, hub.Subscribers("org-1"))

	unsubscribe()
	unsubscribe()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, hub.Subscribers("org-1"))

	hub.Notify(context.Background(), entities.MutationResult{OrgID: "org-1"})
}
