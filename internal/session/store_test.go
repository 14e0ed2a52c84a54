package session_test

import (
	"sync"
	"testing"
	"time"

	"fleet-dispatch/internal/dispatch"
	"fleet-dispatch/internal/session"
)

func TestStore(t *testing.T) {
	t.Run("Creates Empty Session On First Contact", func(t *testing.T) {
		store := session.New(8, time.Minute)
		sess, release := store.Acquire("s1")
		defer release()

		if sess.ID != "s1" {
			t.Errorf("got ID %q", sess.ID)
		}
		if len(sess.Messages) != 0 || sess.Pending != nil || sess.AwaitingConfirmation {
			t.Error("new session must default to idle")
		}
	})

	t.Run("Same ID Returns Same Session", func(t *testing.T) {
		store := session.New(8, time.Minute)
		sess, release := store.Acquire("s1")
		sess.Append(dispatch.RoleUser, "hello")
		release()

		again, release := store.Acquire("s1")
		defer release()
		if len(again.Messages) != 1 {
			t.Errorf("expected history to survive, got %d messages", len(again.Messages))
		}
	})

	t.Run("Serializes Turns Per Session", func(t *testing.T) {
		store := session.New(8, time.Minute)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sess, release := store.Acquire("s1")
				sess.Append(dispatch.RoleUser, "turn")
				release()
			}()
		}
		wg.Wait()

		sess, release := store.Acquire("s1")
		defer release()
		if len(sess.Messages) != 20 {
			t.Errorf("expected 20 serialized appends, got %d", len(sess.Messages))
		}
	})

	t.Run("Capacity Eviction", func(t *testing.T) {
		store := session.New(2, time.Minute)
		for _, id := range []string{"a", "b", "c"} {
			_, release := store.Acquire(id)
			release()
		}
		if store.Len() != 2 {
			t.Errorf("expected capacity cap of 2, got %d", store.Len())
		}
	})
}
