package events

import "testing"

func TestManagerPublish(t *testing.T) {
	// GIVEN a manager with two listeners
	em := NewManager()
	var got []string
	em.Subscribe(ListenerFunc(func(e Event) { got = append(got, "first:"+e.Type()) }))
	unsubscribe := em.Subscribe(ListenerFunc(func(e Event) { got = append(got, "second:"+e.Type()) }))

	// WHEN an event is published
	em.Publish(PlayerJoinedEvent{PlayerName: "Alice"})

	// THEN both listeners see it in subscription order
	if len(got) != 2 || got[0] != "first:player_joined" || got[1] != "second:player_joined" {
		t.Fatalf("unexpected deliveries: %v", got)
	}

	t.Run("unsubscribed listeners stop receiving events", func(t *testing.T) {
		got = nil
		unsubscribe()
		em.Publish(GameResetEvent{GameID: "g"})
		if len(got) != 1 || got[0] != "first:game_reset" {
			t.Errorf("unexpected deliveries after unsubscribe: %v", got)
		}
	})
}
