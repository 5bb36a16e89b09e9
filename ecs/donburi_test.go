package ecs

import (
	"testing"

	"github.com/phanxgames/orbit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []orbit.GestureEvent
	GestureEventType.Subscribe(world, func(w donburi.World, e orbit.GestureEvent) {
		received = append(received, e)
	})

	store.EmitEvent(orbit.GestureEvent{
		Type: orbit.EventDragStart,
		Mode: orbit.ModeDragging,
		X:    100,
		Y:    200,
	})
	store.EmitEvent(orbit.GestureEvent{
		Type:      orbit.EventZoom,
		Direction: orbit.ZoomIn,
		Speed:     1.02,
		Scale:     0.5,
	})

	// Events are queued; process them.
	GestureEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != orbit.EventDragStart || e0.Mode != orbit.ModeDragging {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.X != 100 || e0.Y != 200 {
		t.Errorf("event 0 position: (%v,%v)", e0.X, e0.Y)
	}
	e1 := received[1]
	if e1.Type != orbit.EventZoom || e1.Direction != orbit.ZoomIn || e1.Scale != 0.5 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ControlIntegration(t *testing.T) {
	world := donburi.NewWorld()
	model := orbit.NewModel()
	model.SetScale(0.5)
	ctrl, err := orbit.New(model, orbit.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	ctrl.SetEventStore(NewDonburiStore(world))

	var types []orbit.EventType
	GestureEventType.Subscribe(world, func(w donburi.World, e orbit.GestureEvent) {
		types = append(types, e.Type)
	})

	ctrl.PointerDown(10, 10)
	ctrl.PointerUp()
	ctrl.Wheel(-1)
	events.ProcessAllEvents(world)

	want := []orbit.EventType{orbit.EventDragStart, orbit.EventDragEnd, orbit.EventZoom}
	if len(types) != len(want) {
		t.Fatalf("got %d events %v, want %v", len(types), types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	GestureEventType.Subscribe(world, func(w donburi.World, e orbit.GestureEvent) {
		count1++
	})
	GestureEventType.Subscribe(world, func(w donburi.World, e orbit.GestureEvent) {
		count2++
	})

	store.EmitEvent(orbit.GestureEvent{Type: orbit.EventReset})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
