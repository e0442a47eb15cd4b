package event

import "testing"

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e.Type) }

func TestDispatchReachesSubscribersInOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(ListenerFunc(func(Event) { order = append(order, "first") }), WaveEnded)
	d.Subscribe(ListenerFunc(func(Event) { order = append(order, "second") }), WaveEnded)

	d.Emit(WaveEnded, WaveEndedData{WaveNumber: 1})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("Expected [first second], got %v", order)
	}
}

func TestSubscribeMultipleTypesAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(r, Victory, Defeat)

	d.Emit(Victory, nil)
	d.Unsubscribe(Victory, r)
	d.Emit(Victory, nil)
	d.Emit(Defeat, nil)

	if len(r.got) != 2 || r.got[0] != Victory || r.got[1] != Defeat {
		t.Errorf("Expected [Victory Defeat], got %v", r.got)
	}
}
