package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatch(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(EnemyDestroyed, a)
	d.Subscribe(EnemyDestroyed, b)
	d.Subscribe(StageCleared, b)

	d.Dispatch(Event{Type: EnemyDestroyed, Data: EnemyData{Points: 50}})
	d.Dispatch(Event{Type: StageCleared, Data: StageData{Stage: 1}})
	d.Dispatch(Event{Type: GameOver})

	if len(a.got) != 1 {
		t.Errorf("a received %d events, want 1", len(a.got))
	}
	if len(b.got) != 2 {
		t.Errorf("b received %d events, want 2", len(b.got))
	}
	if data, ok := a.got[0].Data.(EnemyData); !ok || data.Points != 50 {
		t.Errorf("a payload = %#v", a.got[0].Data)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(PlayerKilled, a)
	d.Subscribe(PlayerKilled, b)
	d.Unsubscribe(PlayerKilled, a)

	d.Dispatch(Event{Type: PlayerKilled})
	if len(a.got) != 0 {
		t.Errorf("unsubscribed listener received %d events", len(a.got))
	}
	if len(b.got) != 1 {
		t.Errorf("b received %d events, want 1", len(b.got))
	}
}

func TestDispatchOnNil(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: GameOver})
}
