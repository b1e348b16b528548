package door

import (
	"testing"
	"time"

	"liftsim/src/types"
)

func TestTransitions(t *testing.T) {
	tests := []struct {
		from    types.DoorState
		trigger Trigger
		want    types.DoorState
		ok      bool
	}{
		{types.DoorClosed, CmdOpen, types.DoorOpening, true},
		{types.DoorClosed, Arrive, types.DoorOpening, true},
		{types.DoorClosed, Reopen, types.DoorOpening, true},
		{types.DoorClosed, CmdClose, types.DoorClosed, false},
		{types.DoorClosed, Expire, types.DoorClosed, false},
		{types.DoorOpening, CmdOpen, types.DoorOpening, false},
		{types.DoorOpening, CmdClose, types.DoorOpening, false},
		{types.DoorOpening, Reopen, types.DoorOpening, false},
		{types.DoorOpening, Expire, types.DoorOpened, true},
		{types.DoorOpened, CmdOpen, types.DoorOpened, false},
		{types.DoorOpened, Reopen, types.DoorOpened, false},
		{types.DoorOpened, CmdClose, types.DoorClosing, true},
		{types.DoorOpened, Expire, types.DoorClosing, true},
		{types.DoorClosing, CmdClose, types.DoorClosing, false},
		{types.DoorClosing, Reopen, types.DoorOpening, true},
		{types.DoorClosing, CmdOpen, types.DoorOpening, true},
		{types.DoorClosing, Expire, types.DoorClosed, true},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.trigger.String(), func(t *testing.T) {
			d := New(time.Second, 3*time.Second, time.Second)
			d.State = tt.from
			got, ok := d.Fire(tt.trigger)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Fire(%v) from %v = %v, %v; want %v, %v", tt.trigger, tt.from, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestHold(t *testing.T) {
	d := New(time.Second, 3*time.Second, 2*time.Second)
	if _, ok := d.Hold(); ok {
		t.Error("closed door should not expire")
	}
	want := map[types.DoorState]time.Duration{
		types.DoorOpening: time.Second,
		types.DoorOpened:  3 * time.Second,
		types.DoorClosing: 2 * time.Second,
	}
	for state, dur := range want {
		d.State = state
		if got, ok := d.Hold(); !ok || got != dur {
			t.Errorf("Hold() in %v = %v, %v", state, got, ok)
		}
	}
}

func TestFullCycle(t *testing.T) {
	d := New(time.Second, time.Second, time.Second)
	seq := []types.DoorState{}
	d.Fire(Arrive)
	seq = append(seq, d.State)
	for i := 0; i < 3; i++ {
		d.Fire(Expire)
		seq = append(seq, d.State)
	}
	want := []types.DoorState{types.DoorOpening, types.DoorOpened, types.DoorClosing, types.DoorClosed}
	for i := range want {
		if seq[i] != want[i] {
			t.Fatalf("sequence = %v, want %v", seq, want)
		}
	}
}
