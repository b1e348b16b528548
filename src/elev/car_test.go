package elev

import (
	"io"
	"log/slog"
	"os"
	"slices"
	"testing"

	"liftsim/src/types"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

var floors = []int{1, 2, 3, 4, 5}

func hall(floor int) types.ButtonEvent { return types.ButtonEvent{Floor: floor, Button: types.BT_Hall} }
func cab(floor int) types.ButtonEvent  { return types.ButtonEvent{Floor: floor, Button: types.BT_Cab} }

func TestRequestFloor(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		requests  []types.ButtonEvent
		wantQueue []int
	}{
		{"append in order", 1, []types.ButtonEvent{hall(4), cab(2), hall(5)}, []int{4, 2, 5}},
		{"duplicate ignored", 1, []types.ButtonEvent{hall(3), cab(3), hall(3)}, []int{3}},
		{"current floor ignored", 2, []types.ButtonEvent{hall(2), cab(4)}, []int{4}},
		{"unknown floor ignored", 1, []types.ButtonEvent{hall(0), hall(9), hall(2)}, []int{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			car := NewCar(tt.start, floors)
			for _, btn := range tt.requests {
				car.RequestFloor(btn)
			}
			if !slices.Equal(car.Queue, tt.wantQueue) {
				t.Errorf("queue = %v, want %v", car.Queue, tt.wantQueue)
			}
		})
	}
}

func TestRequestFloorIdempotent(t *testing.T) {
	car := NewCar(1, floors)
	car.RequestFloor(hall(3))
	car.RequestFloor(hall(5))
	before := slices.Clone(car.Queue)
	for _, f := range []int{1, 3, 5} {
		if car.RequestFloor(hall(f)) {
			t.Errorf("RequestFloor(%d) reported a change", f)
		}
	}
	if !slices.Equal(car.Queue, before) {
		t.Errorf("queue = %v, want %v", car.Queue, before)
	}
}

func TestChooseDirection(t *testing.T) {
	tests := []struct {
		name  string
		floor int
		queue []int
		want  types.DirnBehaviourPair
	}{
		{"empty", 3, nil, types.DirnBehaviourPair{Dir: types.MD_Stop, Behaviour: types.Idle}},
		{"head above", 1, []int{4, 2}, types.DirnBehaviourPair{Dir: types.MD_Up, Behaviour: types.Moving}},
		{"head below", 4, []int{2, 5}, types.DirnBehaviourPair{Dir: types.MD_Down, Behaviour: types.Moving}},
		{"head here", 3, []int{3, 1}, types.DirnBehaviourPair{Dir: types.MD_Stop, Behaviour: types.DoorOpen}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			car := NewCar(tt.floor, floors)
			car.Queue = tt.queue
			if got := car.ChooseDirection(); got != tt.want {
				t.Errorf("ChooseDirection() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDirectionNeedsClosedDoor(t *testing.T) {
	car := NewCar(1, floors)
	car.RequestFloor(hall(3))
	for _, door := range []types.DoorState{types.DoorOpening, types.DoorOpened, types.DoorClosing} {
		if dir := car.Direction(door); dir != types.MD_Stop {
			t.Errorf("Direction(%v) = %v, want Idle", door, dir)
		}
	}
	if dir := car.Direction(types.DoorClosed); dir != types.MD_Up {
		t.Errorf("Direction(CLOSED) = %v, want Up", dir)
	}
}

func TestStep(t *testing.T) {
	car := NewCar(2, floors)
	car.Step(types.MD_Up)
	if car.Floor != 3 {
		t.Fatalf("floor = %d, want 3", car.Floor)
	}
	car.Step(types.MD_Down)
	car.Step(types.MD_Down)
	if car.Floor != 1 {
		t.Fatalf("floor = %d, want 1", car.Floor)
	}
}

func TestStepSparseFloors(t *testing.T) {
	car := NewCar(1, []int{-1, 1, 10})
	car.Step(types.MD_Up)
	if car.Floor != 10 {
		t.Errorf("floor = %d, want 10", car.Floor)
	}
}

func TestStepOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic stepping below the lowest floor")
		}
	}()
	NewCar(1, floors).Step(types.MD_Down)
}

func TestPopServedAndCalls(t *testing.T) {
	car := NewCar(1, floors)
	car.RequestFloor(hall(3))
	car.RequestFloor(cab(3))
	car.RequestFloor(cab(5))

	if car.PopServed() {
		t.Fatal("popped a head that is not the current floor")
	}
	if !slices.Equal(car.HallCalls(), []int{3}) || !slices.Equal(car.CabCalls(), []int{3, 5}) {
		t.Fatalf("calls = %v / %v", car.HallCalls(), car.CabCalls())
	}

	car.Floor = 3
	if !car.PopServed() {
		t.Fatal("head at current floor was not popped")
	}
	if !slices.Equal(car.Queue, []int{5}) {
		t.Errorf("queue = %v, want [5]", car.Queue)
	}
	if len(car.HallCalls()) != 0 || !slices.Equal(car.CabCalls(), []int{5}) {
		t.Errorf("calls after pop = %v / %v", car.HallCalls(), car.CabCalls())
	}
}

func TestFormatBtnEvent(t *testing.T) {
	if got := FormatBtnEvent(hall(2)); got != "Hall(2)" {
		t.Errorf("got %q", got)
	}
	if got := FormatBtnEvent(cab(4)); got != "Cab(4)" {
		t.Errorf("got %q", got)
	}
}
