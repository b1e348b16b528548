package elev

import (
	"fmt"
	"slices"

	"liftsim/src/types"
)

func (car *Car) queued(floor int) bool {
	return slices.Contains(car.Queue, floor)
}

// markCall records which panel the floor was requested from.
func (car *Car) markCall(btn types.ButtonEvent) {
	switch btn.Button {
	case types.BT_Hall:
		car.hallCalls[btn.Floor] = true
	case types.BT_Cab:
		car.cabCalls[btn.Floor] = true
	}
}

func sortedFloors(calls map[int]bool) []int {
	floors := make([]int, 0, len(calls))
	for floor := range calls {
		floors = append(floors, floor)
	}
	slices.Sort(floors)
	return floors
}

func getDirection(from, to int) types.MotorDirection {
	if from < to {
		return types.MD_Up
	}
	if from > to {
		return types.MD_Down
	}
	return types.MD_Stop
}

func FormatBtnEvent(btnEvent types.ButtonEvent) string {
	switch btnEvent.Button {
	case types.BT_Hall:
		return fmt.Sprintf("Hall(%d)", btnEvent.Floor)
	case types.BT_Cab:
		return fmt.Sprintf("Cab(%d)", btnEvent.Floor)
	}
	return "Unknown"
}
