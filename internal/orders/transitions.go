package orders

import (
	"fmt"

	"github.com/munchbay/vendor-gateway/pkg/enums"
	pkgerrors "github.com/munchbay/vendor-gateway/pkg/errors"
)

// Action is one of the workflow moves the console exposes on an order card.
type Action string

const (
	// ActionAccept starts cooking and requires a preparation time.
	ActionAccept Action = "accept"
	// ActionReject declines the order; legal from any non-terminal state.
	ActionReject Action = "reject"
	// ActionMarkPacked moves a cooked order into packing.
	ActionMarkPacked Action = "mark_packed"
	// ActionMarkReady stages a packed order for courier pickup.
	ActionMarkReady Action = "mark_ready"
)

var validActions = []Action{ActionAccept, ActionReject, ActionMarkPacked, ActionMarkReady}

// String implements fmt.Stringer.
func (a Action) String() string {
	return string(a)
}

// IsValid reports whether the value is a known Action.
func (a Action) IsValid() bool {
	for _, candidate := range validActions {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAction converts raw input into an Action.
func ParseAction(value string) (Action, error) {
	for _, candidate := range validActions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order action %q", value)
}

// forwardEdges maps each action to the single from→to edge it drives.
// Reject is handled separately because it escapes from every
// non-terminal state.
var forwardEdges = map[Action]struct {
	from enums.OrderStatus
	to   enums.OrderStatus
}{
	ActionAccept:     {from: enums.OrderStatusWaitingForConfirmation, to: enums.OrderStatusCooking},
	ActionMarkPacked: {from: enums.OrderStatusCooking, to: enums.OrderStatusPackingProcessing},
	ActionMarkReady:  {from: enums.OrderStatusPackingProcessing, to: enums.OrderStatusReadyToPickup},
}

// AvailableActions enumerates the actions legal for an order in the given
// status. Terminal statuses and ready_to_pickup (which awaits the courier)
// have no forward action; reject stays available everywhere non-terminal.
func AvailableActions(status enums.OrderStatus) []Action {
	if status.IsTerminal() {
		return nil
	}
	actions := []Action{}
	for _, action := range []Action{ActionAccept, ActionMarkPacked, ActionMarkReady} {
		if forwardEdges[action].from == status {
			actions = append(actions, action)
		}
	}
	return append(actions, ActionReject)
}

// ResolveTarget returns the status the action moves the order into, or a
// state-conflict error when the move is not in the transition table.
func ResolveTarget(action Action, from enums.OrderStatus) (enums.OrderStatus, error) {
	if action == ActionReject {
		if from.IsTerminal() {
			return "", pkgerrors.New(pkgerrors.CodeStateConflict,
				fmt.Sprintf("cannot reject an order in terminal status %q", from))
		}
		return enums.OrderStatusDeclined, nil
	}

	edge, ok := forwardEdges[action]
	if !ok {
		return "", pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown action %q", action))
	}
	if edge.from != from {
		return "", pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("action %q is not legal from status %q", action, from)).
			WithDetails(map[string]any{"available_actions": AvailableActions(from)})
	}
	return edge.to, nil
}
