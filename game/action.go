package game

import "fmt"

// ActionType enumerates the single action entry point's verbs.
type ActionType int

const (
	StartTurnAction ActionType = iota
	BuildSettlementAction
	BuildCityAction
	BuildRoadAction
	EndTurnAction
	TradeBankAction
)

var actionNames = map[ActionType]string{
	StartTurnAction:       "start_turn",
	BuildSettlementAction: "build_settlement",
	BuildCityAction:       "build_city",
	BuildRoadAction:       "build_road",
	EndTurnAction:         "end_turn",
	TradeBankAction:       "trade_bank",
}

func (t ActionType) String() string {
	if name, ok := actionNames[t]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(t))
}

func (t ActionType) MarshalText() ([]byte, error) {
	name, ok := actionNames[t]
	if !ok {
		return nil, fmt.Errorf("unknown action type %d", int(t))
	}
	return []byte(name), nil
}

func (t *ActionType) UnmarshalText(text []byte) error {
	for kind, name := range actionNames {
		if name == string(text) {
			*t = kind
			return nil
		}
	}
	return fmt.Errorf("unknown action type %q", string(text))
}

// Action is one request against the game: a verb plus its target. Build
// actions use TargetID (a node or edge id); bank trades use the
// offered/wanted/cost triple.
type Action struct {
	Type     ActionType `json:"type"`
	TargetID int        `json:"target_id,omitempty"`
	Offered  Resource   `json:"offered,omitempty"`
	Wanted   Resource   `json:"wanted,omitempty"`
	Cost     int        `json:"cost,omitempty"`
}

// Convenience constructors for the common actions.

func StartTurn() Action { return Action{Type: StartTurnAction} }
func EndTurn() Action   { return Action{Type: EndTurnAction} }

func BuildSettlement(nodeID int) Action {
	return Action{Type: BuildSettlementAction, TargetID: nodeID}
}

func BuildCity(nodeID int) Action {
	return Action{Type: BuildCityAction, TargetID: nodeID}
}

func BuildRoad(edgeID int) Action {
	return Action{Type: BuildRoadAction, TargetID: edgeID}
}

func TradeBank(offered, wanted Resource, cost int) Action {
	return Action{Type: TradeBankAction, Offered: offered, Wanted: wanted, Cost: cost}
}
