package entity

// Decision is a move chosen by a deterministic agent for a given board and mark.
type Decision struct {
	Agent string `json:"agent"`
	Board string `json:"board"`
	Mark  Mark   `json:"mark"`
	Move  Move   `json:"move"`
}

// DecisionKey - builds the storage key of a decision.
func DecisionKey(agent string, mark Mark, boardKey string) string {
	return "decision:" + agent + ":" + string(mark) + ":" + boardKey
}

func (that *Decision) Key() string {
	return DecisionKey(that.Agent, that.Mark, that.Board)
}
