package contract

// ActionID enumerates the known contract actions.
type ActionID byte

const (
	ActionUnknown ActionID = iota
	ActionAdd
	ActionRemove
)

// Action is a contract action: ActionAdd, ActionRemove, or an unrecognized
// literal kept for logging. Dispatch treats anything besides Add/Remove as
// unknown. The zero value is ActionUnknown.
type Action struct {
	id    ActionID
	other string
}

// NewAction wraps a known contract action.
func NewAction(id ActionID) Action {
	return Action{id: id}
}

// ParseAction maps an action literal to an Action. Only "A" (add) and "D"
// (delete) are recognized; any other non-empty input produces an "other"
// Action retaining the literal.
func ParseAction(input string) Action {
	switch input {
	case "":
		return Action{}
	case "A":
		return Action{id: ActionAdd}
	case "D":
		return Action{id: ActionRemove}
	}

	return Action{other: input}
}

// ID returns the known discriminant, ActionUnknown for "other" values.
func (a Action) ID() ActionID {
	return a.id
}

// String renders "A" or "D" for known actions and the original literal for
// "other" values.
func (a Action) String() string {
	if a.other != "" {
		return a.other
	}

	switch a.id {
	case ActionAdd:
		return "A"
	case ActionRemove:
		return "D"
	}

	return ""
}
