package contract

// TypeID enumerates the closed set of known contract kinds. Messages with a
// type outside of this set still parse (see Type) so that nodes tolerate
// contract kinds introduced by a future protocol version.
type TypeID byte

const (
	TypeUnknown TypeID = iota
	TypeBeacon
	TypePoll
	TypeProject
	TypeProtocol
	TypeScraper
	TypeSuperblock
	TypeVote
)

// Type is a contract kind: either a known TypeID or an unrecognized literal
// carried verbatim for forward compatibility. The zero value is TypeUnknown.
type Type struct {
	id    TypeID
	other string
}

// NewType wraps a known contract kind.
func NewType(id TypeID) Type {
	return Type{id: id}
}

// ParseType maps a contract type literal to a Type. Unrecognized non-empty
// input produces an "other" Type retaining the literal; empty input maps to
// TypeUnknown.
func ParseType(input string) Type {
	if input == "" {
		return Type{}
	}

	// Ordered by frequency:
	switch input {
	case "beacon":
		return Type{id: TypeBeacon}
	case "vote":
		return Type{id: TypeVote}
	case "poll":
		return Type{id: TypePoll}
	case "project":
		return Type{id: TypeProject}
	case "scraper":
		return Type{id: TypeScraper}
	case "protocol":
		return Type{id: TypeProtocol}
	// Handled by the superblock subsystem, never dispatched here:
	case "superblock":
		return Type{id: TypeSuperblock}
	// Legacy literal for "project" (found at heights 267504, 410257):
	case "projectmapping":
		return Type{id: TypeProject, other: "projectmapping"}
	}

	return Type{other: input}
}

// ID returns the known discriminant, TypeUnknown for "other" values.
func (t Type) ID() TypeID {
	return t.id
}

// String renders the canonical literal of a known contract kind. "Other"
// values render their original literal verbatim, including the legacy
// "projectmapping" alias.
func (t Type) String() string {
	if t.other != "" {
		return t.other
	}

	switch t.id {
	case TypeBeacon:
		return "beacon"
	case TypePoll:
		return "poll"
	case TypeProject:
		return "project"
	case TypeProtocol:
		return "protocol"
	case TypeScraper:
		return "scraper"
	case TypeSuperblock:
		return "superblock"
	case TypeVote:
		return "vote"
	}

	return ""
}
