package world

import "github.com/google/uuid"

// Package is the parcel carried for one delivery. It exists only for that
// delivery: cleared on success, retained across failed attempts.
type Package struct {
	Recipient    string
	BusinessName string // "" when the queue entry omitted it
}

// AgentState is the mutable state of one in-flight delivery: position, a
// monotonic step counter and at most one package. It is owned exclusively by
// that delivery — create it at delivery start, discard it at delivery end,
// never share it across goroutines.
type AgentState struct {
	DeliveryID string

	Loc       Location
	Steps     int
	Delivered int

	Pkg *Package
}

func NewAgentState(start Location, pkg Package) *AgentState {
	p := pkg
	return &AgentState{
		DeliveryID: uuid.NewString(),
		Loc:        start,
		Pkg:        &p,
	}
}

func (a *AgentState) HoldingPackage() bool { return a.Pkg != nil }
