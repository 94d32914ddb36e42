package world

// Topology is the navigable shape of a world. Movement and the exact path
// cost live on the same value so the dispatcher and the cost engine cannot
// drift apart: both sides of the contract are one implementation.
//
// All methods are pure; Move returns the new location instead of mutating.
type Topology interface {
	Kind() TopologyKind

	// Tools lists the movement tool names this topology dispatches.
	Tools() []string

	// Move applies one movement tool to loc. ok=false is an invalid
	// transition: the returned location equals loc and text explains why,
	// starting with "Cannot". The caller charges the step either way.
	Move(loc Location, tool string, args map[string]any) (next Location, ok bool, text string)

	// OptimalSteps is the exact minimum number of tool calls, including the
	// mandatory final deliver, from loc to a business location. Never < 1.
	OptimalSteps(loc, target Location) int

	// DeclaredLocations enumerates every location that must host exactly
	// one business.
	DeclaredLocations() []Location

	// Start is where a courier begins every delivery.
	Start() Location

	// Describe renders loc for the describe_location info tool.
	Describe(loc Location) string
}
