package protocol

import "encoding/json"

const Version = "1.0"

// Tool names across all topologies. Each world dispatches a subset; the
// shared tools (deliver and the info tools) exist everywhere.
const (
	ToolGoUp    = "go_up"
	ToolGoDown  = "go_down"
	ToolGoFront = "go_to_front"
	ToolGoBack  = "go_to_back"

	ToolCrossBridge = "cross_bridge"
	ToolGoPassage   = "go_to_building_passage"

	ToolMoveNorth = "move_north"
	ToolMoveSouth = "move_south"
	ToolMoveEast  = "move_east"
	ToolMoveWest  = "move_west"
	ToolEnter     = "enter_building"
	ToolExit      = "exit_building"

	ToolDeliver          = "deliver"
	ToolListEmployees    = "list_employees"
	ToolDescribeLocation = "describe_location"
)

// Result substrings the orchestration layer and tests pattern-match on.
// These are part of the wire contract; do not reword them.
const (
	MarkSuccess = "SUCCESS!"
	MarkFailed  = "FAILED"
	MarkCannot  = "Cannot"
)

// ToolCall is one named operation issued by the orchestrator. Args must be
// JSON-decoded values (map[string]any with float64 numbers).
type ToolCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

// ToolResult is the outcome of one tool call. Every call produces exactly
// one result and costs exactly one step, successful or not.
type ToolResult struct {
	DeliveryID string `json:"delivery_id"`
	Tool       string `json:"tool"`
	Step       int    `json:"step"`
	OK         bool   `json:"ok"`
	Code       string `json:"code,omitempty"`
	Text       string `json:"text"`
}

func DecodeToolCall(b []byte) (ToolCall, error) {
	var c ToolCall
	err := json.Unmarshal(b, &c)
	return c, err
}

var infoTools = map[string]struct{}{
	ToolListEmployees:    {},
	ToolDescribeLocation: {},
}

// IsInfoTool reports whether name is an information-only tool. Info tools
// still cost a step but are excluded from movement-error classification.
func IsInfoTool(name string) bool {
	_, ok := infoTools[name]
	return ok
}

// IsMovementTool reports whether name is a movement tool on some topology.
func IsMovementTool(name string) bool {
	if name == ToolDeliver || IsInfoTool(name) {
		return false
	}
	_, ok := toolSchemaFiles[name]
	return ok
}
