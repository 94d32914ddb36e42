package protocol

import (
	"embed"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// toolSchemaFiles maps every dispatchable tool to its argument schema.
// A tool without an entry here does not exist on the wire.
var toolSchemaFiles = map[string]string{
	ToolGoUp:    "noargs.schema.json",
	ToolGoDown:  "noargs.schema.json",
	ToolGoFront: "noargs.schema.json",
	ToolGoBack:  "noargs.schema.json",

	ToolCrossBridge: "building_target.schema.json",
	ToolGoPassage:   "building_target.schema.json",

	ToolMoveNorth: "noargs.schema.json",
	ToolMoveSouth: "noargs.schema.json",
	ToolMoveEast:  "noargs.schema.json",
	ToolMoveWest:  "noargs.schema.json",
	ToolEnter:     "noargs.schema.json",
	ToolExit:      "noargs.schema.json",

	ToolDeliver:          "deliver.schema.json",
	ToolListEmployees:    "noargs.schema.json",
	ToolDescribeLocation: "noargs.schema.json",
}

var toolSchemas map[string]*jsonschema.Schema

func init() {
	compiled := map[string]*jsonschema.Schema{}
	toolSchemas = make(map[string]*jsonschema.Schema, len(toolSchemaFiles))
	for tool, file := range toolSchemaFiles {
		s, ok := compiled[file]
		if !ok {
			raw, err := schemaFS.ReadFile("schemas/" + file)
			if err != nil {
				panic(fmt.Sprintf("protocol: embedded schema %s: %v", file, err))
			}
			s, err = jsonschema.CompileString(file, string(raw))
			if err != nil {
				panic(fmt.Sprintf("protocol: compile schema %s: %v", file, err))
			}
			compiled[file] = s
		}
		toolSchemas[tool] = s
	}
}

// IsKnownTool reports whether name is dispatchable on some topology.
func IsKnownTool(name string) bool {
	_, ok := toolSchemaFiles[name]
	return ok
}

// ValidateArgs checks JSON-decoded tool arguments against the tool's
// embedded schema. Nil args validate as an empty object.
func ValidateArgs(tool string, args map[string]any) error {
	s, ok := toolSchemas[tool]
	if !ok {
		return fmt.Errorf("unknown tool %q", tool)
	}
	v := any(args)
	if args == nil {
		v = map[string]any{}
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// StringArg extracts a required string argument after schema validation.
func StringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}
