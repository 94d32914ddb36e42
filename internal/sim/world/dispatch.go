package world

import (
	"fmt"

	"courierbench.ai/internal/protocol"
)

type toolHandler func(w *World, a *AgentState, args map[string]any) (ok bool, code, text string)

var sharedDispatch = map[string]toolHandler{
	protocol.ToolDeliver:          handleDeliver,
	protocol.ToolListEmployees:    handleListEmployees,
	protocol.ToolDescribeLocation: handleDescribeLocation,
}

var supportedSharedTools = []string{
	protocol.ToolDeliver,
	protocol.ToolListEmployees,
	protocol.ToolDescribeLocation,
}

// Dispatch executes one named tool call against the agent. Every call costs
// exactly one step — invalid transitions, failed deliveries, info tools and
// unknown tools included: wasted calls charge real cost.
func (w *World) Dispatch(a *AgentState, call protocol.ToolCall) protocol.ToolResult {
	a.Steps++

	if !protocol.IsKnownTool(call.Name) {
		return w.result(a, call.Name, false, protocol.ErrUnknownTool,
			fmt.Sprintf("Cannot execute %q: unknown tool.", call.Name))
	}
	if err := protocol.ValidateArgs(call.Name, call.Args); err != nil {
		return w.result(a, call.Name, false, protocol.ErrBadRequest,
			fmt.Sprintf("Cannot execute %q: %v.", call.Name, err))
	}

	if h := sharedDispatch[call.Name]; h != nil {
		ok, code, text := h(w, a, call.Args)
		return w.result(a, call.Name, ok, code, text)
	}

	if !toolOnTopology(w.topo, call.Name) {
		return w.result(a, call.Name, false, protocol.ErrUnknownTool,
			fmt.Sprintf("Cannot execute %q: that tool does not exist in this world.", call.Name))
	}
	next, ok, text := w.topo.Move(a.Loc, call.Name, call.Args)
	code := ""
	if ok {
		a.Loc = next
	} else {
		code = protocol.ErrInvalidTransition
	}
	return w.result(a, call.Name, ok, code, text)
}

func (w *World) result(a *AgentState, tool string, ok bool, code, text string) protocol.ToolResult {
	if !protocol.IsKnownCode(code) {
		code = protocol.ErrBadRequest
	}
	return protocol.ToolResult{
		DeliveryID: a.DeliveryID,
		Tool:       tool,
		Step:       a.Steps,
		OK:         ok,
		Code:       code,
		Text:       text,
	}
}

func toolOnTopology(t Topology, name string) bool {
	for _, n := range t.Tools() {
		if n == name {
			return true
		}
	}
	return false
}

// validateDispatchMaps is run once per world construction: the shared map
// must cover exactly the shared tool set, and every topology tool must be a
// protocol-known movement tool that does not shadow a shared handler.
func validateDispatchMaps(t Topology) error {
	if err := validateDispatchMap("sharedDispatch", sharedDispatch, supportedSharedTools); err != nil {
		return err
	}
	seen := map[string]struct{}{}
	for _, name := range t.Tools() {
		if _, dup := seen[name]; dup {
			return fmt.Errorf("topology %s: duplicate tool %q", t.Kind(), name)
		}
		seen[name] = struct{}{}
		if !protocol.IsKnownTool(name) {
			return fmt.Errorf("topology %s: tool %q has no argument schema", t.Kind(), name)
		}
		if sharedDispatch[name] != nil {
			return fmt.Errorf("topology %s: tool %q shadows a shared handler", t.Kind(), name)
		}
		if !protocol.IsMovementTool(name) {
			return fmt.Errorf("topology %s: tool %q is not a movement tool", t.Kind(), name)
		}
	}
	return nil
}

func validateDispatchMap[T any](name string, handlers map[string]T, supported []string) error {
	allowed := make(map[string]struct{}, len(supported))
	for _, k := range supported {
		if k == "" {
			return fmt.Errorf("%s: empty supported key", name)
		}
		if _, ok := allowed[k]; ok {
			return fmt.Errorf("%s: duplicate supported key %q", name, k)
		}
		allowed[k] = struct{}{}
	}
	if len(handlers) != len(allowed) {
		return fmt.Errorf("%s size mismatch: got=%d want=%d", name, len(handlers), len(allowed))
	}
	for k := range handlers {
		if _, ok := allowed[k]; !ok {
			return fmt.Errorf("%s has unsupported key %q", name, k)
		}
	}
	for k := range allowed {
		if _, ok := handlers[k]; !ok {
			return fmt.Errorf("%s missing key %q", name, k)
		}
	}
	return nil
}
