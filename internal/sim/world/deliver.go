package world

import (
	"fmt"
	"strings"

	"courierbench.ai/internal/protocol"
)

// handleDeliver succeeds iff a package is held, the named recipient matches
// the package case-insensitively, and that employee works at the business at
// the current location. Any failure retains the package for a retry.
func handleDeliver(w *World, a *AgentState, args map[string]any) (bool, string, string) {
	recipient := protocol.StringArg(args, "recipient")

	if a.Pkg == nil {
		return false, protocol.ErrDeliveryMismatch, "FAILED: you are not holding a package to deliver."
	}
	if !strings.EqualFold(strings.TrimSpace(recipient), a.Pkg.Recipient) {
		return false, protocol.ErrDeliveryMismatch,
			fmt.Sprintf("FAILED: this package is addressed to %s, not %s.", a.Pkg.Recipient, recipient)
	}

	biz := w.BusinessAt(a.Loc)
	if biz == nil {
		return false, protocol.ErrDeliveryMismatch,
			fmt.Sprintf("FAILED: there is no business at your current location (%s).", a.Loc)
	}
	for _, e := range biz.Employees {
		if strings.EqualFold(e.Name, a.Pkg.Recipient) {
			text := fmt.Sprintf("SUCCESS! You hand the package to %s, %s at %s.", e.Name, e.Role, biz.Name)
			a.Pkg = nil
			a.Delivered++
			return true, "", text
		}
	}
	return false, protocol.ErrDeliveryMismatch,
		fmt.Sprintf("FAILED: %s does not work at %s (%s).", a.Pkg.Recipient, biz.Name, a.Loc)
}

func handleListEmployees(w *World, a *AgentState, _ map[string]any) (bool, string, string) {
	biz := w.BusinessAt(a.Loc)
	if biz == nil {
		return true, "", fmt.Sprintf("There is no business at %s.", a.Loc)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s employs %d people:", biz.Name, len(biz.Employees))
	for _, e := range biz.Employees {
		fmt.Fprintf(&b, " %s (%s);", e.Name, e.Role)
	}
	return true, "", strings.TrimSuffix(b.String(), ";") + "."
}

func handleDescribeLocation(w *World, a *AgentState, _ map[string]any) (bool, string, string) {
	text := w.topo.Describe(a.Loc)
	if biz := w.BusinessAt(a.Loc); biz != nil {
		text += fmt.Sprintf(" %s has its offices here.", biz.Name)
	}
	if a.Pkg != nil {
		text += fmt.Sprintf(" You are carrying a package for %s.", a.Pkg.Recipient)
		if a.Pkg.BusinessName != "" {
			text += fmt.Sprintf(" The label names the business %s.", a.Pkg.BusinessName)
		}
	}
	return true, "", text
}
