package model

import "strings"

// Action is one entry of the interactive menu.
type Action int

// Menu actions, numbered as they are shown.
const (
	ActionInvalid Action = iota
	ActionLoadReference
	ActionLoadCandidate
	ActionCompare
	ActionDisplay
	ActionExportReport
	ActionExportTable
	ActionExit
)

// MenuActions lists the selectable actions in menu order.
var MenuActions = []Action{
	ActionLoadReference,
	ActionLoadCandidate,
	ActionCompare,
	ActionDisplay,
	ActionExportReport,
	ActionExportTable,
	ActionExit,
}

var actionLabels = map[Action]string{
	ActionLoadReference: "Load sequence 1 (FASTA)",
	ActionLoadCandidate: "Load sequence 2 (FASTA)",
	ActionCompare:       "Compare sequences",
	ActionDisplay:       "Show mutations found",
	ActionExportReport:  "Export detailed report (TXT)",
	ActionExportTable:   "Export mutations table",
	ActionExit:          "Exit",
}

// Label returns the menu text for the action.
func (a Action) Label() string {
	if label, ok := actionLabels[a]; ok {
		return label
	}

	return "Invalid option"
}

// ParseAction maps a menu choice ("1".."7") to an Action.
// Anything else yields ActionInvalid.
func ParseAction(choice string) Action {
	switch strings.TrimSpace(choice) {
	case "1":
		return ActionLoadReference
	case "2":
		return ActionLoadCandidate
	case "3":
		return ActionCompare
	case "4":
		return ActionDisplay
	case "5":
		return ActionExportReport
	case "6":
		return ActionExportTable
	case "7":
		return ActionExit
	}

	return ActionInvalid
}
