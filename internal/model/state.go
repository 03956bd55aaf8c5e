package model

import "fyne.io/fyne/v2/data/binding"

// BridgeDisabled is shown as the bridge address when no bridge is running.
const BridgeDisabled = "disabled"

// StatusState is what the main window shows, held as fyne data bindings so
// the labels update when the app changes a value.
type StatusState struct {
	// Location is the absolute path of the grade data file.
	Location binding.String
	// BridgeAddress is where the document bridge listens, BridgeDisabled
	// when it is not running.
	BridgeAddress binding.String
	// Message is the most recent user-facing status line.
	Message binding.String
}

// NewStatusState creates a StatusState with initialized bindings.
func NewStatusState() *StatusState {
	message := binding.NewString()
	_ = message.Set("Ready")
	bridgeAddress := binding.NewString()
	_ = bridgeAddress.Set(BridgeDisabled)

	return &StatusState{
		Location:      binding.NewString(),
		BridgeAddress: bridgeAddress,
		Message:       message,
	}
}
