package logger

import (
	"os"

	"github.com/pterm/pterm"
)

// InitPterm sends every pterm prefix printer to stderr so that stdout
// only carries command output.
func InitPterm() {
	pterm.Info.Writer = os.Stderr
	pterm.Success.Writer = os.Stderr
	pterm.Warning.Writer = os.Stderr
	pterm.Error.Writer = os.Stderr
	pterm.Debug.Writer = os.Stderr
}
