package protocol

// Cmd represents a command sent between a renderer and a session
type Cmd int

const (
	Null Cmd = iota
	Start
	ClickPile
	Step
	AutoPlay
	Reset
	State
	Error
)

var CmdNames = map[Cmd]string{
	Null:      "Null",
	Start:     "Start",
	ClickPile: "ClickPile",
	Step:      "Step",
	AutoPlay:  "AutoPlay",
	Reset:     "Reset",
	State:     "State",
	Error:     "Error",
}

var NameToCmd = map[string]Cmd{
	"Null":      Null,
	"Start":     Start,
	"ClickPile": ClickPile,
	"Step":      Step,
	"AutoPlay":  AutoPlay,
	"Reset":     Reset,
	"State":     State,
	"Error":     Error,
}

func (c Cmd) String() string {
	return CmdNames[c]
}
