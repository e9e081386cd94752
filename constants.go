package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeConfirm
	ModeHelp
)

type ConfirmAction int

const (
	ConfirmClear ConfirmAction = iota
	ConfirmLoad
	ConfirmQuit
)

func (a ConfirmAction) String() string {
	switch a {
	case ConfirmClear:
		return "CLEAR"
	case ConfirmLoad:
		return "LOAD"
	case ConfirmQuit:
		return "QUIT"
	default:
		return "UNKNOWN"
	}
}

const (
	canvasWidth        = 80
	canvasHeight       = 25
	defaultAspectScale = 2
	configFileName     = ".glyphpadrc"
	maxHistory         = 100
)
