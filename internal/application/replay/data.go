package replay

import "github.com/younwookim/portalcrawler/internal/application/system"

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records input state for a single simulated frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up (jump)
	A bool `json:"a,omitempty"` // Attack
}

// ReplayData contains all data needed to replay a run
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     int          `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func toFrameInput(frame int, in system.InputState) FrameInput {
	return FrameInput{F: frame, L: in.Left, R: in.Right, U: in.Up, A: in.Attack}
}

// Input converts the recorded frame back to an input snapshot
func (f FrameInput) Input() system.InputState {
	return system.InputState{Left: f.L, Right: f.R, Up: f.U, Attack: f.A}
}
