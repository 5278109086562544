package garment

import "fmt"

// Stage is a shop's tracked progress state for a physical item.
type Stage string

const (
	StageNew        Stage = "New"
	StageInProgress Stage = "In Progress"
	StageReady      Stage = "Ready For Pickup"
	StageDone       Stage = "Done"
)

// Stages returns the intended flow order. The API validates membership only;
// staff may move a garment backwards (e.g. reopening picked-up work).
func Stages() []Stage {
	return []Stage{StageNew, StageInProgress, StageReady, StageDone}
}

func ValidStage(s string) bool {
	switch Stage(s) {
	case StageNew, StageInProgress, StageReady, StageDone:
		return true
	}
	return false
}

// StageChangeDescription renders the history entry recorded on every
// stage transition.
func StageChangeDescription(from, to string) string {
	return fmt.Sprintf("Stage changed from %s to %s", from, to)
}
