package game

const (
	// NumPiles is the number of piles dealt at the start of a session
	NumPiles = 13
	// CardsPerPile is the number of cards dealt to each pile
	CardsPerPile = 4
	// CenterPile is the pile the first card is revealed from
	CenterPile = NumPiles - 1
)

// Phase represents the main stages of a session
type Phase int

const (
	PhaseQuestion Phase = iota
	PhaseShuffling
	PhasePlaying
	PhaseResult
)

var phaseNames = []string{"question", "shuffling", "playing", "result"}

func (p Phase) String() string {
	if p < PhaseQuestion || p > PhaseResult {
		return "unknown"
	}
	return phaseNames[p]
}

// Result is the outcome of a finished session
type Result int

const (
	NoResult Result = iota
	Success
	Failure
)

var resultNames = []string{"none", "success", "failure"}

func (r Result) String() string {
	if r < NoResult || r > Failure {
		return "unknown"
	}
	return resultNames[r]
}
