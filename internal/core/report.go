package core

// RoundReport summarizes a finished round for persistence. Games that
// track per-round detail expose it through an optional interface; the
// platform decides what to do with it.
type RoundReport struct {
	Score        int
	EndReason    string
	DurationSecs int
	ShotsFired   int
	Hits         int
}
