package domain

// Follow health scoring. New follows start at ScoreBase; every
// successful delivery to the follow's inbox adds ScoreBonus and every
// failure adds ScorePenalty, with the total clamped at ScoreMax. A
// follow whose score reaches zero is pruned.
const (
	ScoreBase    = 1000
	ScoreBonus   = 10
	ScorePenalty = -20
	ScoreMax     = 10000
)
