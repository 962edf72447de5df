// Package quiz implements the binary-number quiz: puzzle generation,
// the per-puzzle countdown, and the session state machine that scores
// rounds, tracks lives and keeps high scores.
package quiz

// Rules holds the tunable scoring and timing parameters.
type Rules struct {
	StartLives    uint32  // Lives at the start of a game (capped at MaxLives)
	MaxLives      uint32  // Upper bound for lives
	MinTime       float64 // Floor for a puzzle's time budget, in seconds
	StreakPenalty float64 // Seconds removed from the budget per streak point
	BasePoints    uint32  // Points for a correct answer with no streak
	StreakBonus   uint32  // Extra points per previous consecutive correct answer
	LifeEvery     uint32  // A life is granted every LifeEvery-th streak
}

// DefaultRules returns the standard game rules.
func DefaultRules() Rules {
	return Rules{
		StartLives:    3,
		MaxLives:      3,
		MinTime:       5.0,
		StreakPenalty: 0.5,
		BasePoints:    10,
		StreakBonus:   2,
		LifeEvery:     5,
	}
}

// startLives returns the lives a fresh game begins with.
func (r Rules) startLives() uint32 {
	return min(r.StartLives, r.MaxLives)
}

// pointsFor returns the points for a correct answer that brought the
// streak to streak (streak >= 1).
func (r Rules) pointsFor(streak uint32) uint32 {
	if streak == 0 {
		return r.BasePoints
	}
	return r.BasePoints + (streak-1)*r.StreakBonus
}

// timeBudget returns the seconds allowed for a puzzle at the given streak.
func (r Rules) timeBudget(base float64, streak uint32) float64 {
	return max(r.MinTime, base-r.StreakPenalty*float64(streak))
}
