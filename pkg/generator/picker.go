package generator

import (
	"math/rand"

	"github.com/gamingleaderboard/loadgen/pkg/stats"
)

const maxUserID = 1000000

// choices is a uniform 4-way draw: rank appears twice, so it is picked
// twice as often as submit or top (1:1:2).
var choices = []stats.Operation{stats.OpSubmit, stats.OpTop, stats.OpRank, stats.OpRank}

// PickOperation draws the next operation kind.
func PickOperation() stats.Operation {
	return choices[rand.Intn(len(choices))]
}

// PickUserID draws a user id uniformly from [1, 1000000].
func PickUserID() int {
	return 1 + rand.Intn(maxUserID)
}

// randBetween draws a duration uniformly from [min, max).
func randBetween(min, max int64) int64 {
	if max <= min {
		return min
	}
	return min + rand.Int63n(max-min)
}
