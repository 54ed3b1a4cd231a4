package main

import (
	"sort"
	"sync"

	"github.com/gamingleaderboard/loadgen/pkg/contracts"
)

const topSize = 10

// board is an in-memory leaderboard keeping the best score per user. The
// top list is cached and reused until a submission changes the board, so
// repeated fetches report a cache hit.
type board struct {
	mu     sync.Mutex
	scores map[int]int
	dirty  bool
	top    []contracts.PlayerScore
}

func newBoard() *board {
	return &board{scores: make(map[int]int), dirty: true}
}

// Submit records score for userID, keeping the best.
func (b *board) Submit(userID, score int) {
	b.mu.Lock()
	if score > b.scores[userID] {
		b.scores[userID] = score
		b.dirty = true
	}
	b.mu.Unlock()
}

// Top returns the highest entries and whether they came from the cache.
func (b *board) Top() ([]contracts.PlayerScore, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.dirty {
		return copyPlayers(b.top), true
	}

	all := make([]contracts.PlayerScore, 0, len(b.scores))
	for id, s := range b.scores {
		all = append(all, contracts.PlayerScore{UserID: id, Score: s})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score > all[j].Score
		}
		return all[i].UserID < all[j].UserID
	})
	if len(all) > topSize {
		all = all[:topSize]
	}
	for i := range all {
		all[i].Rank = i + 1
	}
	b.top = all
	b.dirty = false
	return copyPlayers(all), false
}

// Rank returns the 1-based rank of userID, or false if the user is unknown.
// Ties break toward the lower user id.
func (b *board) Rank(userID int) (int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	score, ok := b.scores[userID]
	if !ok {
		return 0, false
	}
	rank := 1
	for id, s := range b.scores {
		if s > score || (s == score && id < userID) {
			rank++
		}
	}
	return rank, true
}

func copyPlayers(in []contracts.PlayerScore) []contracts.PlayerScore {
	out := make([]contracts.PlayerScore, len(in))
	copy(out, in)
	return out
}
