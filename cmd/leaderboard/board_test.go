package main

import (
	"testing"
)

func TestBoardKeepsBestScore(t *testing.T) {
	b := newBoard()
	b.Submit(1, 500)
	b.Submit(1, 300) // lower, ignored
	b.Submit(1, 900)

	rank, ok := b.Rank(1)
	if !ok || rank != 1 {
		t.Fatalf("rank = %d ok=%v, want 1 true", rank, ok)
	}
	top, _ := b.Top()
	if len(top) != 1 || top[0].Score != 900 {
		t.Fatalf("top = %+v, want one entry with score 900", top)
	}
}

func TestBoardTopCaching(t *testing.T) {
	b := newBoard()
	b.Submit(1, 100)

	if _, cached := b.Top(); cached {
		t.Fatal("first fetch should not be cached")
	}
	if _, cached := b.Top(); !cached {
		t.Fatal("second fetch of an unchanged board should be cached")
	}
	b.Submit(2, 200)
	if _, cached := b.Top(); cached {
		t.Fatal("fetch after a submission should not be cached")
	}
}

func TestBoardTopOrderAndLimit(t *testing.T) {
	b := newBoard()
	for i := 1; i <= 15; i++ {
		b.Submit(i, i*10)
	}
	top, _ := b.Top()
	if len(top) != topSize {
		t.Fatalf("top size = %d, want %d", len(top), topSize)
	}
	if top[0].UserID != 15 || top[0].Rank != 1 {
		t.Fatalf("top[0] = %+v, want user 15 at rank 1", top[0])
	}
	for i := 1; i < len(top); i++ {
		if top[i].Score > top[i-1].Score {
			t.Fatalf("top not sorted at %d: %+v", i, top)
		}
	}
}

func TestBoardRankUnknownUser(t *testing.T) {
	b := newBoard()
	b.Submit(1, 100)
	if _, ok := b.Rank(42); ok {
		t.Fatal("rank for unknown user should report not found")
	}
}
