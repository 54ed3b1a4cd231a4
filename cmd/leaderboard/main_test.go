package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gamingleaderboard/loadgen/pkg/contracts"
)

func TestHandlersEndToEnd(t *testing.T) {
	server := httptest.NewServer(newRouter(newBoard()))
	defer server.Close()

	// submit a score
	resp, err := http.Post(server.URL+"/api/leaderboard/submit", "application/json",
		strings.NewReader(`{"user_id":7,"score":4200}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit status = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	// top reports its source and the submitted player
	resp, err = http.Get(server.URL + "/api/leaderboard/top")
	if err != nil {
		t.Fatal(err)
	}
	var top contracts.TopResponse
	if err := json.NewDecoder(resp.Body).Decode(&top); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if top.Source != "database" {
		t.Errorf("first top source = %q, want database", top.Source)
	}
	if len(top.Players) != 1 || top.Players[0].UserID != 7 {
		t.Errorf("top players = %+v, want user 7", top.Players)
	}

	// an unchanged board answers from cache
	resp, err = http.Get(server.URL + "/api/leaderboard/top")
	if err != nil {
		t.Fatal(err)
	}
	top = contracts.TopResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&top); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if top.Source != "cache" {
		t.Errorf("second top source = %q, want cache", top.Source)
	}

	// rank of the submitted user
	resp, err = http.Get(server.URL + "/api/leaderboard/rank/7")
	if err != nil {
		t.Fatal(err)
	}
	var rr contracts.RankResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if rr.Data == nil || rr.Data.Rank == nil || *rr.Data.Rank != 1 {
		t.Errorf("rank response = %+v, want rank 1", rr)
	}
}

func TestSubmitRejectsBadInput(t *testing.T) {
	server := httptest.NewServer(newRouter(newBoard()))
	defer server.Close()

	for _, body := range []string{`{not json`, `{"user_id":0,"score":100}`, `{"user_id":1,"score":-5}`} {
		resp, err := http.Post(server.URL+"/api/leaderboard/submit", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("submit %q status = %d, want 400", body, resp.StatusCode)
		}
	}
}

func TestRankUnknownUserReturns404(t *testing.T) {
	server := httptest.NewServer(newRouter(newBoard()))
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/leaderboard/rank/12345")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("rank status = %d, want 404", resp.StatusCode)
	}
	var rr contracts.RankResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		t.Fatal(err)
	}
	if rr.Data != nil {
		t.Errorf("rank data = %+v, want absent", rr.Data)
	}
}
