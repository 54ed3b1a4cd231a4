// Stub leaderboard server so the traffic generator can run end to end
// locally:
//
//	go run ./cmd/leaderboard
//	go run ./cmd/loadgen -mode load
package main

import (
	"log"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gamingleaderboard/loadgen/pkg/contracts"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	b := newBoard()
	r := newRouter(b)

	log.Printf("Stub leaderboard listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func newRouter(b *board) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/leaderboard").Subrouter()
	api.HandleFunc("/submit", submitHandler(b)).Methods(http.MethodPost)
	api.HandleFunc("/top", topHandler(b)).Methods(http.MethodGet)
	api.HandleFunc("/rank/{user_id:[0-9]+}", rankHandler(b)).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return r
}

func submitHandler(b *board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jitter()
		var req contracts.SubmitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		if req.UserID < 1 || req.Score < 0 {
			http.Error(w, "user_id must be positive and score non-negative", http.StatusBadRequest)
			return
		}
		b.Submit(req.UserID, req.Score)
		writeJSON(w, http.StatusOK, contracts.SubmitResponse{Status: "ok"})
	}
}

func topHandler(b *board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jitter()
		players, cached := b.Top()
		source := "database"
		if cached {
			source = "cache"
		}
		writeJSON(w, http.StatusOK, contracts.TopResponse{Source: source, Players: players})
	}
}

func rankHandler(b *board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jitter()
		userID, err := userIDVar(r)
		if err != nil {
			http.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}
		rank, ok := b.Rank(userID)
		if !ok {
			writeJSON(w, http.StatusNotFound, contracts.RankResponse{})
			return
		}
		writeJSON(w, http.StatusOK, contracts.RankResponse{
			Data: &contracts.RankData{UserID: userID, Rank: &rank},
		})
	}
}

func userIDVar(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["user_id"])
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// jitter delays a few milliseconds so latency numbers are non-trivial.
func jitter() {
	time.Sleep(time.Duration(1+rand.Intn(4)) * time.Millisecond)
}
