package contracts

// SubmitRequest is the body of POST /submit.
type SubmitRequest struct {
	UserID int `json:"user_id"`
	Score  int `json:"score"`
}

// SubmitResponse is the acknowledgement for a score submission.
type SubmitResponse struct {
	Status string `json:"status"`
}

// TopResponse is the body of GET /top. Source tells whether the service
// answered from its cache or from storage; it may be absent.
type TopResponse struct {
	Source  string        `json:"source,omitempty"`
	Players []PlayerScore `json:"players,omitempty"`
}

// PlayerScore is one leaderboard entry.
type PlayerScore struct {
	UserID int `json:"user_id"`
	Score  int `json:"score"`
	Rank   int `json:"rank,omitempty"`
}

// RankResponse is the body of GET /rank/{user_id}. Both data and rank may
// be absent for unknown users.
type RankResponse struct {
	Data *RankData `json:"data,omitempty"`
}

// RankData carries the rank payload nested under data.
type RankData struct {
	UserID int  `json:"user_id,omitempty"`
	Rank   *int `json:"rank,omitempty"`
}
