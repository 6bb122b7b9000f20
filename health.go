package atomfeed

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status    string `json:"status"`
	FeedCount int    `json:"feed_count"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status:    "ok",
		FeedCount: sourceCount(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
