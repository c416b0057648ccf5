package helpers

// Request/Response DTOs
type RunBatchRequest struct {
	Paths []string `json:"paths"`
}

type FileSummary struct {
	Path       string `json:"path"`
	Items      int    `json:"items"`
	Bids       int    `json:"bids"`
	Categories int    `json:"categories"`
	BidVolume  string `json:"bid_volume"`
}

type BatchResponse struct {
	RunID      string        `json:"run_id"`
	Files      []FileSummary `json:"files"`
	Skipped    []string      `json:"skipped"`
	Items      int           `json:"items"`
	Bids       int           `json:"bids"`
	Categories int           `json:"categories"`
	Users      int           `json:"users"`
	BidVolume  string        `json:"bid_volume"`
}

type UserResponse struct {
	UserID   string `json:"user_id"`
	Rating   string `json:"rating"`
	Location string `json:"location"`
	Country  string `json:"country"`
}
