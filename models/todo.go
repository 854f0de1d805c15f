package models

// Todo is the demo entity synchronized between the server and its clients.
type Todo struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Complete    bool   `json:"complete"`
}
