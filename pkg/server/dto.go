package server

// InsertRequest is the body of POST /v1/queue/items.
type InsertRequest struct {
	Value    *int `json:"value" validate:"required"`
	Priority *int `json:"priority" validate:"required"`
}

// ItemRequest addresses a queued value by path.
type ItemRequest struct {
	Value int `uri:"value"`
}

// UpdateRequest is the body of PUT /v1/queue/items/:value.
// Mode defaults to modify.
type UpdateRequest struct {
	Value    int    `uri:"value"`
	Priority *int   `json:"priority" validate:"required"`
	Mode     string `json:"mode" validate:"omitempty,oneof=modify increase decrease"`
}

type EmptyRequest struct{}

type ItemResponse struct {
	Value    int `json:"value"`
	Priority int `json:"priority"`
}

type SizeResponse struct {
	Backend  string `json:"backend"`
	Size     int    `json:"size"`
	Capacity int    `json:"capacity"`
}
