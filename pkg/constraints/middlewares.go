package constraints

const (
	HeaderRequestID     = "X-Request-ID"
	HeaderQueueBackend  = "X-Queue-Backend"
	HeaderPairCount     = "X-Pair-Count"
	ContextKeyRequestID = "request_id"
)
