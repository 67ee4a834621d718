package util

// gin 上下文键
const (
	ContextUserKey      = "user"
	ContextRequestIDKey = "request_id"
)

const HeaderRequestID = "X-Request-ID"
