package flow

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound and ErrSinkNotFound are returned by AddFlow when the
// requested endpoint has never appeared in an AddEdge call.
var (
	ErrSourceNotFound = errors.New("flow: source vertex not found")
	ErrSinkNotFound   = errors.New("flow: sink vertex not found")
)

// EdgeError reports a rejected AddEdge call.
type EdgeError struct {
	Capacity int64
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity %d", e.Capacity)
}
