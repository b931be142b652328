package model

import (
	"context"

	"github.com/YuminosukeSato/costlearn/costs"
)

// SliceStream returns a channel that yields the given examples in order and
// is closed once they are drained. It is a convenience for feeding in-memory
// data to a streaming trainer in tests and demos.
func SliceStream(examples ...*costs.Example) <-chan *costs.Example {
	ch := make(chan *costs.Example, len(examples))
	for _, ex := range examples {
		ch <- ex
	}
	close(ch)
	return ch
}

// CollectStream drains a stream into a slice, honoring context cancellation.
// It returns the examples received before the stream closed or the context
// was canceled.
func CollectStream(ctx context.Context, stream <-chan *costs.Example) []*costs.Example {
	var out []*costs.Example
	for {
		select {
		case <-ctx.Done():
			return out
		case ex, ok := <-stream:
			if !ok {
				return out
			}
			out = append(out, ex)
		}
	}
}
