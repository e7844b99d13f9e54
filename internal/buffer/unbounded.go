package buffer

import (
	"fmt"
	"os"
)

// Unbounded creates a channel buffer that grows as needed. Timer fires and
// file-watcher notifications arrive on their own goroutines; routing them
// through here means producers never block while the UI loop drains at its
// own pace.
//
// initialCap: starting size of the backing slice.
// hardLimit: maximum number of items to buffer before dropping the oldest.
//
// Usage:
//
//	in, out := buffer.Unbounded[timer.Event](16, 1024)
//	in <- ev
//	next := <-out
func Unbounded[T any](initialCap int, hardLimit int) (chan<- T, <-chan T) {
	in := make(chan T, 10)
	out := make(chan T, 10)

	go func() {
		defer close(out)

		queue := make([]T, 0, initialCap)

		for {
			var next T
			var downstream chan T

			// Enable the send case only when there is data to send.
			if len(queue) > 0 {
				next = queue[0]
				downstream = out
			}

			select {
			case val, ok := <-in:
				if !ok {
					// Input closed. Flush remaining queue then exit.
					for _, item := range queue {
						out <- item
					}
					return
				}

				if len(queue) >= hardLimit {
					// A stalled consumer this far behind is broken;
					// dropping the oldest notification is the least
					// destructive recovery.
					fmt.Fprintf(os.Stderr, "[buffer] queue limit reached (%d), dropping oldest\n", hardLimit)
					queue = queue[1:]
				}

				queue = append(queue, val)

			case downstream <- next:
				queue = queue[1:]
			}
		}
	}()

	return in, out
}
