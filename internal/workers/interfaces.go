// Package workers runs background tasks of the terminal client.
//
// A Worker blocks in Run until its context is cancelled. Workers runs a set
// of them concurrently and waits for all to return.
package workers

import "context"

// Worker is a background task that runs until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
