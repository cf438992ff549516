// Package workers runs the background jobs of the reference sync server.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is canceled.
type Worker interface {
	Run(ctx context.Context)
}
