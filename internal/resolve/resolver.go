// Package resolve maps log origins (container IDs, hostnames, file paths) to
// the system tag carried on bridged events.
package resolve

import "context"

// Resolver maps a log origin to a system tag.
type Resolver interface {
	Resolve(ctx context.Context, origin string) (system string, ok bool)
}
