// internal/device/session.go
package device

import "context"

// Session is the narrow device-control surface the skillet engine depends on.
// It is either a live, authenticated connection to an appliance or an offline
// placeholder with no connection at all.
type Session interface {
	Connected() bool
	Configuration(ctx context.Context) (string, error)
}
