// internal/device/offline.go
package device

import (
	"context"
	"fmt"
)

// OfflineSession is the placeholder used when executing against a statically
// supplied configuration. It never touches the network and never reports
// itself connected; the configuration travels in the execution context
// instead of through the session.
type OfflineSession struct{}

func NewOfflineSession() *OfflineSession {
	return &OfflineSession{}
}

func (o *OfflineSession) Connected() bool {
	return false
}

func (o *OfflineSession) Configuration(_ context.Context) (string, error) {
	return "", fmt.Errorf("offline session has no device connection")
}
