// internal/skillet/context.go
package skillet

import (
	"context"
	"fmt"

	"github.com/annabarone/skilletlib/internal/device"
	"github.com/mitchellh/mapstructure"
)

// Execution-context keys with reserved meaning. Everything else passes
// through untouched.
const (
	KeyHostname = "hostname"
	KeyUsername = "username"
	KeyPassword = "password"
	KeyPort     = "port"
	KeyConfig   = "config"
)

var onlineRequiredKeys = []string{KeyHostname, KeyUsername, KeyPassword}

// InitializeContext resolves the execution mode and returns a new context
// map holding the caller's inputs plus the current device configuration.
// The caller's map is never mutated.
//
// Resolution order: an injected session wins, and must be connected; a
// supplied-but-disconnected session is a hard error, never a silent offline
// fallback. Otherwise the online field set opens a new session, otherwise a
// supplied "config" selects offline mode, otherwise the inputs are invalid.
func (s *Skillet) InitializeContext(ctx context.Context, initial map[string]any) (map[string]any, error) {
	ec := make(map[string]any, len(initial)+1)
	for k, v := range initial {
		ec[k] = v
	}

	if s.session != nil {
		if !s.session.Connected() {
			return nil, fmt.Errorf("%w: could not get configuration, supplied session is not connected", ErrLoader)
		}
		cfg, err := s.session.Configuration(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch device configuration: %w", err)
		}
		ec[KeyConfig] = cfg
		return ec, nil
	}

	if hasKeys(initial, onlineRequiredKeys) {
		info, err := decodeConnectInfo(initial)
		if err != nil {
			return nil, fmt.Errorf("%w: bad connection fields: %v", ErrValidation, err)
		}
		if info.Port == "" {
			info.Port = "443"
		}
		sess, err := s.dial(ctx, info)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to %s: %w", info.Hostname, err)
		}
		s.session = sess
		cfg, err := sess.Configuration(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch device configuration: %w", err)
		}
		ec[KeyConfig] = cfg
		return ec, nil
	}

	if _, ok := initial[KeyConfig]; ok {
		s.logger.Info("offline mode detected")
		s.session = device.NewOfflineSession()
		return ec, nil
	}

	return nil, fmt.Errorf("%w: required fields for neither online nor offline mode found in context", ErrValidation)
}

// decodeConnectInfo pulls the connection fields out of the untyped context.
// Weak typing lets callers pass the port as an int.
func decodeConnectInfo(m map[string]any) (device.ConnectInfo, error) {
	var info device.ConnectInfo
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &info,
	})
	if err != nil {
		return info, err
	}
	if err := dec.Decode(m); err != nil {
		return info, err
	}
	return info, nil
}

func hasKeys(m map[string]any, keys []string) bool {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return false
		}
	}
	return true
}
