package overlay

import (
	"fmt"

	"github.com/rs/zerolog"
)

// ChainOption is a functional option for configuring a Chain.
type ChainOption func(*Chain) error

// WithObserver sets the subtree observer used to react to elements being
// added to or removed from trapped roots. By default the platform is used
// when it also implements SubtreeObserver.
func WithObserver(o SubtreeObserver) ChainOption {
	return func(c *Chain) error {
		if o == nil {
			return fmt.Errorf("subtree observer must not be nil")
		}
		c.observer = o
		return nil
	}
}

// WithKeyboardModeDetector shares a detector with the chain, for example one
// that is also fed by other widgets. By default each chain owns one.
func WithKeyboardModeDetector(d *KeyboardModeDetector) ChainOption {
	return func(c *Chain) error {
		if d == nil {
			return fmt.Errorf("keyboard mode detector must not be nil")
		}
		c.keyboard = d
		return nil
	}
}

// WithBindings overrides navigation keys. For each mode, every action named
// in b replaces the default keys for that action; other actions keep their
// defaults. Conflicting bindings are rejected.
func WithBindings(b Bindings) ChainOption {
	return func(c *Chain) error {
		merged := c.bindings.Merge(b)
		if err := merged.Validate(); err != nil {
			return fmt.Errorf("invalid key bindings: %w", err)
		}
		c.bindings = merged
		return nil
	}
}

// WithLogger sets the logger for chain activity. Defaults to the debug
// logger, which is silent unless OVERLAY_DEBUG is set.
func WithLogger(l zerolog.Logger) ChainOption {
	return func(c *Chain) error {
		c.log = l
		return nil
	}
}
