package libevents

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrInvalidListener = errors.New("invalid listener")
)

// Channel names the listener store a registration lives in.
type Channel string

const (
	ChannelOn   Channel = "on"
	ChannelOnly Channel = "only"
	ChannelAny  Channel = "any"
)

// method returns the registration method that writes into the channel.
func (c Channel) method() string {
	if c == ChannelAny {
		return "OnAny"
	}
	if c == ChannelOnly {
		return "Only"
	}
	return "On"
}

type DuplicateKeyError struct {
	Name string
}

func (e DuplicateKeyError) Error() string {
	return fmt.Sprintf("observer hook %q is already registered", e.Name)
}

func (e DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// InvalidListenerError reports a stored listener that cannot be invoked,
// either a nil handle or a handle without callback.
type InvalidListenerError struct {
	Channel    Channel
	EventID    any
	ListenerID string
}

func (e InvalidListenerError) Error() string {
	return fmt.Sprintf("invalid listener %q for event %v: registered through %s() without a callback",
		e.ListenerID, e.EventID, e.Channel.method())
}

func (e InvalidListenerError) Unwrap() error { return ErrInvalidListener }
