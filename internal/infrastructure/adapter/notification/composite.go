package notification

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/event"
)

// Composite fans an event out to several notifiers
type Composite struct {
	notifiers []event.Notifier
}

var _ event.Notifier = (*Composite)(nil)

// NewComposite skips nil notifiers
func NewComposite(notifiers ...event.Notifier) *Composite {
	c := &Composite{}
	for _, n := range notifiers {
		if n != nil {
			c.notifiers = append(c.notifiers, n)
		}
	}
	return c
}

// Publish delivers to every notifier with one shared event ID and joins their errors
func (c *Composite) Publish(ctx context.Context, evt event.Event) error {
	evt = withID(evt)

	var errList []error
	for _, n := range c.notifiers {
		if err := n.Publish(ctx, evt); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
