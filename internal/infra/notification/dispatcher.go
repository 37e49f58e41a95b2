package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/mail"
	"room-reservation/internal/usecase/shared"

	"golang.org/x/sync/semaphore"
)

const (
	sendTimeout = 10 * time.Second
	timeLayout  = "Mon 02 Jan 2006 15:04"
)

// Dispatcher delivers notifications in the background, at most `concurrency`
// sends at a time. Failures are logged and dropped.
type Dispatcher struct {
	sender mail.Sender
	sem    *semaphore.Weighted
	loc    *time.Location
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(sender mail.Sender, concurrency int64, loc *time.Location, logger *slog.Logger) *Dispatcher {
	if concurrency < 1 {
		concurrency = 1
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Dispatcher{
		sender: sender,
		sem:    semaphore.NewWeighted(concurrency),
		loc:    loc,
		logger: logger,
	}
}

var _ shared.Notifier = (*Dispatcher)(nil)

func (d *Dispatcher) Notify(ctx context.Context, n shared.Notification) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.logger.WarnContext(ctx, "notification dropped: dispatcher closed",
			"kind", n.Kind,
			"reservation_id", n.ReservationID)
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	msg := d.render(n)
	go func() {
		defer d.wg.Done()

		if err := d.sem.Acquire(ctx, 1); err != nil {
			d.logger.WarnContext(ctx, "notification dropped", "kind", n.Kind, "error", err.Error())
			return
		}
		defer d.sem.Release(1)

		sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
		defer cancel()

		if err := d.sender.Send(sendCtx, msg); err != nil {
			d.logger.ErrorContext(ctx, "notification delivery failed",
				"kind", n.Kind,
				"reservation_id", n.ReservationID,
				"error", err.Error())
			return
		}
		d.logger.InfoContext(ctx, "notification sent",
			"kind", n.Kind,
			"reservation_id", n.ReservationID)
	}()
}

// Close stops accepting notifications and waits for in-flight sends until ctx is done.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "notification dispatcher: pending sends abandoned")
	}
}

func (d *Dispatcher) render(n shared.Notification) mail.Message {
	var subject, lead string
	switch n.Kind {
	case shared.EventReservationCancelled:
		subject = "Reservation cancelled"
		lead = "Your reservation has been cancelled."
	default:
		subject = "Reservation confirmed"
		lead = "Your reservation is confirmed."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n%s\n\n", n.Recipient.Name, lead)
	if n.RoomName != "" {
		fmt.Fprintf(&b, "Room: %s\n", n.RoomName)
	}
	fmt.Fprintf(&b, "From: %s\n", n.Start.In(d.loc).Format(timeLayout))
	fmt.Fprintf(&b, "To: %s\n", n.End.In(d.loc).Format(timeLayout))
	fmt.Fprintf(&b, "Reference: %s\n", n.ReservationID)

	return mail.Message{
		To:      n.Recipient.Email,
		Subject: subject,
		Text:    b.String(),
	}
}
