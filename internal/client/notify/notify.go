// Package notify defines the notification sink the stores report
// user-visible events through, plus a logging-backed implementation for the
// terminal client.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/dpetrovs/ember/internal/logging"
)

// Kind classifies a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarn    Kind = "warn"
	KindError   Kind = "error"
)

// Notifier is the sink for transient user-facing notifications. The
// duration is a display hint; implementations may ignore it.
type Notifier interface {
	Notify(kind Kind, title, body string, duration time.Duration)
}

// Hint durations used across the client, matching the product's toast
// lifetimes.
const (
	DurationShort  = 3 * time.Second
	DurationMedium = 4 * time.Second
	DurationLong   = 5 * time.Second
)

// LogNotifier writes notifications to the structured log. It is the default
// sink for the terminal client, where there is no toast layer.
type LogNotifier struct {
	log logging.Logger
}

func NewLogNotifier(log logging.Logger) *LogNotifier {
	return &LogNotifier{log: log.With("component", "notify")}
}

func (n *LogNotifier) Notify(kind Kind, title, body string, duration time.Duration) {
	ctx := context.Background()
	switch kind {
	case KindWarn:
		n.log.Warn(ctx, title, "detail", body)
	case KindError:
		n.log.Error(ctx, title, "detail", body)
	default:
		n.log.Info(ctx, title, "detail", body)
	}
}

// ShowLike reports that the user liked someone.
func ShowLike(n Notifier, firstName string) {
	n.Notify(KindInfo, "Liked!", fmt.Sprintf("You liked %s", firstName), DurationShort)
}

// ShowMatch reports a confirmed mutual match.
func ShowMatch(n Notifier, firstName string) {
	n.Notify(KindSuccess, "It's a Match!", fmt.Sprintf("You and %s liked each other", firstName), DurationLong)
}

// ShowError reports a failure with a short title and detail.
func ShowError(n Notifier, title, detail string) {
	n.Notify(KindError, title, detail, DurationLong)
}

// ShowFeedLoaded reports how many new candidates arrived.
func ShowFeedLoaded(n Notifier, count int) {
	n.Notify(KindInfo, "New people nearby", fmt.Sprintf("%d profiles loaded", count), DurationShort)
}

var _ Notifier = (*LogNotifier)(nil)
