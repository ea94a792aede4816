package mailer

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DCSlucifer/quickblog-backend/database"
)

const (
	// DefaultBatchSize bounds how many subscriber emails are in flight at
	// once during a broadcast.
	DefaultBatchSize = 50

	// DefaultBatchDelay is the pause between consecutive batches so the
	// provider is not hammered with the full subscriber list at once.
	DefaultBatchDelay = time.Second
)

// Summary reports the outcome of a broadcast. Failed counts individual
// recipients whose delivery errored; a broadcast itself never fails.
type Summary struct {
	Targeted int
	Sent     int
	Failed   int
	Skipped  string
}

// ActiveLister yields the subscribers a broadcast should target.
type ActiveLister interface {
	Active() ([]database.Subscriber, error)
}

// Fanout delivers post notifications to every active subscriber. Deliveries
// run in bounded concurrent batches and a single bad address never aborts
// the rest of the run.
type Fanout struct {
	Sender      Sender
	Subscribers ActiveLister
	SiteName    string
	SiteURL     string
	BatchSize   int
	BatchDelay  time.Duration
	Logger      *slog.Logger
}

func MakeFanout(sender Sender, subscribers ActiveLister, siteName, siteURL string) *Fanout {
	return &Fanout{
		Sender:      sender,
		Subscribers: subscribers,
		SiteName:    siteName,
		SiteURL:     siteURL,
		BatchSize:   DefaultBatchSize,
		BatchDelay:  DefaultBatchDelay,
		Logger:      slog.Default(),
	}
}

// Dispatch kicks off a broadcast in the background. The caller's request
// finishes immediately; the outcome is only visible in the logs.
func (f *Fanout) Dispatch(post *database.Post, updated bool) {
	if f == nil {
		return
	}

	snapshot := *post

	go func() {
		f.Broadcast(context.Background(), &snapshot, updated)
	}()
}

// Broadcast sends the notification for the given post to all active
// subscribers and returns a delivery summary. It never returns an error:
// an unconfigured sender or an unreachable subscriber list produce an
// empty, skipped summary instead.
func (f *Fanout) Broadcast(ctx context.Context, post *database.Post, updated bool) Summary {
	logger := f.logger()

	if f.Sender == nil || !f.Sender.Configured() {
		logger.Info("broadcast skipped", "reason", "email service not configured", "post", post.UUID)

		return Summary{Skipped: "email service not configured"}
	}

	subscribers, err := f.Subscribers.Active()
	if err != nil {
		logger.Error("broadcast skipped", "reason", "could not load subscribers", "error", err, "post", post.UUID)

		return Summary{Skipped: "could not load subscribers"}
	}

	if len(subscribers) == 0 {
		logger.Info("broadcast skipped", "reason", "no active subscribers", "post", post.UUID)

		return Summary{}
	}

	var subject, html string
	if updated {
		subject, html = UpdatedPostEmail(post, f.SiteName, f.SiteURL)
	} else {
		subject, html = NewPostEmail(post, f.SiteName, f.SiteURL)
	}

	batchSize := f.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	var sent, failed atomic.Int64

	for start := 0; start < len(subscribers); start += batchSize {
		end := start + batchSize
		if end > len(subscribers) {
			end = len(subscribers)
		}

		var wg sync.WaitGroup
		for _, subscriber := range subscribers[start:end] {
			wg.Add(1)

			go func(to string) {
				defer wg.Done()

				if err := f.Sender.Send(ctx, Email{To: to, Subject: subject, HTML: html}); err != nil {
					failed.Add(1)
					logger.Warn("subscriber delivery failed", "recipient", to, "post", post.UUID, "error", err)

					return
				}

				sent.Add(1)
			}(subscriber.Email)
		}

		wg.Wait()

		if end < len(subscribers) && f.BatchDelay > 0 {
			select {
			case <-ctx.Done():
				logger.Warn("broadcast interrupted", "post", post.UUID)

				return f.summarise(logger, post, len(subscribers), sent.Load(), failed.Load())
			case <-time.After(f.BatchDelay):
			}
		}
	}

	return f.summarise(logger, post, len(subscribers), sent.Load(), failed.Load())
}

// SendWelcome delivers the subscription confirmation in the background.
// Failures are logged and never surfaced to the subscriber.
func (f *Fanout) SendWelcome(email string) {
	if f == nil || f.Sender == nil || !f.Sender.Configured() {
		return
	}

	subject, html := WelcomeEmail(f.SiteName)

	go func() {
		if err := f.Sender.Send(context.Background(), Email{To: email, Subject: subject, HTML: html}); err != nil {
			f.logger().Warn("welcome delivery failed", "recipient", email, "error", err)
		}
	}()
}

func (f *Fanout) summarise(logger *slog.Logger, post *database.Post, targeted int, sent, failed int64) Summary {
	summary := Summary{
		Targeted: targeted,
		Sent:     int(sent),
		Failed:   int(failed),
	}

	logger.Info(
		"broadcast finished",
		"post", post.UUID,
		"targeted", summary.Targeted,
		"sent", summary.Sent,
		"failed", summary.Failed,
	)

	return summary
}

func (f *Fanout) logger() *slog.Logger {
	if f.Logger != nil {
		return f.Logger
	}

	return slog.Default()
}
