package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/DCSlucifer/quickblog-backend/database"
)

type stubSubscribers struct {
	subscribers []database.Subscriber
	err         error
}

func (s stubSubscribers) Active() ([]database.Subscriber, error) {
	return s.subscribers, s.err
}

type stubSender struct {
	mu         sync.Mutex
	configured bool
	failFor    map[string]bool
	recipients []string
}

func (s *stubSender) Configured() bool {
	return s.configured
}

func (s *stubSender) Send(_ context.Context, email Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failFor[email.To] {
		return errors.New("delivery rejected")
	}

	s.recipients = append(s.recipients, email.To)

	return nil
}

func makeSubscribers(n int) []database.Subscriber {
	subscribers := make([]database.Subscriber, 0, n)

	for i := 0; i < n; i++ {
		subscribers = append(subscribers, database.Subscriber{
			Email:    fmt.Sprintf("reader-%d@example.com", i),
			IsActive: true,
		})
	}

	return subscribers
}

func makeFanout(sender Sender, subscribers ActiveLister) *Fanout {
	fanout := MakeFanout(sender, subscribers, "QuickBlog", "https://quickblog.example.com")
	fanout.BatchDelay = 0

	return fanout
}

func TestBroadcastCountsEveryRecipient(t *testing.T) {
	subscribers := makeSubscribers(120)

	sender := &stubSender{
		configured: true,
		failFor: map[string]bool{
			"reader-3@example.com":  true,
			"reader-77@example.com": true,
		},
	}

	fanout := makeFanout(sender, stubSubscribers{subscribers: subscribers})

	post := &database.Post{UUID: "post-uuid", Title: "Release notes", Content: "Body"}
	summary := fanout.Broadcast(context.Background(), post, false)

	if summary.Targeted != 120 {
		t.Fatalf("expected 120 targeted, got %d", summary.Targeted)
	}

	if summary.Failed != 2 {
		t.Fatalf("expected 2 failures, got %d", summary.Failed)
	}

	if summary.Sent != 118 {
		t.Fatalf("expected 118 sent, got %d", summary.Sent)
	}

	if summary.Sent+summary.Failed != summary.Targeted {
		t.Fatalf("sent+failed should equal targeted: %+v", summary)
	}
}

func TestBroadcastUnconfiguredSenderIsNoOp(t *testing.T) {
	sender := &stubSender{configured: false}
	fanout := makeFanout(sender, stubSubscribers{subscribers: makeSubscribers(5)})

	summary := fanout.Broadcast(context.Background(), &database.Post{UUID: "p"}, false)

	if summary.Skipped == "" {
		t.Fatalf("expected a skipped reason")
	}

	if summary.Targeted != 0 || summary.Sent != 0 || summary.Failed != 0 {
		t.Fatalf("expected empty summary, got %+v", summary)
	}

	if len(sender.recipients) != 0 {
		t.Fatalf("unconfigured sender should not deliver anything")
	}
}

func TestBroadcastNoSubscribers(t *testing.T) {
	sender := &stubSender{configured: true}
	fanout := makeFanout(sender, stubSubscribers{})

	summary := fanout.Broadcast(context.Background(), &database.Post{UUID: "p"}, false)

	if summary.Targeted != 0 || summary.Sent != 0 || summary.Failed != 0 || summary.Skipped != "" {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}

func TestBroadcastSubscriberLookupFailure(t *testing.T) {
	sender := &stubSender{configured: true}
	fanout := makeFanout(sender, stubSubscribers{err: errors.New("db down")})

	summary := fanout.Broadcast(context.Background(), &database.Post{UUID: "p"}, false)

	if summary.Skipped == "" {
		t.Fatalf("expected a skipped reason when the subscriber list is unavailable")
	}
}

func TestBroadcastSubjectReflectsUpdate(t *testing.T) {
	post := &database.Post{UUID: "p", Title: "Shipping update", Content: "Body"}

	subject, _ := NewPostEmail(post, "QuickBlog", "https://quickblog.example.com")
	if !strings.Contains(subject, "New post") {
		t.Fatalf("unexpected new-post subject: %q", subject)
	}

	subject, html := UpdatedPostEmail(post, "QuickBlog", "https://quickblog.example.com")
	if !strings.Contains(subject, "Updated post") {
		t.Fatalf("unexpected updated-post subject: %q", subject)
	}

	if !strings.Contains(html, "https://quickblog.example.com/blog/p") {
		t.Fatalf("expected the post link in the rendered email")
	}
}
