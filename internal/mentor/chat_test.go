package mentor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sinaw-id/sinaw/internal/model"
)

// fakeService records calls and answers from a function.
type fakeService struct {
	calls  atomic.Int32
	answer func(ctx context.Context, prompt string) (string, error)
}

func (f *fakeService) Reply(ctx context.Context, prompt string) (string, error) {
	f.calls.Add(1)
	return f.answer(ctx, prompt)
}

func echoService() *fakeService {
	return &fakeService{answer: func(_ context.Context, prompt string) (string, error) {
		return "jawaban: " + prompt, nil
	}}
}

func TestNewChat_StartsWithGreeting(t *testing.T) {
	t.Parallel()

	c := NewChat(0)
	msgs := c.Messages()
	if len(msgs) != 1 || msgs[0].Text != Greeting || msgs[0].Sender != model.SenderAI {
		t.Fatalf("messages = %+v, want greeting only", msgs)
	}
	if c.Busy() {
		t.Fatal("new chat is busy")
	}
}

func TestSend_EmptyRejected(t *testing.T) {
	t.Parallel()

	c := NewChat(0)
	svc := echoService()
	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := c.Send(context.Background(), svc, text); !errors.Is(err, ErrEmptyMessage) {
			t.Fatalf("Send(%q) error = %v, want ErrEmptyMessage", text, err)
		}
	}
	if got := len(c.Messages()); got != 1 {
		t.Fatalf("messages = %d, want 1 (no entries appended)", got)
	}
	if got := svc.calls.Load(); got != 0 {
		t.Fatalf("service calls = %d, want 0", got)
	}
}

func TestSend_AppendsQuestionAndReply(t *testing.T) {
	t.Parallel()

	c := NewChat(0)
	ex, err := c.Send(context.Background(), echoService(), "Apa itu SEO?")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if ex.Fallback {
		t.Fatal("exchange fell back on success")
	}
	if ex.Question.Text != "Apa itu SEO?" || ex.Message.Text != "jawaban: Apa itu SEO?" {
		t.Fatalf("exchange = %+v", ex)
	}

	msgs := c.Messages()
	if len(msgs) != 3 {
		t.Fatalf("messages = %d, want 3", len(msgs))
	}
	if msgs[1].Sender != model.SenderUser || msgs[2].Sender != model.SenderAI {
		t.Fatalf("senders = %s,%s, want user,ai", msgs[1].Sender, msgs[2].Sender)
	}
	if msgs[1].ID == msgs[2].ID || msgs[1].ID == "" {
		t.Fatalf("message ids not unique: %q %q", msgs[1].ID, msgs[2].ID)
	}
	if c.Busy() {
		t.Fatal("chat still busy after exchange")
	}
}

func TestSend_FailureUsesFallback(t *testing.T) {
	t.Parallel()

	c := NewChat(0)
	svc := &fakeService{answer: func(context.Context, string) (string, error) {
		return "", errors.New("boom")
	}}

	ex, err := c.Send(context.Background(), svc, "halo")
	if err != nil {
		t.Fatalf("Send error = %v, want failure absorbed", err)
	}
	if !ex.Fallback || ex.Message.Text != FallbackReply {
		t.Fatalf("exchange = %+v, want fallback reply", ex)
	}
	if c.Busy() {
		t.Fatal("chat still busy after fallback")
	}
}

func TestSend_TimeoutFallsBack(t *testing.T) {
	t.Parallel()

	c := NewChat(20 * time.Millisecond)
	svc := &fakeService{answer: func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}}

	ex, err := c.Send(context.Background(), svc, "halo")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !ex.Fallback {
		t.Fatal("hung call did not fall back after timeout")
	}
}

func TestBeginResolve_BusyFlag(t *testing.T) {
	t.Parallel()

	c := NewChat(0)
	first, err := c.Begin("pertama")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if !c.Busy() {
		t.Fatal("chat not busy after Begin")
	}

	if _, err := c.Begin("kedua"); !errors.Is(err, ErrBusy) {
		t.Fatalf("second Begin error = %v, want ErrBusy", err)
	}
	if got := len(c.Messages()); got != 2 {
		t.Fatalf("messages = %d, want 2 (rejected send not appended)", got)
	}

	if _, ok := c.Resolve(first, "ok", nil); !ok {
		t.Fatal("Resolve rejected live ticket")
	}
	if _, err := c.Begin("kedua"); err != nil {
		t.Fatalf("Begin after resolve: %v", err)
	}
}

func TestSend_ConcurrentRejectedWhileInFlight(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	started := make(chan struct{})
	svc := &fakeService{answer: func(context.Context, string) (string, error) {
		close(started)
		<-release
		return "selesai", nil
	}}

	c := NewChat(0)
	done := make(chan error, 1)
	go func() {
		_, err := c.Send(context.Background(), svc, "pertama")
		done <- err
	}()
	<-started

	if _, err := c.Send(context.Background(), echoService(), "kedua"); !errors.Is(err, ErrBusy) {
		t.Fatalf("concurrent Send error = %v, want ErrBusy", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first Send: %v", err)
	}
	if _, err := c.Send(context.Background(), echoService(), "ketiga"); err != nil {
		t.Fatalf("Send after resolve: %v", err)
	}
}

func TestReset_DropsStaleTicket(t *testing.T) {
	t.Parallel()

	c := NewChat(0)
	tk, err := c.Begin("halo")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	c.Reset()

	if c.Busy() {
		t.Fatal("chat busy after reset")
	}
	if _, ok := c.Resolve(tk, "terlambat", nil); ok {
		t.Fatal("stale ticket resolved after reset")
	}
	msgs := c.Messages()
	if len(msgs) != 1 || msgs[0].Text != Greeting {
		t.Fatalf("messages = %+v, want greeting only", msgs)
	}
}

func TestSend_ResetWhileInFlightDiscards(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	started := make(chan struct{})
	svc := &fakeService{answer: func(context.Context, string) (string, error) {
		close(started)
		<-release
		return "terlambat", nil
	}}

	c := NewChat(0)
	type result struct {
		ex  Exchange
		err error
	}
	done := make(chan result, 1)
	go func() {
		ex, err := c.Send(context.Background(), svc, "halo")
		done <- result{ex, err}
	}()
	<-started

	c.Reset()
	close(release)

	res := <-done
	if !errors.Is(res.err, ErrDiscarded) {
		t.Fatalf("Send error = %v, want ErrDiscarded", res.err)
	}
	if res.ex.Message.ID != "" {
		t.Fatalf("discarded exchange carries reply %+v", res.ex.Message)
	}
	msgs, busy := c.State()
	if busy {
		t.Fatal("chat busy after discarded send")
	}
	if len(msgs) != 1 || msgs[0].Text != Greeting {
		t.Fatalf("messages = %+v, want greeting only", msgs)
	}
}

func TestState_ReportsLogAndBusyTogether(t *testing.T) {
	t.Parallel()

	c := NewChat(0)
	tk, err := c.Begin("halo")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	msgs, busy := c.State()
	if !busy || len(msgs) != 2 {
		t.Fatalf("State() = %d messages busy=%v, want 2 and busy", len(msgs), busy)
	}

	c.Resolve(tk, "hai", nil)
	msgs, busy = c.State()
	if busy || len(msgs) != 3 {
		t.Fatalf("State() = %d messages busy=%v, want 3 and idle", len(msgs), busy)
	}
	if msgs[2].Sender != model.SenderAI {
		t.Fatalf("last sender = %s, want ai", msgs[2].Sender)
	}
}
