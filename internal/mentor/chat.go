package mentor

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sinaw-id/sinaw/internal/model"
)

var (
	// ErrEmptyMessage rejects a send with no text.
	ErrEmptyMessage = errors.New("mentor: message is empty")
	// ErrBusy rejects a send while a reply is still outstanding.
	ErrBusy = errors.New("mentor: waiting for previous reply")
	// ErrDiscarded reports a reply that arrived after the log was reset.
	ErrDiscarded = errors.New("mentor: reply discarded after reset")
)

// Ticket identifies an accepted question until its reply is resolved.
type Ticket struct {
	Question model.ChatMessage
	gen      uint64
}

// Reply is the AI message appended when a ticket resolves.
type Reply struct {
	Message  model.ChatMessage
	Fallback bool // backend failed, FallbackReply was used
}

// Exchange is one completed question and answer.
type Exchange struct {
	Question model.ChatMessage
	Reply
}

// Chat is the ordered mentor log with a single-flight busy flag. It is safe
// for concurrent use.
type Chat struct {
	mu       sync.Mutex
	messages []model.ChatMessage
	busy     bool
	gen      uint64
	timeout  time.Duration
}

// NewChat creates a log holding only the greeting. A positive timeout bounds
// each backend call made through Send.
func NewChat(timeout time.Duration) *Chat {
	c := &Chat{timeout: timeout}
	c.messages = []model.ChatMessage{newMessage(Greeting, model.SenderAI)}
	return c
}

func newMessage(text string, sender model.Sender) model.ChatMessage {
	return model.ChatMessage{ID: uuid.NewString(), Text: text, Sender: sender}
}

// Begin accepts a question: it appends the user message and marks the chat
// busy until Resolve is called with the returned ticket.
func (c *Chat) Begin(text string) (Ticket, error) {
	if strings.TrimSpace(text) == "" {
		return Ticket{}, ErrEmptyMessage
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return Ticket{}, ErrBusy
	}

	msg := newMessage(text, model.SenderUser)
	c.messages = append(c.messages, msg)
	c.busy = true
	return Ticket{Question: msg, gen: c.gen}, nil
}

// Resolve appends the reply for t, or FallbackReply when err is non-nil, and
// clears the busy flag. A ticket issued before the last Reset is dropped and
// ok is false.
func (c *Chat) Resolve(t Ticket, reply string, err error) (r Reply, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.gen != c.gen || !c.busy {
		return Reply{}, false
	}

	if err != nil {
		log.Printf("mentor: reply failed: %v", err)
		r = Reply{Message: newMessage(FallbackReply, model.SenderAI), Fallback: true}
	} else {
		r = Reply{Message: newMessage(reply, model.SenderAI)}
	}
	c.messages = append(c.messages, r.Message)
	c.busy = false
	return r, true
}

// Send runs one full exchange against svc. Backend failures become the
// fallback reply. ErrDiscarded is returned when Reset ran while the call was
// in flight; nothing is appended in that case.
func (c *Chat) Send(ctx context.Context, svc Service, text string) (Exchange, error) {
	t, err := c.Begin(text)
	if err != nil {
		return Exchange{}, err
	}
	answer, askErr := Ask(ctx, svc, text, c.timeout)
	r, ok := c.Resolve(t, answer, askErr)
	if !ok {
		return Exchange{}, ErrDiscarded
	}
	return Exchange{Question: t.Question, Reply: r}, nil
}

// Ask calls svc with the raw prompt, bounded by timeout when positive.
func Ask(ctx context.Context, svc Service, prompt string, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return svc.Reply(ctx, prompt)
}

// Timeout returns the per-call bound used by Send.
func (c *Chat) Timeout() time.Duration {
	return c.timeout
}

// Busy reports whether a reply is outstanding.
func (c *Chat) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// State returns a copy of the log together with the busy flag, read under
// one lock.
func (c *Chat) State() ([]model.ChatMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.ChatMessage(nil), c.messages...), c.busy
}

// Messages returns a copy of the log.
func (c *Chat) Messages() []model.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.ChatMessage(nil), c.messages...)
}

// Reset starts a fresh log with the greeting. Outstanding tickets are
// invalidated.
func (c *Chat) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.busy = false
	c.messages = []model.ChatMessage{newMessage(Greeting, model.SenderAI)}
}
