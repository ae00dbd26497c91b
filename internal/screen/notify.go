package screen

// NoticeKind classifies a user-facing notice.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeReward
)

// Notice is a short message shown to the user.
type Notice struct {
	Kind NoticeKind
	Text string
}

// Notifier receives notices from controllers. Implementations must not block.
type Notifier interface {
	Notify(Notice)
}

// NopNotifier drops every notice.
type NopNotifier struct{}

func (NopNotifier) Notify(Notice) {}

// ChanNotifier buffers notices on a channel for the UI loop to drain.
type ChanNotifier struct {
	ch chan Notice
}

// NewChanNotifier returns a notifier buffering up to size notices.
func NewChanNotifier(size int) *ChanNotifier {
	return &ChanNotifier{ch: make(chan Notice, size)}
}

// Notify sends n without blocking.
func (c *ChanNotifier) Notify(n Notice) {
	select {
	case c.ch <- n:
	default:
		// Drop if the buffer is full to avoid blocking the caller.
	}
}

// C returns the receive side of the notice channel.
func (c *ChanNotifier) C() <-chan Notice {
	return c.ch
}
