// Notices: the fire-and-forget notification capability and the on-screen toast queue.
package main

import (
	"log"
	"time"

	"github.com/google/uuid"
)

// NoticeKind selects the toast colour.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
	NoticeInfo
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeSuccess:
		return "success"
	case NoticeError:
		return "error"
	case NoticeInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Notifier receives user-facing notices. Implementations must not block.
type Notifier interface {
	Notify(message string, kind NoticeKind)
}

// Notice is a toast waiting to expire.
type Notice struct {
	ID      string
	Message string
	Kind    NoticeKind
	At      time.Time
}

// toastQueue collects notices raised during an update and keeps the ones on
// screen until their expiry message arrives.
type toastQueue struct {
	pending []Notice
	visible []Notice
	limit   int
}

func newToastQueue(limit int) *toastQueue {
	return &toastQueue{limit: limit}
}

func (q *toastQueue) Notify(message string, kind NoticeKind) {
	log.Printf("notice: [%s] %s", kind, message)
	q.pending = append(q.pending, Notice{
		ID:      uuid.NewString(),
		Message: message,
		Kind:    kind,
		At:      time.Now(),
	})
}

// drain moves pending notices on screen and returns them so the caller can
// schedule their expiry. Oldest notices are dropped past the limit.
func (q *toastQueue) drain() []Notice {
	if len(q.pending) == 0 {
		return nil
	}
	fresh := q.pending
	q.pending = nil
	q.visible = append(q.visible, fresh...)
	if q.limit > 0 && len(q.visible) > q.limit {
		q.visible = q.visible[len(q.visible)-q.limit:]
	}
	return fresh
}

func (q *toastQueue) expire(id string) {
	for i, n := range q.visible {
		if n.ID == id {
			q.visible = append(q.visible[:i], q.visible[i+1:]...)
			return
		}
	}
}

func (q *toastQueue) Visible() []Notice {
	return q.visible
}
