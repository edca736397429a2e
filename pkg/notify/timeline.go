package notify

import (
	"sort"
	"sync"
	"time"

	"github.com/oarkflow/signup/pkg/models"
)

// Timeline records notifications and navigation against a virtual clock
// measured from submission. As a scheduler it runs callbacks immediately,
// stamping whatever they emit with the requested delay, so a request handler
// can hand the whole sequence to the browser in one response.
type Timeline struct {
	mu            sync.Mutex
	now           time.Duration
	notifications []models.Notification
	redirect      *models.Redirect
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

func (t *Timeline) Notify(n models.Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n.Offset = t.now
	t.notifications = append(t.notifications, n)
}

func (t *Timeline) Navigate(url string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.redirect = &models.Redirect{URL: url, Offset: t.now}
}

func (t *Timeline) After(d time.Duration, fn func()) func() {
	t.mu.Lock()
	prev := t.now
	t.now = d
	t.mu.Unlock()

	fn()

	t.mu.Lock()
	t.now = prev
	t.mu.Unlock()
	return func() {}
}

// Notifications returns every recorded notification ordered by offset.
func (t *Timeline) Notifications() []models.Notification {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := append([]models.Notification(nil), t.notifications...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out
}

// Current is the notification shown for key once the submission returns.
// Messages sharing a key replace each other, so it is the last one emitted
// at offset zero.
func (t *Timeline) Current(key string) (models.Notification, bool) {
	var (
		cur   models.Notification
		found bool
	)
	for _, n := range t.Notifications() {
		if n.Key == key && n.Offset == 0 {
			cur, found = n, true
		}
	}
	return cur, found
}

// Pending returns the notifications scheduled after submission.
func (t *Timeline) Pending() []models.Notification {
	var out []models.Notification
	for _, n := range t.Notifications() {
		if n.Offset > 0 {
			out = append(out, n)
		}
	}
	return out
}

func (t *Timeline) Redirect() (models.Redirect, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.redirect == nil {
		return models.Redirect{}, false
	}
	return *t.redirect, true
}
