// Package listctrl implements the shared behavior of every resource list
// screen: pagination, debounced search, filters, modal CRUD and status
// toggling. One generic Controller serves hospitals, clinics, doctors,
// patients and admins alike; only the Source differs.
package listctrl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	medadmin "github.com/carebase/medadmin-go"
	"github.com/carebase/medadmin-go/audit"
	"github.com/carebase/medadmin-go/metrics"
)

// Source fetches one page of records. The entity services in the root
// package all satisfy this for their record type.
type Source[T any] interface {
	List(ctx context.Context, opts medadmin.ListOptions) (medadmin.Page[T], error)
}

// StatsFunc fetches the aggregate counters shown above the list.
type StatsFunc func(ctx context.Context) (medadmin.Stats, error)

// Notifier surfaces operation outcomes to the user (toasts, status bars).
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Phase is the list screen's fetch state.
type Phase int

const (
	// Idle means no fetch has run yet.
	Idle Phase = iota

	// Loading means a fetch is in flight.
	Loading

	// Loaded means the current page reflects the latest fetch.
	Loaded

	// Failed means the latest fetch errored; Err holds the message.
	Failed
)

// DefaultPageSize is the page size used until the user picks another.
const DefaultPageSize = 10

// Controller drives one resource list screen.
//
// Every fetch carries a sequence number taken under the lock; a response
// whose number no longer matches the latest is discarded, so a slow page-1
// response can never overwrite a fresher page-2 one.
type Controller[T any] struct {
	entity    string
	source    Source[T]
	stats     StatsFunc
	notifier  Notifier
	confirmer Confirmer
	logger    *slog.Logger
	metrics   *metrics.Metrics
	auditor   *audit.Logger
	debounce  time.Duration

	statsGroup singleflight.Group

	mu            sync.Mutex
	seq           uint64
	phase         Phase
	page          medadmin.Page[T]
	opts          medadmin.ListOptions
	errMsg        string
	statsValue    medadmin.Stats
	searchTimer   *time.Timer
	pendingSearch string
}

// Option configures a Controller.
type Option[T any] func(*Controller[T])

// WithDebounce overrides the search debounce delay. Zero applies searches
// immediately, which tests rely on.
func WithDebounce[T any](d time.Duration) Option[T] {
	return func(c *Controller[T]) { c.debounce = d }
}

// WithPageSize overrides the initial page size.
func WithPageSize[T any](n int) Option[T] {
	return func(c *Controller[T]) {
		if n > 0 {
			c.opts.Limit = n
		}
	}
}

// WithStats wires the aggregate counters shown above the list. They refresh
// after every successful mutation; concurrent refreshes are collapsed into
// one backend call.
func WithStats[T any](f StatsFunc) Option[T] {
	return func(c *Controller[T]) { c.stats = f }
}

// WithNotifier sets where success and error messages go.
func WithNotifier[T any](n Notifier) Option[T] {
	return func(c *Controller[T]) { c.notifier = n }
}

// WithConfirmer sets who confirms destructive actions. Without one, deletes
// proceed unconfirmed.
func WithConfirmer[T any](cf Confirmer) Option[T] {
	return func(c *Controller[T]) { c.confirmer = cf }
}

// WithLogger sets a structured logger.
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(c *Controller[T]) { c.logger = l }
}

// WithMetrics records fetch and mutation outcomes.
func WithMetrics[T any](m *metrics.Metrics) Option[T] {
	return func(c *Controller[T]) { c.metrics = m }
}

// WithAudit emits mutation events to the audit logger.
func WithAudit[T any](a *audit.Logger) Option[T] {
	return func(c *Controller[T]) { c.auditor = a }
}

// New creates a controller for one entity's list screen. The entity name
// labels log lines, metrics and audit events.
func New[T any](entity string, source Source[T], opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		entity:   entity,
		source:   source,
		logger:   slog.Default(),
		debounce: medadmin.DefaultSearchDebounce,
		opts:     medadmin.ListOptions{Page: 1, Limit: DefaultPageSize},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Phase returns the current fetch state.
func (c *Controller[T]) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Page returns the current page of records.
func (c *Controller[T]) Page() medadmin.Page[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Err returns the user-presentable message of the latest failed fetch.
func (c *Controller[T]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// Options returns the query parameters the next fetch will carry.
func (c *Controller[T]) Options() medadmin.ListOptions {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opts
}

// Stats returns the latest fetched aggregate counters.
func (c *Controller[T]) Stats() medadmin.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statsValue
}

// Reload fetches the current page. It is synchronous; the caller decides
// whether to run it on a goroutine. A reload that finishes after a newer one
// started is discarded without touching state.
func (c *Controller[T]) Reload(ctx context.Context) {
	c.mu.Lock()
	c.seq++
	mine := c.seq
	opts := c.opts
	c.phase = Loading
	c.mu.Unlock()

	page, err := c.source.List(ctx, opts)

	c.mu.Lock()
	defer c.mu.Unlock()
	if mine != c.seq {
		if c.metrics != nil {
			c.metrics.RecordStaleDrop(c.entity)
		}
		c.logger.Debug("dropping stale list response", "entity", c.entity, "seq", mine, "latest", c.seq)
		return
	}
	if err != nil {
		c.phase = Failed
		c.errMsg = medadmin.UserMessage(err)
		if c.metrics != nil {
			c.metrics.RecordListFetch(c.entity, "failure")
		}
		c.logger.Warn("list fetch failed", "entity", c.entity, "error", err)
		return
	}
	c.phase = Loaded
	c.errMsg = ""
	c.page = page
	// The server may have clamped us onto a now-shorter last page; follow it.
	if page.Page > 0 {
		c.opts.Page = page.Page
	}
	if c.metrics != nil {
		c.metrics.RecordListFetch(c.entity, "success")
	}
}

// SetSearch records a new search query and schedules a debounced fetch from
// page 1. Each call restarts the timer, so only the final query of a burst
// of keystrokes reaches the backend.
func (c *Controller[T]) SetSearch(ctx context.Context, query string) {
	c.mu.Lock()
	c.pendingSearch = query
	if c.searchTimer != nil {
		c.searchTimer.Stop()
	}
	if c.debounce <= 0 {
		c.mu.Unlock()
		c.applySearch(ctx, query)
		return
	}
	c.searchTimer = time.AfterFunc(c.debounce, func() {
		c.applySearch(ctx, query)
	})
	c.mu.Unlock()
}

func (c *Controller[T]) applySearch(ctx context.Context, query string) {
	c.mu.Lock()
	if query != c.pendingSearch {
		// A newer keystroke restarted the timer; let its firing win.
		c.mu.Unlock()
		return
	}
	c.opts.Search = query
	c.opts.Page = 1
	c.mu.Unlock()
	c.Reload(ctx)
}

// SetRoleFilter changes the role filter and fetches from page 1.
func (c *Controller[T]) SetRoleFilter(ctx context.Context, role string) {
	c.mu.Lock()
	c.opts.Role = role
	c.opts.Page = 1
	c.mu.Unlock()
	c.Reload(ctx)
}

// SetStatusFilter changes the active/inactive filter and fetches from page 1.
func (c *Controller[T]) SetStatusFilter(ctx context.Context, status string) {
	c.mu.Lock()
	c.opts.Status = status
	c.opts.Page = 1
	c.mu.Unlock()
	c.Reload(ctx)
}

// SetPage fetches the given page, preserving search and filters. Out-of-range
// values are clamped to the known page span.
func (c *Controller[T]) SetPage(ctx context.Context, page int) {
	c.mu.Lock()
	if page < 1 {
		page = 1
	}
	if c.page.TotalPages > 0 && page > c.page.TotalPages {
		page = c.page.TotalPages
	}
	if page == c.opts.Page {
		c.mu.Unlock()
		return
	}
	c.opts.Page = page
	c.mu.Unlock()
	c.Reload(ctx)
}

// NextPage advances one page when a later page exists.
func (c *Controller[T]) NextPage(ctx context.Context) {
	c.mu.Lock()
	next := c.opts.Page + 1
	c.mu.Unlock()
	c.SetPage(ctx, next)
}

// PrevPage goes back one page when an earlier page exists.
func (c *Controller[T]) PrevPage(ctx context.Context) {
	c.mu.Lock()
	prev := c.opts.Page - 1
	c.mu.Unlock()
	c.SetPage(ctx, prev)
}

// SetPageSize changes the page size and fetches from page 1, since the old
// page index is meaningless under a new size.
func (c *Controller[T]) SetPageSize(ctx context.Context, size int) {
	if size < 1 {
		return
	}
	c.mu.Lock()
	if size == c.opts.Limit {
		c.mu.Unlock()
		return
	}
	c.opts.Limit = size
	c.opts.Page = 1
	c.mu.Unlock()
	c.Reload(ctx)
}

// Do runs a mutation (create or update from the modal form), surfaces the
// outcome, and on success reloads the list and refreshes stats. The reported
// bool is whether the mutation succeeded.
func (c *Controller[T]) Do(ctx context.Context, operation, entityID, successMessage string, op func(context.Context) error) bool {
	err := op(ctx)
	c.record(ctx, operation, entityID, err)
	if err != nil {
		if c.notifier != nil {
			c.notifier.Error(medadmin.UserMessage(err))
		}
		return false
	}
	if c.notifier != nil && successMessage != "" {
		c.notifier.Success(successMessage)
	}
	c.Reload(ctx)
	c.RefreshStats(ctx)
	return true
}

// Delete runs the delete flow: confirmation first, then the mutation. A
// cancelled confirmation issues no backend call at all.
func (c *Controller[T]) Delete(ctx context.Context, entityID, prompt, successMessage string, op func(context.Context) error) bool {
	if c.confirmer != nil && !c.confirmer.Confirm(prompt) {
		return false
	}
	return c.Do(ctx, "delete", entityID, successMessage, op)
}

// ToggleActive flips a record's active flag pessimistically: the list keeps
// showing the old state until the backend confirms, and only a successful
// toggle triggers the reload that makes the change visible.
func (c *Controller[T]) ToggleActive(ctx context.Context, entityID string, active bool, op func(context.Context) error) bool {
	message := "Deactivated successfully"
	if active {
		message = "Activated successfully"
	}
	return c.Do(ctx, "toggle_status", entityID, message, op)
}

// RefreshStats refetches the aggregate counters. Concurrent calls are
// deduplicated into a single backend request.
func (c *Controller[T]) RefreshStats(ctx context.Context) {
	if c.stats == nil {
		return
	}
	v, err, _ := c.statsGroup.Do("stats", func() (interface{}, error) {
		return c.stats(ctx)
	})
	if err != nil {
		c.logger.Warn("stats refresh failed", "entity", c.entity, "error", err)
		return
	}
	c.mu.Lock()
	c.statsValue = v.(medadmin.Stats)
	c.mu.Unlock()
}

func (c *Controller[T]) record(ctx context.Context, operation, entityID string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	if c.metrics != nil {
		c.metrics.RecordMutation(c.entity, operation, result)
	}
	if c.auditor != nil {
		e := audit.Event{
			RequestID: audit.RequestID(ctx),
			Action:    operation,
			Entity:    c.entity,
			EntityID:  entityID,
			Result:    result,
		}
		if id := medadmin.IdentityFromContext(ctx); id != nil {
			e.ActorID = id.ID
			e.Role = string(id.Role)
		}
		if err != nil {
			e.Error = err.Error()
		}
		c.auditor.Log(e)
	}
}
