package appointment

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// FilterOption decides whether an appointment is kept, given the list's
// reference time.
type FilterOption func(ref Time, item Appointment) bool

// ByReferenceTime keeps appointments strictly after the reference time.
func ByReferenceTime() FilterOption {
	return func(ref Time, item Appointment) bool {
		return item.Time.After(ref)
	}
}

// ByReferenceAndExpireWindow keeps appointments after the reference time
// that are due within the next minutes (inclusive).
func ByReferenceAndExpireWindow(minutes int) FilterOption {
	return func(ref Time, item Appointment) bool {
		return item.Time.After(ref) && item.IsAtOrBefore(ref.AddMinutes(minutes))
	}
}

type Option func(*List)

func WithLogger(logger *slog.Logger) Option {
	return func(l *List) {
		l.logger = logger
	}
}

// List is the set of appointments stored in one day file. Items are kept
// sorted by time, with at most one appointment per time when added through
// Add. Every mutating call rewrites the whole file and only updates the
// in-memory items once the write succeeded.
type List struct {
	ref     Time
	path    string
	items   []Appointment
	dropped int
	logger  *slog.Logger
}

// Open binds a list to path and loads it. A missing file is an empty list;
// any other read failure is returned so that a later rewrite can not
// clobber a file that could not be read.
func Open(ref Time, path string, opts ...Option) (*List, error) {
	l := &List{
		ref:    ref,
		path:   path,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.Load(); err != nil {
		return nil, err
	}
	return l, nil
}

// Load replaces the items with the file content. Lines that do not parse
// are skipped and will be gone after the next write.
func (l *List) Load() error {
	lines, err := readLines(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		l.items, l.dropped = nil, 0
		return nil
	}
	if err != nil {
		return &PersistError{Op: "read", Path: l.path, Err: err}
	}

	items := make([]Appointment, 0, len(lines))
	dropped := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		item, err := Parse(line)
		if err != nil {
			dropped++
			l.logger.Debug("skipping malformed line", "path", l.path, "line", i+1, "err", err)
			continue
		}

		items = append(items, item)
	}

	if dropped > 0 {
		l.logger.Warn("malformed lines ignored, they will be dropped on next write",
			"path", l.path, "count", dropped)
	}

	sortByTime(items)
	l.items, l.dropped = items, dropped
	return nil
}

func (l *List) Path() string {
	return l.path
}

func (l *List) ReferenceTime() Time {
	return l.ref
}

// Items returns a copy of the appointments in time order
func (l *List) Items() []Appointment {
	return slices.Clone(l.items)
}

func (l *List) Len() int {
	return len(l.items)
}

func (l *List) IsEmpty() bool {
	return len(l.items) == 0
}

// Dropped is the number of malformed lines skipped by the last Load
func (l *List) Dropped() int {
	return l.dropped
}

// Add stores item, replacing an appointment at the same time.
func (l *List) Add(item Appointment) error {
	if err := CheckDescription(item.Description); err != nil {
		return err
	}

	next := lo.Reject(l.items, func(existing Appointment, _ int) bool {
		return existing.Time == item.Time
	})
	next = append(next, item)
	sortByTime(next)

	return l.commit(next)
}

// Remove deletes the appointment at t. Appointments at or before the
// reference time are history and can not be removed.
func (l *List) Remove(t Time) error {
	found, idx, ok := lo.FindIndexOf(l.items, func(item Appointment) bool {
		return item.Time == t
	})
	if !ok {
		return &NotFoundError{Time: t}
	}
	if found.IsAtOrBefore(l.ref) {
		return &PastError{Time: t}
	}

	next := append(slices.Clone(l.items[:idx]), l.items[idx+1:]...)
	return l.commit(next)
}

// Filter narrows the in-memory items. Nothing is written to disk.
func (l *List) Filter(keep FilterOption) *List {
	l.items = lo.Filter(l.items, func(item Appointment, _ int) bool {
		return keep(l.ref, item)
	})
	return l
}

// CopyFrom fills an empty list with the content of another day file.
func (l *List) CopyFrom(src string) error {
	if !l.IsEmpty() {
		return ErrNotEmpty
	}

	ok, err := exists(src)
	if err != nil {
		return &PersistError{Op: "stat", Path: src, Err: err}
	}
	if !ok {
		return &SourceMissingError{Path: src}
	}

	if filepath.Clean(src) != filepath.Clean(l.path) {
		if err := copyFile(src, l.path); err != nil {
			return &PersistError{Op: "copy", Path: src, Err: err}
		}
		l.logger.Debug("copied appointments", "from", src, "to", l.path)
	}

	return l.Load()
}

// Clear deletes the day file. A file that does not exist is already clear.
func (l *List) Clear() error {
	if err := removeFile(l.path); err != nil {
		return &PersistError{Op: "remove", Path: l.path, Err: err}
	}

	l.items = nil
	l.logger.Debug("cleared appointments", "path", l.path)
	return nil
}

// Persist rewrites the day file from the current items.
func (l *List) Persist() error {
	return l.write(l.items)
}

// Display renders every item against the reference time
func (l *List) Display() []DisplayText {
	return lo.Map(l.items, func(item Appointment, _ int) DisplayText {
		return item.Display(l.ref)
	})
}

// Render joins the display texts with newlines, without a trailing one.
func (l *List) Render() string {
	return strings.Join(lo.Map(l.Display(), func(d DisplayText, _ int) string {
		return d.String()
	}), "\n")
}

func (l *List) commit(next []Appointment) error {
	if err := l.write(next); err != nil {
		return err
	}

	l.items = next
	return nil
}

func (l *List) write(items []Appointment) error {
	lines := lo.Map(items, func(item Appointment, _ int) string {
		return item.String()
	})
	if err := writeLines(l.path, lines); err != nil {
		return &PersistError{Op: "write", Path: l.path, Err: err}
	}

	l.logger.Debug("persisted appointments", "path", l.path, "count", len(items))
	return nil
}

func sortByTime(items []Appointment) {
	slices.SortStableFunc(items, func(a, b Appointment) int {
		return a.Time.Compare(b.Time)
	})
}
