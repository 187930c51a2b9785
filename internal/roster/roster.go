// Package roster owns the ordered list of people whose commission is tracked.
//
// A Roster is an explicit state container created by the composition root.
// Add, Remove, Update and Reset are its only mutation entry points; each
// persists the resulting list before making it visible.
package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/commissioner/internal/models"
	"github.com/mmynk/commissioner/internal/storage"
)

// MonthLayout is the time layout of Person.Month.
const MonthLayout = "2006-01"

// ErrLastPerson is returned by Remove when only one person is left.
var ErrLastPerson = errors.New("at least one person must remain")

// Patch holds the fields to merge into a Person. Nil fields are left as is.
type Patch struct {
	Name   *string
	Profit *float64
	Month  *string
}

// Roster is the ordered, persisted collection of people.
type Roster struct {
	mu     sync.Mutex
	people []models.Person

	store  storage.Store
	key    string
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// Option configures a Roster.
type Option func(*Roster)

// WithClock overrides the clock used to pick the default month.
func WithClock(now func() time.Time) Option {
	return func(r *Roster) { r.now = now }
}

// WithIDGenerator overrides how new person IDs are generated.
func WithIDGenerator(newID func() string) Option {
	return func(r *Roster) { r.newID = newID }
}

// WithKey overrides the storage key the roster is persisted under.
func WithKey(key string) Option {
	return func(r *Roster) { r.key = key }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Roster) { r.logger = logger }
}

// Open restores the roster last persisted in store. A missing, unreadable or
// empty snapshot is not an error: the roster starts over with one default
// person, which is only written back on the first mutation.
func Open(ctx context.Context, store storage.Store, opts ...Option) *Roster {
	r := &Roster{
		store:  store,
		key:    storage.RosterKey,
		now:    time.Now,
		newID:  uuid.NewString,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	snapshot, err := store.LoadRoster(ctx, r.key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		r.logger.Info("No saved roster, starting with a default person", "key", r.key)
		r.people = []models.Person{r.defaultPerson()}
	case err != nil:
		r.logger.Warn("Discarding unreadable roster", "key", r.key, "error", err)
		r.people = []models.Person{r.defaultPerson()}
	case len(snapshot.People) == 0:
		r.logger.Warn("Discarding empty roster", "key", r.key)
		r.people = []models.Person{r.defaultPerson()}
	default:
		r.people = snapshot.People
		r.logger.Info("Roster restored", "key", r.key, "people", len(r.people))
	}

	return r
}

// People returns a copy of the roster in display order.
func (r *Roster) People() []models.Person {
	r.mu.Lock()
	defer r.mu.Unlock()

	return clonePeople(r.people)
}

// Add appends a new default person and returns it.
func (r *Roster) Add(ctx context.Context) (models.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	person := r.defaultPerson()
	next := append(clonePeople(r.people), person)
	if err := r.commit(ctx, next); err != nil {
		return models.Person{}, err
	}
	return person, nil
}

// Remove deletes the person with the given id and reports whether anyone was
// removed. It returns ErrLastPerson and leaves the roster untouched when only
// one person is left. Unknown ids are ignored.
func (r *Roster) Remove(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.people) == 1 {
		return false, ErrLastPerson
	}
	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}

	next := make([]models.Person, 0, len(r.people)-1)
	next = append(next, r.people[:i]...)
	next = append(next, r.people[i+1:]...)
	if err := r.commit(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// Update merges patch into the person with the given id and returns the
// updated person. The boolean is false, and nothing changes, when no person
// has that id.
func (r *Roster) Update(ctx context.Context, id string, patch Patch) (models.Person, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Person{}, false, nil
	}

	next := clonePeople(r.people)
	p := &next[i]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Profit != nil {
		p.Profit = *patch.Profit
	}
	if patch.Month != nil {
		p.Month = *patch.Month
	}

	if err := r.commit(ctx, next); err != nil {
		return models.Person{}, true, err
	}
	return next[i], true, nil
}

// Reset discards every person and starts over with one default person.
func (r *Roster) Reset(ctx context.Context) (models.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	person := r.defaultPerson()
	if err := r.commit(ctx, []models.Person{person}); err != nil {
		return models.Person{}, err
	}
	return person, nil
}

// commit persists next and, only on success, makes it the current roster.
// Callers must hold r.mu.
func (r *Roster) commit(ctx context.Context, next []models.Person) error {
	snapshot := &models.Snapshot{
		Version: models.SnapshotVersion,
		People:  next,
	}
	if err := r.store.SaveRoster(ctx, r.key, snapshot); err != nil {
		return fmt.Errorf("failed to persist roster: %w", err)
	}
	r.people = next
	return nil
}

func (r *Roster) indexOf(id string) int {
	for i := range r.people {
		if r.people[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *Roster) defaultPerson() models.Person {
	return models.Person{
		ID:     r.newID(),
		Name:   "",
		Profit: 0,
		Month:  r.now().Format(MonthLayout),
	}
}

func clonePeople(people []models.Person) []models.Person {
	out := make([]models.Person, len(people))
	copy(out, people)
	return out
}
