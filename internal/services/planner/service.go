// Package planner owns the in-memory task collection and keeps it in
// step with persistent storage.
package planner

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/riordanpawley/weekplan/internal/domain"
)

// Repository loads and saves the whole task collection
type Repository interface {
	Load() []domain.Task
	Save(tasks []domain.Task) error
}

// EventKind describes what a mutation did
type EventKind int

const (
	EventNoop EventKind = iota
	EventCreated
	EventUpdated
	EventDeleted
	EventToggled
	EventReassigned
)

// String returns the event name
func (k EventKind) String() string {
	switch k {
	case EventCreated:
		return "created"
	case EventUpdated:
		return "updated"
	case EventDeleted:
		return "deleted"
	case EventToggled:
		return "toggled"
	case EventReassigned:
		return "reassigned"
	default:
		return "noop"
	}
}

// Event is the outcome of a successful mutation
type Event struct {
	Kind EventKind
	Task domain.Task // Task after the change (before it, for deletes)

	// Overlaps lists same-day tasks the reassigned task now overlaps.
	// Only set by lenient ReassignDay.
	Overlaps []domain.Task
}

// Changed reports whether the collection was modified
func (e Event) Changed() bool {
	return e.Kind != EventNoop
}

// Option configures a Service
type Option func(*Service)

// WithStrictReassign makes ReassignDay reject moves that would overlap
// tasks on the target day.
func WithStrictReassign(strict bool) Option {
	return func(s *Service) {
		s.strictReassign = strict
	}
}

// WithLogger sets the logger used for mutation records
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIDGenerator replaces the id source
func WithIDGenerator(gen func() domain.TaskID) Option {
	return func(s *Service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// Service is the task store. It is not safe for concurrent use; the UI
// calls it from the single update loop.
type Service struct {
	repo           Repository
	tasks          []domain.Task
	strictReassign bool
	newID          func() domain.TaskID
	logger         *log.Logger
}

// New creates a store and loads the persisted collection
func New(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		newID:  uuidV7,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tasks = repo.Load()
	if s.tasks == nil {
		s.tasks = []domain.Task{}
	}
	return s
}

func uuidV7() domain.TaskID {
	id, err := uuid.NewV7()
	if err != nil {
		return domain.TaskID(uuid.NewString())
	}
	return domain.TaskID(id.String())
}

// StrictReassign reports the reassign mode
func (s *Service) StrictReassign() bool {
	return s.strictReassign
}

// Tasks returns a copy of the collection in insertion order
func (s *Service) Tasks() []domain.Task {
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks
func (s *Service) Len() int {
	return len(s.tasks)
}

// Get returns the task with id
func (s *Service) Get(id domain.TaskID) (domain.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}
	return s.tasks[i], true
}

func (s *Service) indexOf(id domain.TaskID) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// commit persists next and, only if that succeeds, makes it the
// current collection.
func (s *Service) commit(next []domain.Task) error {
	if err := s.repo.Save(next); err != nil {
		s.logger.Error("persist failed, change discarded", "err", err)
		return err
	}
	s.tasks = next
	return nil
}

func (s *Service) clone() []domain.Task {
	next := make([]domain.Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	return next
}
