package storage

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/riordanpawley/weekplan/internal/domain"
)

// TaskRepo reads and writes the task collection in the tasks slot
type TaskRepo struct {
	kv     KV
	key    string
	logger *log.Logger
}

// NewTaskRepo creates a repo over kv. A nil logger discards output.
func NewTaskRepo(kv KV, logger *log.Logger) *TaskRepo {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &TaskRepo{kv: kv, key: TasksKey, logger: logger}
}

// Load returns the stored collection. It never fails: a missing slot
// yields an empty collection, an unparseable slot is copied aside to
// "<key>.corrupt" and yields an empty collection, and individual records
// that fail validation or repeat an id are skipped.
func (r *TaskRepo) Load() []domain.Task {
	raw, err := r.kv.Get(r.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.logger.Warn("failed to read tasks, starting empty", "key", r.key, "err", err)
		}
		return []domain.Task{}
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		r.quarantine(raw, err)
		return []domain.Task{}
	}
	records, ok := doc.([]interface{})
	if !ok {
		r.quarantine(raw, errors.New("document is not an array"))
		return []domain.Task{}
	}

	tasks := make([]domain.Task, 0, len(records))
	seen := make(map[domain.TaskID]bool, len(records))
	for i, record := range records {
		task, err := decodeRecord(record)
		if err != nil {
			r.logger.Warn("skipping invalid task record", "index", i, "err", err)
			continue
		}
		if seen[task.ID] {
			r.logger.Warn("skipping duplicate task id", "index", i, "id", task.ID)
			continue
		}
		seen[task.ID] = true
		tasks = append(tasks, task)
	}

	r.logger.Debug("loaded tasks", "count", len(tasks), "skipped", len(records)-len(tasks))
	return tasks
}

// Save overwrites the slot with the full collection
func (r *TaskRepo) Save(tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return &domain.StorageError{Op: "save", Key: r.key, Err: err}
	}
	if err := r.kv.Set(r.key, data); err != nil {
		return &domain.StorageError{Op: "save", Key: r.key, Err: err}
	}
	return nil
}

func (r *TaskRepo) quarantine(raw []byte, cause error) {
	backup := r.key + ".corrupt"
	r.logger.Warn("stored tasks are unreadable, starting empty", "key", r.key, "backup", backup, "err", cause)
	if err := r.kv.Set(backup, raw); err != nil {
		r.logger.Error("failed to back up unreadable tasks", "key", backup, "err", err)
	}
}

func decodeRecord(record interface{}) (domain.Task, error) {
	if err := validateRecord(record); err != nil {
		return domain.Task{}, err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return domain.Task{}, err
	}
	var task domain.Task
	if err := json.Unmarshal(data, &task); err != nil {
		return domain.Task{}, err
	}

	if task.Category == "" {
		task.Category = domain.CategoryOther
	}
	if err := task.Validate(); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}
