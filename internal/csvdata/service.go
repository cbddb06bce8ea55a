package csvdata

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/csvision/csvision/internal/model"
)

// Service handles asynchronous CSV load operations
type Service struct {
	tasks        map[string]*model.LoadTask
	managers     map[string]*Manager
	currentID    string // task ID of the most recently completed load
	tasksMutex   sync.RWMutex
	maxParallel  int
	activeCount  int
	headerPrefix string
	onUpdate     func(*model.LoadTask) // callback for UI updates
}

// NewService creates a new load service
func NewService(headerPrefix string, maxParallel int) *Service {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Service{
		tasks:        make(map[string]*model.LoadTask),
		managers:     make(map[string]*Manager),
		maxParallel:  maxParallel,
		headerPrefix: headerPrefix,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.LoadTask)) {
	s.onUpdate = callback
}

// SetHeaderPrefix sets the vendor prefix stripped from header names on
// subsequent loads
func (s *Service) SetHeaderPrefix(prefix string) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.headerPrefix = prefix
}

// AddTask queues a new CSV load task
func (s *Service) AddTask(path string) (*model.LoadTask, error) {
	if ext := filepath.Ext(path); !strings.EqualFold(ext, CSVExtension) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFileType, ext)
	}

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	// Check for duplicate paths still in flight
	for _, task := range s.tasks {
		if task.Path == path && !task.Status.IsFinished() {
			return nil, fmt.Errorf("task already exists for file: %s", path)
		}
	}

	task := &model.LoadTask{
		ID:        generateTaskID(),
		Path:      path,
		Status:    model.TaskStatusPending,
		Progress:  0.0,
		Percent:   0,
		StartedAt: time.Now(),
	}

	s.tasks[task.ID] = task

	// Try to start task if we have capacity
	if s.activeCount < s.maxParallel {
		go s.startTask(task)
	}

	return task, nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.LoadTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// GetAllTasks returns all tasks
func (s *Service) GetAllTasks() []*model.LoadTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.LoadTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

// StopTask stops a running task
func (s *Service) StopTask(id string) error {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task, exists := s.tasks[id]
	if !exists {
		return fmt.Errorf("task not found: %s", id)
	}

	if !task.Status.IsActive() {
		return fmt.Errorf("task is not active: %s", task.Status)
	}

	// Set stopping status; the task goroutine observes it and cancels
	task.Status = model.TaskStatusStopping
	s.notifyUpdate(task)

	return nil
}

// RemoveTask removes a finished task and its parsed data
func (s *Service) RemoveTask(id string) error {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task, exists := s.tasks[id]
	if !exists {
		return fmt.Errorf("task not found: %s", id)
	}
	if task.Status.IsActive() {
		return fmt.Errorf("cannot remove active task: %s", id)
	}

	delete(s.tasks, id)
	delete(s.managers, id)
	if s.currentID == id {
		s.currentID = ""
	}
	return nil
}

// ManagerFor returns the parsed manager for a completed task
func (s *Service) ManagerFor(taskID string) (*Manager, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	m, exists := s.managers[taskID]
	return m, exists
}

// CurrentManager returns the manager of the most recently completed load,
// or nil when nothing has loaded yet
func (s *Service) CurrentManager() *Manager {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	return s.managers[s.currentID]
}

// startTask loads and parses a task's file
func (s *Service) startTask(task *model.LoadTask) {
	s.tasksMutex.Lock()
	s.activeCount++
	task.Status = model.TaskStatusStarting
	prefix := s.headerPrefix
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)

	defer func() {
		s.tasksMutex.Lock()
		s.activeCount--
		s.tasksMutex.Unlock()

		// Try to start next pending task
		s.startNextPendingTask()
	}()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Monitor for stop requests
	go func() {
		for {
			s.tasksMutex.RLock()
			status := task.Status
			s.tasksMutex.RUnlock()

			if status == model.TaskStatusStopping {
				cancel()
				return
			}
			if status.IsFinished() {
				return
			}
			time.Sleep(100 * time.Millisecond)
		}
	}()

	s.tasksMutex.Lock()
	task.Status = model.TaskStatusParsing
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	manager, err := s.parseFile(ctx, task, prefix)

	// Update final status
	s.tasksMutex.Lock()
	if err != nil {
		if ctx.Err() == context.Canceled {
			task.Status = model.TaskStatusStopped
		} else {
			task.Status = model.TaskStatusError
			task.LastError = err.Error()
		}
	} else {
		task.Status = model.TaskStatusCompleted
		task.Progress = 1.0
		task.Percent = 100
		task.RowCount = manager.RowCount()
		task.ColumnCount = manager.ColumnCount()
		s.managers[task.ID] = manager
		s.currentID = task.ID
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// parseFile opens the task's file and parses it, reporting byte progress
// through the task while scanning
func (s *Service) parseFile(ctx context.Context, task *model.LoadTask, prefix string) (*Manager, error) {
	f, err := os.Open(task.Path)
	if err != nil {
		return nil, fmt.Errorf("the file %s was not found: %w", task.Path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err == nil {
		s.tasksMutex.Lock()
		task.FileSize = info.Size()
		s.tasksMutex.Unlock()
	}

	reader := &progressReader{
		ctx:   ctx,
		inner: f,
		total: task.FileSize,
		report: func(done int64, total int64) {
			s.updateTaskProgress(task, done, total)
		},
	}

	manager, err := NewManagerFromReader(reader, task.Path, prefix)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	return manager, nil
}

// updateTaskProgress updates task progress from byte counts
func (s *Service) updateTaskProgress(task *model.LoadTask, done, total int64) {
	s.tasksMutex.Lock()

	if total > 0 {
		percent := float64(done) / float64(total) * 100
		task.Percent = int(percent)
		task.Progress = percent / 100.0
	}

	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

// startNextPendingTask starts the next pending task if we have capacity
func (s *Service) startNextPendingTask() {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if s.activeCount >= s.maxParallel {
		return
	}

	// Find next pending task
	for _, task := range s.tasks {
		if task.Status == model.TaskStatusPending {
			go s.startTask(task)
			return
		}
	}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.LoadTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return fmt.Sprintf("load-%d", time.Now().UnixNano())
}

// progressReader forwards reads while reporting cumulative byte counts and
// honoring context cancellation
type progressReader struct {
	ctx    context.Context
	inner  io.Reader
	done   int64
	total  int64
	report func(done, total int64)
}

func (pr *progressReader) Read(p []byte) (int, error) {
	if err := pr.ctx.Err(); err != nil {
		return 0, err
	}

	n, err := pr.inner.Read(p)
	if n > 0 {
		pr.done += int64(n)
		if pr.report != nil {
			pr.report(pr.done, pr.total)
		}
	}
	return n, err
}
