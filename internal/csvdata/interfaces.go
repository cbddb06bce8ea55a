package csvdata

import (
	"github.com/csvision/csvision/internal/model"
)

// Loader defines the interface for the CSV load service.
type Loader interface {
	SetUpdateCallback(func(*model.LoadTask))
	AddTask(path string) (*model.LoadTask, error)
	GetTask(id string) (*model.LoadTask, bool)
	GetAllTasks() []*model.LoadTask
	StopTask(id string) error
	RemoveTask(id string) error
	ManagerFor(taskID string) (*Manager, bool)
	CurrentManager() *Manager

	// SetHeaderPrefix configures the vendor prefix stripped from header names
	SetHeaderPrefix(prefix string)
}
