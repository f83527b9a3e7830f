package singleton

import (
	"sync"
	"time"
)

// StaticInstance is the value handed out (once) by GetStaticInstance.
type StaticInstance struct {
	createdAt time.Time
}

// CreatedAt returns when the instance was constructed.
func (s *StaticInstance) CreatedAt() time.Time {
	return s.createdAt
}

type staticGuard struct {
	mu       sync.Mutex
	instance *StaticInstance
	announce func(message string, args ...any)
}

func (g *staticGuard) get() (*StaticInstance, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.instance != nil {
		return nil, ErrAlreadyInitialized
	}

	g.instance = &StaticInstance{createdAt: time.Now()}
	g.announce("static instance created")

	return g.instance, nil
}

var staticInstance = &staticGuard{announce: instance.LogInfo}

// GetStaticInstance creates the StaticInstance on the first call and returns it.
//
// Every later call returns ErrAlreadyInitialized instead of the existing instance.
// The error is meant to surface to the caller, retrying will never succeed.
func GetStaticInstance() (*StaticInstance, error) {
	return staticInstance.get()
}
