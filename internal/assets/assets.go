package assets

import (
	"path/filepath"
	"strings"
)

// Handle is an opaque reference to an asset. The zero Handle refers to nothing.
type Handle uint32

type State int

const (
	StateMissing State = iota
	StatePending
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "missing"
	}
}

// LoaderFunc loads the file at path. label is the sub-asset named after '#',
// empty when the path has none.
type LoaderFunc[T any] func(path, label string) (T, error)

type entry[T any] struct {
	path  string
	label string
	state State
	value T
	err   error
}

// Server caches assets by path. Load only records the request; the values are
// produced by Resolve, which the renderer calls on the thread that owns the
// graphics context.
type Server[T any] struct {
	root    string
	handles map[string]Handle
	entries []entry[T]
}

func NewServer[T any](root string) *Server[T] {
	return &Server[T]{
		root:    root,
		handles: make(map[string]Handle),
		entries: make([]entry[T], 1), // index 0 is the zero Handle
	}
}

// Load returns the handle for path, queuing it if it has not been seen.
func (s *Server[T]) Load(path string) Handle {
	if h, exists := s.handles[path]; exists {
		return h
	}

	file, label := SplitLabel(path)
	if s.root != "" && !filepath.IsAbs(file) {
		file = filepath.Join(s.root, file)
	}

	h := Handle(len(s.entries))
	s.entries = append(s.entries, entry[T]{path: file, label: label, state: StatePending})
	s.handles[path] = h
	return h
}

// Resolve loads every pending asset. Failures are recorded and never retried.
// It returns the number of assets that failed during this call.
func (s *Server[T]) Resolve(load LoaderFunc[T], onError func(path string, err error)) int {
	failed := 0
	for i := 1; i < len(s.entries); i++ {
		e := &s.entries[i]
		if e.state != StatePending {
			continue
		}
		value, err := load(e.path, e.label)
		if err != nil {
			e.state = StateFailed
			e.err = err
			failed++
			if onError != nil {
				onError(e.path, err)
			}
			continue
		}
		e.value = value
		e.state = StateLoaded
	}
	return failed
}

// Pending reports whether any asset still waits for Resolve.
func (s *Server[T]) Pending() bool {
	for i := 1; i < len(s.entries); i++ {
		if s.entries[i].state == StatePending {
			return true
		}
	}
	return false
}

// Get returns the loaded value. ok is false unless the state is StateLoaded.
func (s *Server[T]) Get(h Handle) (value T, ok bool) {
	if state := s.State(h); state != StateLoaded {
		return value, false
	}
	return s.entries[h].value, true
}

func (s *Server[T]) State(h Handle) State {
	if h == 0 || int(h) >= len(s.entries) {
		return StateMissing
	}
	return s.entries[h].state
}

// Err returns the load error of a failed asset.
func (s *Server[T]) Err(h Handle) error {
	if s.State(h) != StateFailed {
		return nil
	}
	return s.entries[h].err
}

// Unload releases every loaded value and forgets all handles.
func (s *Server[T]) Unload(release func(T)) {
	for i := 1; i < len(s.entries); i++ {
		if s.entries[i].state == StateLoaded && release != nil {
			release(s.entries[i].value)
		}
	}
	s.handles = make(map[string]Handle)
	s.entries = s.entries[:1]
}

// SplitLabel separates "human.glb#Scene0" into the file and the sub-asset label.
func SplitLabel(path string) (file, label string) {
	if i := strings.LastIndexByte(path, '#'); i >= 0 {
		return path[:i], path[i+1:]
	}
	return path, ""
}
