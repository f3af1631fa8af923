package asset

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"point-visualizer/internal/points"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Handle identifies one load request. It is comparable and does not own the dataset.
// The zero Handle refers to no request.
type Handle uuid.UUID

// IsZero reports whether h refers to no request.
func (h Handle) IsZero() bool {
	return uuid.UUID(h) == uuid.Nil
}

func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// Status is the result of Poll.
type Status int

const (
	StatusNotReady Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusNotReady:
		return "not_ready"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// entry is the loader's record for one handle. dataset and err are written once by
// the load goroutine under Loader.mu.
type entry struct {
	path    string
	status  Status
	dataset *points.Dataset
	err     error
}

// Loader reads and parses point datasets in the background and hands each resolved
// dataset to exactly one caller of Take.
type Loader struct {
	fsys  fs.FS
	log   *zap.Logger
	group errgroup.Group

	mu      sync.Mutex
	entries map[Handle]*entry
	// spent records every handle drained by Take; it alone decides take-once.
	spent map[Handle]struct{}
}

// NewLoader returns a loader reading from fsys (e.g. os.DirFS("assets")).
// A nil log discards output.
func NewLoader(fsys fs.FS, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		fsys:    fsys,
		log:     log,
		entries: make(map[Handle]*entry),
		spent:   make(map[Handle]struct{}),
	}
}

// RequestLoad starts reading and parsing path on a background goroutine and returns
// immediately. Failures are reported later through Poll.
func (l *Loader) RequestLoad(path string) Handle {
	h := Handle(uuid.New())
	e := &entry{path: path, status: StatusNotReady}

	l.mu.Lock()
	l.entries[h] = e
	l.mu.Unlock()

	l.log.Debug("load requested", zap.String("path", path), zap.Stringer("handle", h))
	l.group.Go(func() error {
		l.resolve(h, e)
		return nil
	})
	return h
}

func (l *Loader) resolve(h Handle, e *entry) {
	start := time.Now()
	ds, err := l.load(e.path)

	l.mu.Lock()
	if err != nil {
		e.status = StatusFailed
		e.err = err
	} else {
		e.status = StatusReady
		e.dataset = ds
	}
	l.mu.Unlock()

	if err != nil {
		l.log.Warn("load failed", zap.String("path", e.path), zap.Stringer("handle", h), zap.Error(err))
		return
	}
	l.log.Info("dataset loaded",
		zap.String("path", e.path),
		zap.Int("points", ds.Len()),
		zap.Duration("elapsed", time.Since(start)))
}

func (l *Loader) load(path string) (*points.Dataset, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		kind := ErrRead
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			kind = ErrPathNotFound
		}
		return nil, &LoadError{Path: path, Kind: kind, Err: err}
	}
	ds, err := points.Parse(data)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: ErrParse, Err: err}
	}
	return ds, nil
}

// Poll reports the state of h without blocking. On StatusFailed the error is a
// *LoadError. Unknown handles and handles already drained by Take report StatusNotReady.
func (l *Loader) Poll(h Handle) (Status, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[h]
	if !ok {
		return StatusNotReady, nil
	}
	return e.status, e.err
}

// Take transfers ownership of a ready dataset to the caller and forgets it.
// It succeeds at most once per handle; later calls return ErrAlreadyConsumed.
func (l *Loader) Take(h Handle) (*points.Dataset, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.spent[h]; ok {
		return nil, ErrAlreadyConsumed
	}
	e, ok := l.entries[h]
	if !ok {
		return nil, ErrNotReady
	}
	switch e.status {
	case StatusNotReady:
		return nil, ErrNotReady
	case StatusFailed:
		return nil, e.err
	}
	ds := e.dataset
	e.dataset = nil
	delete(l.entries, h)
	l.spent[h] = struct{}{}
	return ds, nil
}

// Wait blocks until every requested load has resolved. It does not consume anything.
func (l *Loader) Wait() error {
	return l.group.Wait()
}
