package collection

// CreateMode selects how a freshly created record reaches its collection.
type CreateMode string

const (
	// CreateAppend puts the default-valued record into the collection
	// before it is edited. Cancelling leaves it there.
	CreateAppend CreateMode = "append"
	// CreateStaged keeps the new record in the session until the first
	// commit. Cancelling drops it.
	CreateStaged CreateMode = "staged"
)

// ParseCreateMode reads a configured create mode. Anything but "staged"
// means CreateAppend.
func ParseCreateMode(s string) CreateMode {
	if CreateMode(s) == CreateStaged {
		return CreateStaged
	}
	return CreateAppend
}

// Updater is any collection a working copy can be written back to.
type Updater[T any] interface {
	Update(id string, rec T)
}

// Appender is an Updater that can also take new records.
type Appender[T any] interface {
	Updater[T]
	Add(rec T)
}

// EditSession tracks the single record being edited and its working copy.
// The zero value is a session in the viewing state.
type EditSession[T Record[T]] struct {
	baseID  string
	working *T
	staged  bool
}

// Begin starts editing a copy of rec, replacing any previous session.
func (e *EditSession[T]) Begin(rec T) {
	w := rec.Clone()
	e.baseID = rec.RecordID()
	e.working = &w
	e.staged = false
}

func (e *EditSession[T]) Editing() bool { return e.working != nil }

func (e *EditSession[T]) EditingID() string { return e.baseID }

// Is reports whether the record with the given id is being edited.
func (e *EditSession[T]) Is(id string) bool {
	return e.working != nil && e.baseID == id
}

// Staged reports whether the working copy is a new record that is not in
// its collection yet.
func (e *EditSession[T]) Staged() bool { return e.working != nil && e.staged }

func (e *EditSession[T]) Working() (T, bool) {
	if e.working == nil {
		var zero T
		return zero, false
	}
	return (*e.working).Clone(), true
}

// Mutate changes the working copy only.
func (e *EditSession[T]) Mutate(fn func(*T)) {
	if e.working == nil {
		return
	}
	fn(e.working)
}

// Commit writes the working copy back by id and ends the session. It
// reports whether there was anything to commit.
func (e *EditSession[T]) Commit(target Updater[T]) bool {
	if e.working == nil {
		return false
	}
	w := *e.working
	if a, ok := target.(Appender[T]); ok && e.staged {
		a.Add(w)
	} else {
		target.Update(e.baseID, w)
	}
	e.reset()
	return true
}

// Cancel drops the working copy.
func (e *EditSession[T]) Cancel() { e.reset() }

// Create starts editing rec as a new record of target.
func (e *EditSession[T]) Create(target Appender[T], rec T, mode CreateMode) {
	if mode == CreateStaged {
		e.Begin(rec)
		e.staged = true
		return
	}
	target.Add(rec)
	e.Begin(rec)
}

func (e *EditSession[T]) reset() {
	e.baseID = ""
	e.working = nil
	e.staged = false
}
