package portal

import (
	"flounder-swim/internal/collection"
	"flounder-swim/internal/metrics"
)

// Row is a record as a page shows it: the working copy when it is being
// edited, the stored record otherwise.
type Row[T any] struct {
	Record  T
	Editing bool
}

type setter[T any] map[string]func(rec *T, value string)

// editable is the store plus edit-session pair every list on every page
// is made of.
type editable[T collection.Record[T]] struct {
	page    string
	store   *collection.Store[T]
	edit    collection.EditSession[T]
	fields  setter[T]
	mode    collection.CreateMode
	metrics *metrics.Metrics
}

func newEditable[T collection.Record[T]](page string, seed []T, fields setter[T], opts Options) *editable[T] {
	return &editable[T]{
		page:    page,
		store:   collection.NewStore(seed),
		fields:  fields,
		mode:    opts.Mode,
		metrics: opts.Metrics,
	}
}

func (e *editable[T]) add(rec T) {
	e.edit.Create(e.store, rec, e.mode)
	e.metrics.Op(e.page, "add")
}

func (e *editable[T]) begin(id string) {
	if rec, ok := e.store.Get(id); ok {
		e.edit.Begin(rec)
	}
}

// set changes one field of the working copy. Unknown fields are ignored.
func (e *editable[T]) set(name, value string) {
	fn, ok := e.fields[name]
	if !ok {
		return
	}
	e.edit.Mutate(func(rec *T) { fn(rec, value) })
}

func (e *editable[T]) save() {
	if e.edit.Commit(e.store) {
		e.metrics.Op(e.page, "save")
	}
}

// submit applies fields to record id and saves it, opening the record
// first when another one (or none) is being edited.
func (e *editable[T]) submit(id string, fields map[string]string) {
	if !e.edit.Is(id) {
		e.begin(id)
	}
	if !e.edit.Is(id) {
		return
	}
	for name, value := range fields {
		e.set(name, value)
	}
	e.save()
}

func (e *editable[T]) cancel() { e.edit.Cancel() }

func (e *editable[T]) remove(id string) {
	e.store.Remove(id)
	e.metrics.Op(e.page, "delete")
}

// rows overlays the working copy on recs and appends a staged record.
func (e *editable[T]) rows(recs []T) []Row[T] {
	out := make([]Row[T], 0, len(recs)+1)
	working, editing := e.edit.Working()
	for _, rec := range recs {
		if editing && !e.edit.Staged() && e.edit.Is(rec.RecordID()) {
			out = append(out, Row[T]{Record: working, Editing: true})
			continue
		}
		out = append(out, Row[T]{Record: rec})
	}
	if e.edit.Staged() {
		out = append(out, Row[T]{Record: working, Editing: true})
	}
	return out
}
