package collection

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Field is a sortable column, compared either as text or as a number.
type Field[T any] struct {
	name string
	str  func(T) string
	num  func(T) int
}

func StringField[T any](name string, get func(T) string) Field[T] {
	return Field[T]{name: name, str: get}
}

func NumberField[T any](name string, get func(T) int) Field[T] {
	return Field[T]{name: name, num: get}
}

func (f Field[T]) Name() string { return f.name }

// Sorter orders records by at most one field at a time.
type Sorter[T any] struct {
	fields []Field[T]
	locale language.Tag
	active string
	dir    Direction
}

func NewSorter[T any](locale language.Tag, fields ...Field[T]) *Sorter[T] {
	return &Sorter[T]{fields: fields, locale: locale, dir: Asc}
}

// Toggle flips the direction when name is already the active field and
// otherwise switches to name in ascending order.
func (s *Sorter[T]) Toggle(name string) {
	if _, ok := s.field(name); !ok {
		return
	}
	if s.active == name {
		if s.dir == Asc {
			s.dir = Desc
		} else {
			s.dir = Asc
		}
		return
	}
	s.active = name
	s.dir = Asc
}

// SortBy pins the active field and direction.
func (s *Sorter[T]) SortBy(name string, dir Direction) {
	if _, ok := s.field(name); !ok {
		return
	}
	s.active = name
	s.dir = dir
}

func (s *Sorter[T]) Active() (string, Direction) { return s.active, s.dir }

// Compare reports the order of a and b under the active field and
// direction. With no active field every pair compares equal.
func (s *Sorter[T]) Compare(a, b T) int {
	f, ok := s.field(s.active)
	if !ok {
		return 0
	}
	return s.compare(collate.New(s.locale), f, a, b)
}

// Apply returns a sorted copy of recs. Equal records keep their relative
// order.
func (s *Sorter[T]) Apply(recs []T) []T {
	out := slices.Clone(recs)
	f, ok := s.field(s.active)
	if !ok {
		return out
	}
	c := collate.New(s.locale)
	slices.SortStableFunc(out, func(a, b T) int {
		return s.compare(c, f, a, b)
	})
	return out
}

func (s *Sorter[T]) compare(c *collate.Collator, f Field[T], a, b T) int {
	var r int
	switch {
	case f.str != nil:
		r = c.CompareString(f.str(a), f.str(b))
	case f.num != nil:
		r = cmp.Compare(f.num(a), f.num(b))
	}
	if s.dir == Desc {
		return -r
	}
	return r
}

func (s *Sorter[T]) field(name string) (Field[T], bool) {
	for _, f := range s.fields {
		if f.name == name {
			return f, true
		}
	}
	return Field[T]{}, false
}
