package collection

import "strings"

// AllValue disables an equality dimension.
const AllValue = "all"

type equalDim[T any] struct {
	name  string
	get   func(T) string
	value string
}

// Filter decides which records of a page are shown. Each equality dimension
// compares one categorical field exactly; the search dimension is a
// case-insensitive substring match over a few text fields, passing when any
// of them contains the query.
type Filter[T any] struct {
	dims   []*equalDim[T]
	search []func(T) string
	query  string
}

func NewFilter[T any]() *Filter[T] {
	return &Filter[T]{}
}

// Equal registers an equality dimension. It starts disabled.
func (f *Filter[T]) Equal(name string, get func(T) string) *Filter[T] {
	f.dims = append(f.dims, &equalDim[T]{name: name, get: get, value: AllValue})
	return f
}

// Search sets the fields the substring query looks at.
func (f *Filter[T]) Search(fields ...func(T) string) *Filter[T] {
	f.search = append(f.search, fields...)
	return f
}

// Set changes the value of a dimension. Unknown names are ignored and an
// empty value means AllValue.
func (f *Filter[T]) Set(name, value string) {
	if value == "" {
		value = AllValue
	}
	for _, d := range f.dims {
		if d.name == name {
			d.value = value
		}
	}
}

func (f *Filter[T]) Value(name string) string {
	for _, d := range f.dims {
		if d.name == name {
			return d.value
		}
	}
	return AllValue
}

func (f *Filter[T]) SetSearch(q string) { f.query = q }

func (f *Filter[T]) Query() string { return f.query }

func (f *Filter[T]) Match(rec T) bool {
	for _, d := range f.dims {
		if d.value != AllValue && d.get(rec) != d.value {
			return false
		}
	}
	if f.query == "" || len(f.search) == 0 {
		return true
	}
	q := strings.ToLower(f.query)
	for _, get := range f.search {
		if strings.Contains(strings.ToLower(get(rec)), q) {
			return true
		}
	}
	return false
}

// Apply keeps the matching records, preserving order.
func (f *Filter[T]) Apply(recs []T) []T {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		if f.Match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Options lists the distinct values of a dimension in first-seen order.
func (f *Filter[T]) Options(recs []T, name string) []string {
	for _, d := range f.dims {
		if d.name == name {
			return Distinct(recs, d.get)
		}
	}
	return nil
}

func Distinct[T any](recs []T, get func(T) string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, rec := range recs {
		v := get(rec)
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
