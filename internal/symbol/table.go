package symbol

import (
	"fmt"
	"sort"

	"github.com/DjordjeVuckovic/base-checker/internal/apperr"
)

type Entry struct {
	Name string `json:"name"`
	Base Base   `json:"base"`
}

// Table records which names have been declared and in which base.
// Names are case-sensitive and can be declared once.
// A Table is not safe for concurrent use.
type Table struct {
	vars map[string]Base
}

func NewTable() *Table {
	return &Table{vars: make(map[string]Base)}
}

// Declare binds name to base. It fails with apperr.ErrDuplicate, leaving the
// table untouched, when name is already bound.
func (t *Table) Declare(name string, base Base) error {
	if _, ok := t.vars[name]; ok {
		return apperr.NewSubjectWrap(fmt.Sprintf("variable %q already declared", name), name, apperr.ErrDuplicate)
	}
	t.vars[name] = base
	return nil
}

func (t *Table) IsDeclared(name string) bool {
	_, ok := t.vars[name]
	return ok
}

func (t *Table) Lookup(name string) (Base, bool) {
	b, ok := t.vars[name]
	return b, ok
}

func (t *Table) Len() int {
	return len(t.vars)
}

// Entries returns the declared variables sorted by name.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.vars))
	for name, base := range t.vars {
		entries = append(entries, Entry{Name: name, Base: base})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}
