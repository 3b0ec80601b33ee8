package core

import (
	"fmt"
)

// IndexTable maps names to stable 0-based positions. Insertion order is
// meaningful: it defines matrix row and column order for the downstream linear
// solver. Tables are populated once at model construction and read-only
// thereafter; rebuilding produces a fresh table rather than appending.
type IndexTable struct {
	order     []string
	positions map[string]int
}

// BuildIndexTable assigns positions to the literal base names followed by
// count generated names "<genPrefix>1" .. "<genPrefix>count", in ascending
// suffix order. Positions start at offset. Duplicate names are a construction
// error.
func BuildIndexTable(base []string, genPrefix string, count, offset int) (*IndexTable, error) {
	if count < 0 {
		return nil, fmt.Errorf("core: generated name count must be >= 0, got %d", count)
	}
	if count > 0 && genPrefix == "" {
		return nil, fmt.Errorf("core: generated name prefix required for count %d", count)
	}

	t := &IndexTable{
		order:     make([]string, 0, len(base)+count),
		positions: make(map[string]int, len(base)+count),
	}
	add := func(name string) error {
		if _, ok := t.positions[name]; ok {
			return fmt.Errorf("core: duplicate index name %q", name)
		}
		t.positions[name] = offset + len(t.order)
		t.order = append(t.order, name)
		return nil
	}
	for _, name := range base {
		if err := add(name); err != nil {
			return nil, err
		}
	}
	for i := 1; i <= count; i++ {
		if err := add(fmt.Sprintf("%s%d", genPrefix, i)); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Lookup returns the position assigned to name.
func (t *IndexTable) Lookup(name string) (int, bool) {
	pos, ok := t.positions[name]
	return pos, ok
}

// Names returns the table's names in position order.
func (t *IndexTable) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of entries.
func (t *IndexTable) Len() int {
	return len(t.order)
}
