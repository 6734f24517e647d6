package sheetinspect

import "sort"

// Group is one distinct value of the grouping column and how many rows hold it.
type Group struct {
	Key   Cell
	Count int
}

type groupKey struct {
	kind Kind
	val  string
}

// GroupByFirstColumn counts data rows per distinct value of column 0.
//
// Keys compare by kind and value. When every non-empty key has the same
// kind the groups are sorted ascending; otherwise they keep first-appearance
// order. Rows with an empty first cell form one group, listed last.
func GroupByFirstColumn(t *Table) []Group {
	return GroupBy(t.Column(0))
}

// GroupBy counts the distinct values in cells.
func GroupBy(cells []Cell) []Group {
	index := make(map[groupKey]int)
	groups := make([]Group, 0)
	empty := 0
	for _, c := range cells {
		if c.IsEmpty() {
			empty++
			continue
		}
		k := groupKey{kind: c.Kind(), val: c.key()}
		if pos, ok := index[k]; ok {
			groups[pos].Count++
			continue
		}
		index[k] = len(groups)
		groups = append(groups, Group{Key: c, Count: 1})
	}

	if orderable(groups) {
		sort.SliceStable(groups, func(a, b int) bool {
			cmp, _ := Compare(groups[a].Key, groups[b].Key)
			return cmp < 0
		})
	}
	if empty > 0 {
		groups = append(groups, Group{Key: Empty(), Count: empty})
	}
	return groups
}

func orderable(groups []Group) bool {
	for idx := 1; idx < len(groups); idx++ {
		if groups[idx].Key.Kind() != groups[0].Key.Kind() {
			return false
		}
	}
	return true
}
