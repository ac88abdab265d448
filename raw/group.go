package raw

// counts is a snapshot of the number of parsed points, lines and polygons.
type counts struct {
	points   int
	lines    int
	polygons int
}

// openEnd marks the end of a range that has not been closed yet.
const openEnd = -1

// groupBuilder tracks which group of one grouping (object groups, meshes,
// smoothing groups or merging groups) is open, and records element ranges as
// groups are opened and closed.
//
// The element counts are read through count at every call, so ranges always
// reflect the parser's lists at the moment of the switch.
type groupBuilder[K comparable] struct {
	count   func() counts
	groups  map[K]*Group
	current K
	open    bool
}

func newGroupBuilder[K comparable](count func() counts) *groupBuilder[K] {
	return &groupBuilder[K]{
		count:  count,
		groups: make(map[K]*Group),
	}
}

// start makes key the open group. Starting the group that is already open
// does nothing. Otherwise the open group is closed first, then a new range
// is begun for key, creating the group if needed.
func (b *groupBuilder[K]) start(key K) {
	if b.open && b.current == key {
		return
	}
	b.end()

	g, ok := b.groups[key]
	if !ok {
		g = &Group{}
		b.groups[key] = g
	}
	g.begin(b.count())
	b.current = key
	b.open = true
}

// end closes the open group, if any. Empty trailing ranges are dropped and a
// group left without any range is removed.
func (b *groupBuilder[K]) end() {
	if !b.open {
		return
	}
	if b.groups[b.current].finish(b.count()) {
		delete(b.groups, b.current)
	}
	var zero K
	b.current = zero
	b.open = false
}

// result returns the recorded groups. It must be called after end.
func (b *groupBuilder[K]) result() map[K]Group {
	out := make(map[K]Group, len(b.groups))
	for k, g := range b.groups {
		out[k] = *g
	}
	return out
}

func (g *Group) begin(c counts) {
	g.Points = append(g.Points, Range{Start: c.points, End: openEnd})
	g.Lines = append(g.Lines, Range{Start: c.lines, End: openEnd})
	g.Polygons = append(g.Polygons, Range{Start: c.polygons, End: openEnd})
}

// finish closes the last range of every list and reports whether the group
// has no ranges left.
func (g *Group) finish(c counts) bool {
	g.Points = closeRange(g.Points, c.points)
	g.Lines = closeRange(g.Lines, c.lines)
	g.Polygons = closeRange(g.Polygons, c.polygons)
	return len(g.Points) == 0 && len(g.Lines) == 0 && len(g.Polygons) == 0
}

func closeRange(ranges []Range, end int) []Range {
	last := len(ranges) - 1
	if ranges[last].Start == end {
		if last == 0 {
			return nil
		}
		return ranges[:last]
	}
	ranges[last].End = end
	return ranges
}
