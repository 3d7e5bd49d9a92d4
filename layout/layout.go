// Package layout splits a rectangle into rows or columns of boxes.
//
// Items with an exact size are placed first, in order, and get their size as
// long as space remains. Whatever is left is shared equally between the
// remaining items, none growing past its maximum.
package layout

type Point struct {
	X, Y int
}

// Dimensions is a resolved box: its top-left corner and extent.
type Dimensions struct {
	Origin        Point // TL corner
	Width, Height int
}

// Direction is the main axis of a Flex.
type Direction int

const (
	Y Direction = iota
	X
)

// LayoutBox draws into the dimensions it was given.
type LayoutBox func(Dimensions)

func EmptyBox(Dimensions) {}

type Flex struct {
	Dir   Direction // direction of the main axis
	Items []FlexItem
}

func Column(items ...FlexItem) *Flex {
	return &Flex{Dir: Y, Items: items}
}

func Row(items ...FlexItem) *Flex {
	return &Flex{Dir: X, Items: items}
}

type FlexItem struct {
	Box  LayoutBox
	Flex *Flex
	Size Constraint
}

func FlexItemBox(box LayoutBox, size Constraint, flex *Flex) FlexItem {
	if box == nil {
		box = EmptyBox
	}
	return FlexItem{Box: box, Size: size, Flex: flex}
}

type Constraint struct {
	Min, Max Size
}

func Exact(size Size) Constraint {
	return Constraint{Min: size, Max: size}
}

func Max(size Size) Constraint {
	return Constraint{Min: Abs(0), Max: size}
}

func (c Constraint) exact() bool {
	return c.Min == c.Max
}

type Size struct {
	abs int     // absolute size
	rel float64 // [0, 1]
}

func Abs(abs int) Size {
	return Size{abs: abs}
}

func Rel(rel float64) Size {
	return Size{rel: rel}
}

func (s Size) toAbs(size int) int {
	if s.abs != 0 {
		return s.abs
	}
	return int(s.rel * float64(size))
}

// StartLayouting resolves the flex inside a width x height screen and calls
// every box with its dimensions, nested flexes after their parent.
func (f *Flex) StartLayouting(width, height int) {
	f.Layout(Dimensions{Width: width, Height: height})
}

func (f *Flex) Layout(area Dimensions) {
	dims := f.Resolve(area)
	for i, item := range f.Items {
		item.Box(dims[i])
	}
	for i, item := range f.Items {
		if item.Flex != nil {
			item.Flex.Layout(dims[i])
		}
	}
}

// Resolve returns the dimensions of each item, in item order, without drawing.
func (f *Flex) Resolve(area Dimensions) []Dimensions {
	total := area.Height
	if f.Dir == X {
		total = area.Width
	}

	sizes := make([]int, len(f.Items))
	remaining := total
	var flexible []int
	for i, item := range f.Items {
		if !item.Size.exact() {
			flexible = append(flexible, i)
			continue
		}
		sizes[i] = min(max(item.Size.Max.toAbs(total), 0), remaining)
		remaining -= sizes[i]
	}

	// hand out the rest one share at a time so capped items leave room for
	// the others
	for len(flexible) > 0 && remaining > 0 {
		share := max(remaining/len(flexible), 1)
		var open []int
		for _, i := range flexible {
			if remaining == 0 {
				break
			}
			limit := max(f.Items[i].Size.Max.toAbs(total), 0)
			grow := min(share, limit-sizes[i], remaining)
			sizes[i] += grow
			remaining -= grow
			if sizes[i] < limit {
				open = append(open, i)
			}
		}
		flexible = open
	}

	dims := make([]Dimensions, len(f.Items))
	origin := area.Origin
	for i, size := range sizes {
		if f.Dir == Y {
			dims[i] = Dimensions{origin, area.Width, size}
			origin.Y += size
		} else {
			dims[i] = Dimensions{origin, size, area.Height}
			origin.X += size
		}
	}
	return dims
}
