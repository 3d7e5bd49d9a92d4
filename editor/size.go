package editor

// Size is the visible extent of the viewport in terminal cells.
type Size struct {
	Width, Height int
}

// SizeProvider reports the current viewport size. It is asked on every use,
// the answer may change between calls.
type SizeProvider interface {
	ViewportSize() Size
}

// SizeFunc adapts a function to SizeProvider.
type SizeFunc func() Size

func (f SizeFunc) ViewportSize() Size {
	return f()
}

// FixedSize is a SizeProvider that never changes.
type FixedSize Size

func (s FixedSize) ViewportSize() Size {
	return Size(s)
}
