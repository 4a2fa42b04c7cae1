package entity

// Content is the opaque renderable behind a pane. The engine never interprets
// it beyond these calls; terminal emulation and plugin execution live elsewhere.
type Content interface {
	// Lines returns at most rows lines, each no wider than cols cells.
	Lines(cols, rows int) []string
	// Cursor returns the cursor position relative to the content origin.
	Cursor() (x, y int, ok bool)
}

// ByteSink is implemented by content that consumes a backing byte stream.
type ByteSink interface {
	HandleBytes(b []byte)
}

// InputAdjuster is implemented by content that rewrites input before it
// reaches the backing process (cursor key modes and the like).
type InputAdjuster interface {
	AdjustInput(b []byte) []byte
}

// Scroller is implemented by content with a scrollback buffer.
type Scroller interface {
	ScrollUp(lines int)
	ScrollDown(lines int)
	ClearScroll()
}

// Selector is implemented by content supporting mouse text selection.
// Positions are relative to the pane.
type Selector interface {
	StartSelection(at Position)
	UpdateSelection(to Position)
	EndSelection(at *Position)
	ResetSelection()
	SelectedText() string
}
