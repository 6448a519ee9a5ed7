// Package widgetlib is a small rendering toolkit used as a parsing fixture.
package widgetlib

import "io"

// Widget is a drawable screen element.
type Widget struct {
	// Title is the text shown in the widget's frame.
	Title string

	width, height int
}

// Render draws the widget.
//
// The writer receives one fully rendered frame.
func (w *Widget) Render(out io.Writer) error {
	_, err := io.WriteString(out, w.Title)
	return err
}

// Resize changes the widget's size.
func (w *Widget) Resize(width int, height int) {
	w.width, w.height = width, height
}

func (w *Widget) reflow() {}
