package widgetlib

// NewWidget creates an empty widget with the given title.
func NewWidget(title string) *Widget {
	return &Widget{Title: title}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
