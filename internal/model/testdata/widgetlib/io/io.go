// Package widgetio reads widget layouts from disk.
package widgetio

import "os"

// MaxLayoutSize caps the accepted layout file size, in bytes.
const MaxLayoutSize = 1 << 20

// ReadLayout parses a widget layout file.
func ReadLayout(path string) ([]byte, error) {
	return os.ReadFile(path)
}
