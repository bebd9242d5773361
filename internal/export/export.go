// Package export writes one-shot snapshot files of the committed drawing.
// Every exporter renders from the same committed stroke list, writes a
// complete file or nothing, and names it after the moment of export.
package export

import (
	"fmt"
	"time"
)

// Filename returns the timestamped name for a new export file.
func Filename(ext string) string {
	return fmt.Sprintf("sketch_%s.%s", time.Now().Format("20060102_150405"), ext)
}
