package logging

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// fieldOrder fixes the position of the elapsed-time fields; other keys
// follow in sorted order.
var fieldOrder = []string{"days", "hours", "minutes", "seconds"}

// LineFormatter writes "<timestamp> <message>[ key=value...]" lines.
type LineFormatter struct {
	TimestampFormat string
}

var _ logrus.Formatter = (*LineFormatter)(nil)

// NewLineFormatter returns a formatter using layout, or TimestampFormat when
// layout is empty.
func NewLineFormatter(layout string) *LineFormatter {
	if layout == "" {
		layout = TimestampFormat
	}
	return &LineFormatter{TimestampFormat: layout}
}

// Format implements logrus.Formatter.
func (formatter *LineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	buffer := entry.Buffer
	if buffer == nil {
		buffer = &bytes.Buffer{}
	}

	buffer.WriteString(entry.Time.Format(formatter.TimestampFormat))
	buffer.WriteByte(' ')
	buffer.WriteString(entry.Message)
	for _, key := range orderedKeys(entry.Data) {
		fmt.Fprintf(buffer, " %s=%v", key, entry.Data[key])
	}
	buffer.WriteByte('\n')

	return buffer.Bytes(), nil
}

func orderedKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	seen := make(map[string]bool, len(fieldOrder))
	for _, key := range fieldOrder {
		if _, ok := data[key]; ok {
			keys = append(keys, key)
			seen[key] = true
		}
	}

	var rest []string
	for key := range data {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}
