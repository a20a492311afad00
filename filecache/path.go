package filecache

import (
	"strconv"

	"github.com/philipp01105/routelog/core"
)

// FileName returns the file name for a routing key, without the base
// directory. Daily names deliberately skip zero-padding of month and
// day to stay byte-compatible with existing files.
func FileName(key core.RoutingKey) string {
	if key.IsEntity() {
		return "order_" + key.ID + ".log"
	}
	return "log_" + strconv.Itoa(key.Year) +
		"_" + strconv.Itoa(int(key.Month)) +
		"_" + strconv.Itoa(key.Day) + ".log"
}
