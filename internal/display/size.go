package display

import "fmt"

var sizeUnits = [...]string{"B", "K", "M", "G", "T", "P"}

// HumanSize formats a byte count using 1024-based units with one decimal of
// precision, e.g. "2.5K". Counts below 1K are printed as whole bytes.
func HumanSize(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	}
	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f%s", value, sizeUnits[unit])
}
