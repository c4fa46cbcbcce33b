package util

import "fmt"

// FormatAmount renders a dollar amount for terminal output.
func FormatAmount(value float64) string {
	if value < 0 {
		return fmt.Sprintf("-$%.2f", -value)
	}

	return fmt.Sprintf("$%.2f", value)
}
