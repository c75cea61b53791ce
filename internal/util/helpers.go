package util

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// AtLeast returns value, or floor when value is smaller.
func AtLeast(value, floor int) int {
	if value < floor {
		return floor
	}
	return value
}
