// Package ptr provides pointer helpers for the nullable columns that run
// through the linkage tables. Source extracts leave ids, ages, and dates
// blank, so record fields are pointers and nil means absent.
package ptr

// To creates a pointer to the given value.
func To[T any](v T) *T {
	return &v
}

// Int creates a pointer to the given int value.
func Int(i int) *int {
	return &i
}

// Int64 creates a pointer to the given int64 value.
func Int64(i int64) *int64 {
	return &i
}
