package common

// IsSingle reports whether s holds exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}
