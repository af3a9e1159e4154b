package autoparse

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	n := make([]string, len(s))
	copy(n, s)
	return n
}
