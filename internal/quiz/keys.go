package quiz

import "fmt"

// Keys returns one identity key per item, in order. Keys are unique within
// the returned slice: when two items resolve to the same Key, later ones get
// a "#2", "#3", ... suffix so their review state never shares a slot.
func Keys(items []Item) []string {
	keys := make([]string, len(items))
	seen := make(map[string]int, len(items))
	taken := make(map[string]bool, len(items))

	for i, it := range items {
		base := it.Key()
		seen[base]++
		key := base
		if seen[base] > 1 || taken[key] {
			n := max(seen[base], 2)
			for {
				key = fmt.Sprintf("%s#%d", base, n)
				if !taken[key] {
					break
				}
				n++
			}
		}
		taken[key] = true
		keys[i] = key
	}
	return keys
}

// Label returns the positional label for the choice at index i:
// A..Z, then AA, AB, ... Negative indices return "".
func Label(i int) string {
	if i < 0 {
		return ""
	}
	var buf []byte
	for n := i; ; n = n/26 - 1 {
		buf = append([]byte{byte('A' + n%26)}, buf...)
		if n < 26 {
			break
		}
	}
	return string(buf)
}
