package swar

// MemchrInTable finds the first byte where table[byte] is true.
// Returns position or -1 if not found.
func MemchrInTable(haystack []byte, table *[256]bool) int {
	if len(haystack) == 0 || table == nil {
		return -1
	}
	for i, b := range haystack {
		if table[b] {
			return i
		}
	}
	return -1
}

// MemchrNotInTable finds the first byte where table[byte] is false.
// This is the complement of MemchrInTable.
//
// Returns position or -1 if all bytes have table[byte] == true.
func MemchrNotInTable(haystack []byte, table *[256]bool) int {
	if len(haystack) == 0 || table == nil {
		return -1
	}

	i := 0
	for ; i+4 <= len(haystack); i += 4 {
		if !table[haystack[i]] {
			return i
		}
		if !table[haystack[i+1]] {
			return i + 1
		}
		if !table[haystack[i+2]] {
			return i + 2
		}
		if !table[haystack[i+3]] {
			return i + 3
		}
	}
	for ; i < len(haystack); i++ {
		if !table[haystack[i]] {
			return i
		}
	}
	return -1
}
