package utils

import "strings"

// Slugify derives a URL-safe identifier from a human-readable name: lower
// case, every run of characters outside [a-z0-9] collapsed into a single
// hyphen, no leading or trailing hyphen.
// "Penjumlahan & Pengurangan!" -> "penjumlahan-pengurangan".
func Slugify(name string) string {
	name = strings.ToLower(name)

	var b strings.Builder
	pendingHyphen := false
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// IsValidSlug reports whether a client-supplied slug is already URL safe.
func IsValidSlug(slug string) bool {
	if slug == "" {
		return false
	}
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			continue
		}
		return false
	}
	return !strings.HasPrefix(slug, "-") && !strings.HasSuffix(slug, "-")
}
