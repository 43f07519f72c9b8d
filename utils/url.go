package utils

import "net/url"

// IsAbsoluteHTTPURL reports whether raw is an absolute http or https URL.
// Asset fields only accept these; relative paths break outside the CDN.
func IsAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
