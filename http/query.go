package http

import "strings"

// ParseQuery splits a raw query string into key/value pairs. Empty segments
// and segments without '=' are dropped; the last occurrence of a duplicate
// key wins. Keys and values are percent-decoded.
func ParseQuery(rawQuery string) map[string]string {
	params := make(map[string]string)
	for _, segment := range strings.Split(rawQuery, "&") {
		if segment == "" {
			continue
		}
		key, value, found := strings.Cut(segment, "=")
		if !found {
			continue
		}
		params[unescape(key)] = unescape(value)
	}
	return params
}

// unescape decodes %XX sequences and '+' as space. Invalid escapes are kept
// as-is rather than failing the whole query.
func unescape(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '+':
			b.WriteByte(' ')
		case s[i] == '%' && i+2 < len(s) && hexToByte(s[i+1]) != 255 && hexToByte(s[i+2]) != 255:
			b.WriteByte(hexToByte(s[i+1])<<4 | hexToByte(s[i+2]))
			i += 2
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
