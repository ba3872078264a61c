// Package bytesize parses and formats human-readable byte sizes.
//
// Units are binary (1024 base) and case-insensitive: B, KB/KiB, MB/MiB,
// GB/GiB, TB/TiB, PB/PiB, plus single-letter forms K, M, G, T, P. A bare
// number is bytes. Fractional values are accepted: "1.5GB".
package bytesize

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is a byte count.
type Size int64

const (
	B  Size = 1
	KB Size = 1 << 10
	MB Size = 1 << 20
	GB Size = 1 << 30
	TB Size = 1 << 40
	PB Size = 1 << 50
)

var units = map[string]Size{
	"":      B,
	"b":     B,
	"byte":  B,
	"bytes": B,
	"k":     KB,
	"kb":    KB,
	"kib":   KB,
	"m":     MB,
	"mb":    MB,
	"mib":   MB,
	"g":     GB,
	"gb":    GB,
	"gib":   GB,
	"t":     TB,
	"tb":    TB,
	"tib":   TB,
	"p":     PB,
	"pb":    PB,
	"pib":   PB,
}

// Parse converts a string like "8MB", "1.5 GiB" or "4096" into a Size.
func Parse(s string) (Size, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("bytesize: empty string")
	}

	// Split at the first letter; everything before is the number.
	split := len(trimmed)
	for i, r := range trimmed {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			split = i
			break
		}
	}

	numPart := strings.TrimSpace(trimmed[:split])
	unitPart := strings.ToLower(strings.TrimSpace(trimmed[split:]))

	value, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return 0, fmt.Errorf("bytesize: invalid format %q", s)
	}
	if value < 0 {
		return 0, fmt.Errorf("bytesize: negative size %q", s)
	}

	mult, ok := units[unitPart]
	if !ok {
		return 0, fmt.Errorf("bytesize: unknown unit %q", unitPart)
	}

	return Size(value * float64(mult)), nil
}

// Bytes returns the size as a plain int64.
func (s Size) Bytes() int64 {
	return int64(s)
}

// String formats the size with the largest unit that keeps the value >= 1,
// trimming trailing zeros from fractional results.
func (s Size) String() string {
	if s == 0 {
		return "0B"
	}

	neg := ""
	if s < 0 {
		neg, s = "-", -s
	}

	type step struct {
		unit Size
		name string
	}
	for _, st := range []step{{PB, "PB"}, {TB, "TB"}, {GB, "GB"}, {MB, "MB"}, {KB, "KB"}} {
		if s < st.unit {
			continue
		}
		if s%st.unit == 0 {
			return fmt.Sprintf("%s%d%s", neg, int64(s/st.unit), st.name)
		}
		v := strconv.FormatFloat(float64(s)/float64(st.unit), 'f', 2, 64)
		v = strings.TrimRight(strings.TrimRight(v, "0"), ".")
		return neg + v + st.name
	}
	return fmt.Sprintf("%s%dB", neg, int64(s))
}
