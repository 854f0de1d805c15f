package patch

import (
	"fmt"
	"strconv"
	"strings"
)

// AppendSentinel is the path segment addressing the position after the last
// element of a list.
const AppendSentinel = "~"

type segment struct {
	name    string
	index   int
	isIndex bool
	append  bool
}

func parsePath(path string) ([]segment, error) {
	var segments []segment
	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}

		seg := segment{name: part}
		switch {
		case part == AppendSentinel:
			seg.append = true
		default:
			if n, err := strconv.Atoi(part); err == nil && n >= 0 {
				seg.index = n
				seg.isIndex = true
			}
		}
		segments = append(segments, seg)
	}

	for i, seg := range segments {
		if seg.append && i != len(segments)-1 {
			return nil, fmt.Errorf("%w: %q may only be the last segment of %q", ErrUnresolvablePath, AppendSentinel, path)
		}
	}

	return segments, nil
}

// Join builds a path from its segments.
func Join(base string, segments ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(s)
	}

	return b.String()
}

// Index returns the path segment for a list index.
func Index(i int) string {
	return strconv.Itoa(i)
}
