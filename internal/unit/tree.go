package unit

import (
	"fmt"
	"sort"
	"strings"
)

// Tree renders the unit map as an ASCII tree: one branch per family,
// sorted by name, with that family's suffixes as leaves in ladder order.
// The base suffix is marked, and empty suffixes render as "".
func (m Map) Tree() string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	result := []string{"/units"}

	for i, name := range names {
		isLast := i == len(names)-1
		connector := "├── "
		if isLast {
			connector = "└── "
		}
		l := m[name]
		result = append(result, fmt.Sprintf("%s%s (gap %d)", connector, name, l.Gap))

		childPrefix := "│   "
		if isLast {
			childPrefix = "    "
		}
		for j, suffix := range l.Suffixes {
			leafConnector := "├── "
			if j == len(l.Suffixes)-1 {
				leafConnector = "└── "
			}

			label := suffix
			if label == "" {
				label = `""`
			}
			if j == l.BaseIndex {
				label += " (base)"
			}
			result = append(result, childPrefix+leafConnector+label)
		}
	}

	return strings.Join(result, "\n")
}
