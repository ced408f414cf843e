// Package extract implements a small generic routine that segments a block
// of unstructured text into named sections delimited by ordered markers.
//
// It exists so the LLM response parsing is driven by a configuration table
// (header text → section name) and stays testable independently of the
// prompt wording that produces the text.
package extract

import "strings"

// Marker binds a literal header substring to the name of the section it
// introduces. Matching is substring containment, not whole-line equality.
type Marker struct {
	Header  string
	Section string
}

// Segment walks raw line by line and accumulates each line into the section
// introduced by the most recently seen marker.
//
// Rules:
//
//   - A line containing a marker header switches the current section. When a
//     line could match several headers, the first marker in table order wins.
//   - The header line itself is accumulated into the section it introduces,
//     so every extracted block starts with its header text.
//   - Lines seen before any marker belong to no section and are dropped.
//   - A header appearing again, or out of canonical order, simply redirects
//     the accumulation target; everything after the last header belongs to it.
//   - Each section is whitespace-trimmed at the end. Sections whose header
//     never appeared come back as empty strings.
func Segment(raw string, markers []Marker) map[string]string {
	bodies := make(map[string]*strings.Builder, len(markers))
	for _, m := range markers {
		bodies[m.Section] = &strings.Builder{}
	}

	current := ""
	for _, line := range strings.Split(raw, "\n") {
		for _, m := range markers {
			if strings.Contains(line, m.Header) {
				current = m.Section
				break
			}
		}
		if current != "" {
			bodies[current].WriteString(line)
			bodies[current].WriteString("\n")
		}
	}

	sections := make(map[string]string, len(markers))
	for name, b := range bodies {
		sections[name] = strings.TrimSpace(b.String())
	}
	return sections
}
