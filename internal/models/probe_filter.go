package models

import "strings"

// ProbeFilter is the allow-list of probe names a document's ProbeName must belong to.
// An empty filter matches no documents.
type ProbeFilter []string

// ParseProbeList splits a comma-delimited probe list. Entries are trimmed and
// blank entries dropped, so "a, ,b," yields [a b].
func ParseProbeList(csv string) ProbeFilter {
	parts := strings.Split(csv, ",")
	probes := make(ProbeFilter, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		probes = append(probes, part)
	}
	return probes
}

// Values returns the names as a non-nil slice so the terms filter serializes as [] rather than null.
func (p ProbeFilter) Values() []string {
	if p == nil {
		return []string{}
	}
	out := make([]string, len(p))
	copy(out, p)
	return out
}
