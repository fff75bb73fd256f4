// Package pgcmap holds the static source-to-PGC account directory and the
// hierarchical prefix resolver over it. The table is read-only; resolution is
// longest-prefix-wins over dash-segmented codes, never substring or numeric
// matching.
package pgcmap

import (
	"strings"

	tb "github.com/balanza-dev/balanza/internal/trialbalance"
)

// Sentinel values substituted when no classification can be resolved.
const (
	CodeUnmapped = "UNMAPPED"
	NameUnmapped = "no PGC equivalence"
)

// Unclassified returns the sentinel classification for unresolvable codes.
func Unclassified() tb.Classification {
	return tb.Classification{
		TargetCode: CodeUnmapped,
		TargetName: NameUnmapped,
		Group:      tb.GroupUnclassified,
		Subgroup:   tb.SubgroupUnclassified,
	}
}

// Find resolves a source code against the mapping table. Candidates are the
// full code followed by every left-anchored truncation (dropping the last
// segment each time), most specific first. The first candidate present in the
// table wins.
func Find(code string) (tb.Classification, bool) {
	safe := strings.TrimSpace(code)
	if safe == "" {
		return tb.Classification{}, false
	}
	if c, ok := table[safe]; ok {
		return c, true
	}
	segments := make([]string, 0, 4)
	for _, s := range strings.Split(safe, "-") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	for n := len(segments); n > 0; n-- {
		if c, ok := table[strings.Join(segments[:n], "-")]; ok {
			return c, true
		}
	}
	return tb.Classification{}, false
}

// FromOverride turns a manual override into a full classification, filling
// blank fields with sentinels. It returns false when every field is blank,
// in which case the override carries no information and automatic resolution
// applies instead.
func FromOverride(o tb.Override) (tb.Classification, bool) {
	o.TargetCode = strings.TrimSpace(o.TargetCode)
	o.TargetName = strings.TrimSpace(o.TargetName)
	if o.IsZero() {
		return tb.Classification{}, false
	}
	c := tb.Classification{
		TargetCode: o.TargetCode,
		TargetName: o.TargetName,
		Group:      o.Group,
		Subgroup:   o.Subgroup,
	}
	if c.TargetCode == "" {
		c.TargetCode = CodeUnmapped
	}
	if c.TargetName == "" {
		c.TargetName = NameUnmapped
	}
	if c.Group == "" {
		c.Group = tb.GroupUnclassified
	}
	if c.Subgroup == "" {
		c.Subgroup = tb.SubgroupUnclassified
	}
	return c, true
}

// Meta summarizes the static table for the mapping metadata endpoint.
type Meta struct {
	TotalMappings int              `json:"totalMappings"`
	Groups        map[tb.Group]int `json:"groups"`
}

// Stats returns entry counts overall and per group.
func Stats() Meta {
	m := Meta{TotalMappings: len(table), Groups: make(map[tb.Group]int)}
	for _, c := range table {
		m.Groups[c.Group]++
	}
	return m
}
