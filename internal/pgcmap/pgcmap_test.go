package pgcmap

import (
	"testing"

	tb "github.com/balanza-dev/balanza/internal/trialbalance"
)

func TestFind_PrefixResolution(t *testing.T) {
	// Exact match wins over any truncation.
	cls, ok := Find("203-003-002")
	if !ok {
		t.Fatalf("expected mapping for 203-003-002")
	}
	if cls.TargetCode != "5530" {
		t.Fatalf("expected 5530, got %s", cls.TargetCode)
	}

	// Longer detail codes resolve through truncation to the base prefix.
	cls, ok = Find("101-001-0001")
	if !ok {
		t.Fatalf("expected mapping for 101-001-0001")
	}
	if cls.TargetCode != "570" || cls.Group != tb.GroupAssetCurrent {
		t.Fatalf("unexpected classification: %+v", cls)
	}

	// Whitespace is trimmed before lookup.
	if _, ok := Find("  401  "); !ok {
		t.Fatalf("expected mapping for padded 401")
	}
}

func TestFind_NoMatch(t *testing.T) {
	for _, code := range []string{"", "   ", "999-999", "abc"} {
		if _, ok := Find(code); ok {
			t.Fatalf("expected no mapping for %q", code)
		}
	}
}

func TestFind_Deterministic(t *testing.T) {
	first, ok := Find("601-000-0001")
	if !ok {
		t.Fatalf("expected mapping")
	}
	for i := 0; i < 10; i++ {
		again, ok := Find("601-000-0001")
		if !ok || again != first {
			t.Fatalf("resolution not deterministic: %+v vs %+v", first, again)
		}
	}
}

func TestUnclassified(t *testing.T) {
	cls := Unclassified()
	if cls.TargetCode != CodeUnmapped || cls.TargetName != NameUnmapped {
		t.Fatalf("unexpected sentinels: %+v", cls)
	}
	if cls.Group != tb.GroupUnclassified || cls.Subgroup != tb.SubgroupUnclassified {
		t.Fatalf("unexpected group sentinels: %+v", cls)
	}
}

func TestFromOverride(t *testing.T) {
	// All blank carries no information.
	if _, ok := FromOverride(tb.Override{}); ok {
		t.Fatalf("blank override should not apply")
	}
	if _, ok := FromOverride(tb.Override{TargetCode: "   "}); ok {
		t.Fatalf("whitespace-only override should not apply")
	}

	// Partial overrides fill the rest with sentinels.
	cls, ok := FromOverride(tb.Override{TargetCode: "705"})
	if !ok {
		t.Fatalf("expected override to apply")
	}
	if cls.TargetCode != "705" || cls.TargetName != NameUnmapped {
		t.Fatalf("unexpected fill: %+v", cls)
	}
	if cls.Group != tb.GroupUnclassified || cls.Subgroup != tb.SubgroupUnclassified {
		t.Fatalf("unexpected group fill: %+v", cls)
	}

	// Full overrides pass through untouched.
	full := tb.Override{TargetCode: "640", TargetName: "Sueldos", Group: tb.GroupExpense, Subgroup: tb.SubgroupPersonnelExpense}
	cls, ok = FromOverride(full)
	if !ok || cls.TargetCode != "640" || cls.Group != tb.GroupExpense {
		t.Fatalf("unexpected classification: %+v", cls)
	}
}

func TestStats(t *testing.T) {
	m := Stats()
	if m.TotalMappings != len(table) {
		t.Fatalf("total %d != table size %d", m.TotalMappings, len(table))
	}
	sum := 0
	for _, n := range m.Groups {
		sum += n
	}
	if sum != m.TotalMappings {
		t.Fatalf("group counts %d do not add up to %d", sum, m.TotalMappings)
	}
	if m.Groups[tb.GroupAssetCurrent] == 0 || m.Groups[tb.GroupExpense] == 0 {
		t.Fatalf("expected non-empty major groups: %+v", m.Groups)
	}
}
