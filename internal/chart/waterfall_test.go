package chart

import (
	"math"
	"reflect"
	"testing"

	"Cascade/internal/model"
)

type row struct {
	label string
	value float64
}

var rowAccessors = Accessors[row]{
	X: func(r row) string { return r.label },
	Y: func(r row) float64 { return r.value },
}

func TestWaterfallEntries_RunningTotals(t *testing.T) {
	rows := []row{{"1", 100}, {"2", -50}, {"3", 10}}
	entries := WaterfallEntries(rows, rowAccessors)

	want := []model.Entry{
		{Start: 0, End: 100, X: "1", Y: 100},
		{Start: 100, End: 50, X: "2", Y: -50},
		{Start: 50, End: 60, X: "3", Y: 10},
		{Start: 0, End: 60, X: "Total", Y: 60, IsTotal: true},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Fatalf("entries = %+v, want %+v", entries, want)
	}
}

func TestWaterfallEntries_NegativeCumulative(t *testing.T) {
	rows := []row{{"1", 100}, {"2", -200}, {"3", 50}}
	entries := WaterfallEntries(rows, rowAccessors)

	want := []model.Entry{
		{Start: 0, End: 100, X: "1", Y: 100},
		{Start: 100, End: -100, X: "2", Y: -200},
		{Start: -100, End: -50, X: "3", Y: 50},
		{Start: 0, End: -50, X: "Total", Y: -50, IsTotal: true},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Fatalf("entries = %+v, want %+v", entries, want)
	}
}

func TestWaterfallEntries_Empty(t *testing.T) {
	entries := WaterfallEntries(nil, rowAccessors)
	if len(entries) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(entries))
	}
	want := model.Entry{Start: 0, End: 0, X: "Total", Y: 0, IsTotal: true}
	if entries[0] != want {
		t.Fatalf("total entry = %+v, want %+v", entries[0], want)
	}
}

func TestWaterfallEntries_Properties(t *testing.T) {
	rows := []row{
		{"jan", 120.5}, {"feb", -33.25}, {"mar", 0}, {"apr", -90}, {"may", 7.75},
	}
	entries := WaterfallEntries(rows, rowAccessors)

	if len(entries) != len(rows)+1 {
		t.Fatalf("expected %d entries, got %d", len(rows)+1, len(entries))
	}

	sum := 0.0
	for i, e := range entries[:len(rows)] {
		if e.End-e.Start != e.Y {
			t.Errorf("entry %d: end-start = %v, want %v", i, e.End-e.Start, e.Y)
		}
		if i > 0 && e.Start != entries[i-1].End {
			t.Errorf("entry %d: start %v does not chain from previous end %v", i, e.Start, entries[i-1].End)
		}
		if e.IsTotal {
			t.Errorf("entry %d: unexpected IsTotal", i)
		}
		sum += e.Y
	}

	total := entries[len(entries)-1]
	if !total.IsTotal || total.X != TotalLabel {
		t.Fatalf("last entry is not the total bar: %+v", total)
	}
	if total.Start != 0 || total.End != sum || total.Y != sum {
		t.Errorf("total entry = %+v, want start=0 end=%v y=%v", total, sum, sum)
	}
}

func TestWaterfallEntries_InputOrderPreserved(t *testing.T) {
	// Duplicate labels are not grouped; input order is authoritative.
	rows := []row{{"a", 10}, {"a", 20}, {"b", -5}, {"a", 1}}
	entries := WaterfallEntries(rows, rowAccessors)

	labels := make([]string, 0, len(rows))
	for _, e := range entries[:len(rows)] {
		labels = append(labels, e.X)
	}
	want := []string{"a", "a", "b", "a"}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
}

func TestWaterfallEntries_NaNPropagates(t *testing.T) {
	rows := []row{{"1", 10}, {"2", math.NaN()}, {"3", 5}}
	entries := WaterfallEntries(rows, rowAccessors)

	if !math.IsNaN(entries[1].End) {
		t.Errorf("entry 2 end should be NaN, got %v", entries[1].End)
	}
	if !math.IsNaN(entries[2].Start) || !math.IsNaN(entries[2].End) {
		t.Errorf("entry 3 should carry NaN forward, got %+v", entries[2])
	}
	if !math.IsNaN(entries[3].End) {
		t.Errorf("total end should be NaN, got %v", entries[3].End)
	}
}

func TestWaterfallEntries_Deterministic(t *testing.T) {
	rows := []row{{"1", 100}, {"2", -50}, {"3", 10}}
	first := WaterfallEntries(rows, rowAccessors)
	second := WaterfallEntries(rows, rowAccessors)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated invocations should produce identical output")
	}
}

func TestWaterfallEntries_RecordAccessors(t *testing.T) {
	rows := []model.Record{
		{Fields: map[string]any{"month": "jan", "revenue": "100"}},
		{Fields: map[string]any{"month": "feb", "revenue": float64(-40)}},
	}
	acc := Accessors[model.Record]{
		X: func(r model.Record) string { return r.String("month") },
		Y: func(r model.Record) float64 { return r.Float("revenue") },
	}
	entries := WaterfallEntries(rows, acc)

	if entries[0].X != "jan" || entries[0].Y != 100 {
		t.Errorf("entry 1 = %+v", entries[0])
	}
	if entries[1].Start != 100 || entries[1].End != 60 {
		t.Errorf("entry 2 = %+v", entries[1])
	}
	if entries[2].End != 60 {
		t.Errorf("total = %+v", entries[2])
	}
}
