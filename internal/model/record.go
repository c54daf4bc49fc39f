package model

import (
	"fmt"
	"math"
	"strconv"
)

// Record is a single row fetched from a data source. Fields are kept as the
// source produced them (strings from CSV, decoded JSON values from HTTP);
// accessors pull typed values out by field name.
type Record struct {
	Fields map[string]any
}

// String returns the named field rendered as a string. Missing fields yield "".
func (r Record) String(key string) string {
	v, ok := r.Fields[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", s)
	}
}

// Float returns the named field as a float64. Missing or non-numeric fields
// yield NaN, which flows through downstream arithmetic unchanged.
func (r Record) Float(key string) float64 {
	v, ok := r.Fields[key]
	if !ok || v == nil {
		return math.NaN()
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
