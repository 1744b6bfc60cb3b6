package inputset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Magmom is a run-length encoded group of initial magnetic moments, rendered
// in INCAR syntax as "count*value".
type Magmom struct {
	Count int
	Value float64
}

// Incar holds INCAR parameters. Values are int, float64, bool, string,
// []float64 (per-species lists) or []Magmom.
type Incar map[string]interface{}

// String renders the INCAR file body with keys sorted.
func (inc Incar) String() string {
	keys := make([]string, 0, len(inc))
	for k := range inc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s = %s\n", k, formatIncarValue(inc[k]))
	}
	return b.String()
}

func formatIncarValue(v interface{}) string {
	switch val := v.(type) {
	case bool:
		if val {
			return ".TRUE."
		}
		return ".FALSE."
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case string:
		return val
	case []float64:
		parts := make([]string, len(val))
		for i, f := range val {
			parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return strings.Join(parts, " ")
	case []Magmom:
		parts := make([]string, len(val))
		for i, m := range val {
			parts[i] = fmt.Sprintf("%d*%s", m.Count, strconv.FormatFloat(m.Value, 'g', -1, 64))
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprintf("%v", val)
	}
}
