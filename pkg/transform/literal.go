package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Indent prefixes every element line of a sequence literal
const Indent = "  "

// FormatScalar stringifies a scalar parameter value: strings as-is,
// numbers in shortest decimal form, true as "1", false and null as "".
func FormatScalar(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "1"
		}
		return ""
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

// QuoteElement renders s as a PHP single-quoted string literal
func QuoteElement(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
	return "'" + escaped + "'"
}

// FormatSequence renders elements as a PHP short-array literal:
//
//	[
//	  'a.com',
//	  'b.com',
//	]
func FormatSequence(elements []string) string {
	var b strings.Builder
	b.WriteString("[\n")
	for _, element := range elements {
		b.WriteString(Indent)
		b.WriteString(QuoteElement(element))
		b.WriteString(",\n")
	}
	b.WriteString("]")
	return b.String()
}

// sequenceElements stringifies the items of a sequence value. Mapping
// values contribute their values, ordered by key.
func sequenceElements(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case []interface{}:
		elements := make([]string, len(v))
		for i, item := range v {
			elements[i] = FormatScalar(item)
		}
		return elements, true
	case []string:
		return append([]string(nil), v...), true
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		elements := make([]string, len(keys))
		for i, k := range keys {
			elements[i] = FormatScalar(v[k])
		}
		return elements, true
	default:
		return nil, false
	}
}
