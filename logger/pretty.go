package logger

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// maxNormalizeDepth bounds recursion; deeper values are replaced by their
// type name, which also stops self-referencing maps.
const maxNormalizeDepth = 32

var timeType = reflect.TypeOf(time.Time{})

// Normalize converts v into a tree made only of nil, bool, int64, uint64,
// float64, string, []any and map[string]any. NaN becomes nil, integers and
// floats keep their kind, and anything that has no such representation is
// stringified. It never panics.
func Normalize(v any) any {
	return normalize(reflect.ValueOf(v), 0)
}

func normalize(rv reflect.Value, depth int) (out any) {
	if !rv.IsValid() {
		return nil
	}
	if !rv.CanInterface() {
		return rv.String()
	}
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		return normalize(rv.Elem(), depth)
	}
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("<unprintable %s>", rv.Type())
		}
	}()
	if depth > maxNormalizeDepth {
		return "<" + rv.Type().String() + ">"
	}
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}

	if rv.Type() == timeType {
		return rv.Interface().(time.Time).Format(time.RFC3339Nano)
	}
	switch rv.Interface().(type) {
	case error, fmt.Stringer:
		return stringify(rv.Interface()).text
	}

	switch rv.Kind() {
	case reflect.Pointer:
		return normalize(rv.Elem(), depth+1)
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u <= math.MaxInt64 {
			return int64(u)
		}
		return u
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) {
			return nil
		}
		if rv.Kind() == reflect.Float32 && !math.IsInf(f, 0) {
			// shortest float32 digits, so 0.1 stays 0.1
			f, _ = strconv.ParseFloat(strconv.FormatFloat(f, 'g', -1, 32), 64)
		}
		return f
	case reflect.String:
		return rv.String()
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes())
		}
		return normalizeList(rv, depth)
	case reflect.Array:
		return normalizeList(rv, depth)
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		return normalizeMap(rv, depth)
	}
	return stringify(rv.Interface()).text
}

type mapKey struct {
	text  string
	typ   string
	value reflect.Value
}

// normalizeMap stringifies keys in a fixed order. Keys whose text collides
// with another key get their type appended, so no entry is lost.
func normalizeMap(rv reflect.Value, depth int) map[string]any {
	keys := make([]mapKey, 0, rv.Len())
	seen := make(map[string]int, rv.Len())
	for _, k := range rv.MapKeys() {
		text := stringify(k.Interface()).text
		keys = append(keys, mapKey{text: text, typ: fmt.Sprintf("%T", k.Interface()), value: k})
		seen[text]++
	}
	sort.SliceStable(keys, func(i, j int) bool {
		if keys[i].text != keys[j].text {
			return keys[i].text < keys[j].text
		}
		return keys[i].typ < keys[j].typ
	})

	m := make(map[string]any, len(keys))
	for _, k := range keys {
		name := k.text
		if seen[name] > 1 {
			name += " (" + k.typ + ")"
		}
		for n := 2; ; n++ {
			if _, taken := m[name]; !taken {
				break
			}
			name = fmt.Sprintf("%s (%s #%d)", k.text, k.typ, n)
		}
		m[name] = normalize(rv.MapIndex(k.value), depth+1)
	}
	return m
}

func normalizeList(rv reflect.Value, depth int) []any {
	list := make([]any, rv.Len())
	for i := range list {
		list[i] = normalize(rv.Index(i), depth+1)
	}
	return list
}

// PrettyMapping renders v as an indented YAML block with sorted keys and no
// trailing newline. It never fails; if the encoder rejects the tree the
// plain fmt form is returned.
func PrettyMapping(v any) string {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toNode(Normalize(v))); err != nil {
		return fmt.Sprint(v)
	}
	if err := enc.Close(); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func toNode(v any) *yaml.Node {
	switch x := v.(type) {
	case nil:
		return scalarNode("!!null", "null")
	case bool:
		return scalarNode("!!bool", strconv.FormatBool(x))
	case int64:
		return scalarNode("!!int", strconv.FormatInt(x, 10))
	case uint64:
		return scalarNode("!!int", strconv.FormatUint(x, 10))
	case float64:
		return scalarNode("!!float", formatFloat(x))
	case string:
		return scalarNode("!!str", x)
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range x {
			n.Content = append(n.Content, toNode(item))
		}
		return n
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range keys {
			n.Content = append(n.Content, scalarNode("!!str", k), toNode(x[k]))
		}
		return n
	}
	return scalarNode("!!str", fmt.Sprint(v))
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// formatFloat always keeps a decimal point or exponent so the value reads
// back as a float.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
