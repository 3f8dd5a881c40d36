package logger

import (
	"fmt"
	"reflect"
)

// payloadKind classifies the argument attached to a log entry.
type payloadKind int

const (
	payloadNone payloadKind = iota
	payloadScalar
	payloadText
	payloadMapping
	payloadUnknown
)

// payload is the argument of one entry, classified once at the render
// boundary so layout and rendering never inspect its type again.
type payload struct {
	kind  payloadKind
	value any
}

func classify(v any) payload {
	if v == nil {
		return payload{kind: payloadNone}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return payload{kind: payloadNone}
		}
	}
	switch v.(type) {
	case string, []byte:
		return payload{kind: payloadText, value: v}
	case error, fmt.Stringer:
		return payload{kind: payloadUnknown, value: v}
	}
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return payload{kind: payloadScalar, value: v}
	case reflect.Map:
		return payload{kind: payloadMapping, value: v}
	}
	return payload{kind: payloadUnknown, value: v}
}

// text returns the default textual form of a non-mapping payload.
func (p payload) text() textResult {
	switch p.kind {
	case payloadNone:
		return textResult{ok: true}
	case payloadText:
		if b, ok := p.value.([]byte); ok {
			return textResult{text: string(b), ok: true}
		}
		return textResult{text: p.value.(string), ok: true}
	}
	return stringify(p.value)
}

// body converts the payload to the text printed after the prompt. It is
// called once per entry; layout and output share the result.
func (p payload) body() textResult {
	if p.kind == payloadMapping {
		return textResult{text: PrettyMapping(p.value), ok: true}
	}
	return p.text()
}

// textResult is the outcome of a best-effort conversion to text. When ok is
// false, text still holds a printable fallback.
type textResult struct {
	text string
	ok   bool
}

// stringify converts v to text without ever panicking. A panic raised by a
// user-defined Error or String method is reported as ok=false.
func stringify(v any) (res textResult) {
	defer func() {
		if r := recover(); r != nil {
			res = textResult{text: fmt.Sprintf("<unprintable %T>", v), ok: false}
		}
	}()
	switch x := v.(type) {
	case nil:
		return textResult{text: "<nil>", ok: true}
	case string:
		return textResult{text: x, ok: true}
	case error:
		return textResult{text: x.Error(), ok: true}
	case fmt.Stringer:
		return textResult{text: x.String(), ok: true}
	}
	return textResult{text: fmt.Sprint(v), ok: true}
}
