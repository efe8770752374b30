package debugui

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"
)

// fieldLine is one row of a flattened struct: nested structs become a header
// line followed by their fields one level deeper.
type fieldLine struct {
	Name   string
	Value  string
	Depth  int
	Header bool
}

// fieldCache remembers the exported field indices of each struct type.
type fieldCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]int
}

func newFieldCache() *fieldCache {
	return &fieldCache{fields: make(map[reflect.Type][]int)}
}

func (fc *fieldCache) exported(t reflect.Type) []int {
	fc.mu.RLock()
	cached, ok := fc.fields[t]
	fc.mu.RUnlock()
	if ok {
		return cached
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	var indices []int
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			indices = append(indices, i)
		}
	}
	fc.fields[t] = indices
	return indices
}

var globalFieldCache = newFieldCache()

var durationType = reflect.TypeOf(time.Duration(0))

// flatten describes every exported field of v, which must be a struct or a
// pointer to one.
func flatten(v any) []fieldLine {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return []fieldLine{{Name: val.Type().String(), Value: fmt.Sprint(v)}}
	}

	var lines []fieldLine
	appendStruct(&lines, val, 0)
	return lines
}

func appendStruct(lines *[]fieldLine, val reflect.Value, depth int) {
	t := val.Type()
	for _, idx := range globalFieldCache.exported(t) {
		name := t.Field(idx).Name
		fv := val.Field(idx)

		if fv.Kind() == reflect.Struct && fv.Type().NumField() > 0 && !isLeafStruct(fv.Type()) {
			*lines = append(*lines, fieldLine{Name: name, Depth: depth, Header: true})
			appendStruct(lines, fv, depth+1)
			continue
		}
		*lines = append(*lines, fieldLine{Name: name, Value: formatValue(fv), Depth: depth})
	}
}

// isLeafStruct reports small value structs printed on one line.
func isLeafStruct(t reflect.Type) bool {
	return t.NumField() <= 4 && t.Field(0).Type.Kind() != reflect.Struct
}

func formatValue(v reflect.Value) string {
	switch {
	case v.Type() == durationType:
		return time.Duration(v.Int()).String()
	case v.Kind() == reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		out := "{"
		for i, k := range keys {
			if i > 0 {
				out += " "
			}
			out += fmt.Sprintf("%v:%v", k.Interface(), v.MapIndex(k).Interface())
		}
		return out + "}"
	case v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64:
		return fmt.Sprintf("%g", v.Float())
	}
	return fmt.Sprintf("%+v", v.Interface())
}
