package txconv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
)

// ErrNoSchema is returned when writing an empty record list without an
// explicit field set: the header cannot be inferred.
var ErrNoSchema = errors.New("cannot infer csv header from an empty record list")

// Fields returns the csv field names of the struct type T in declaration order.
//
// The name is the `csv` tag if any, the Go field name otherwise. Fields tagged
// `csv:"-"` and unexported fields are ignored.
func Fields[T any]() []string {
	return fieldNames(reflect.TypeFor[T]())
}

// EncodeCSV writes records as CSV: a header row then one row per record.
//
// Records must be structs (or pointers to structs). fields selects the
// columns; if empty, all the fields of the records are written in
// declaration order, which requires at least one record.
//
// Values are written using their String method if any, nil pointers as empty
// columns and numbers in their natural text form.
func EncodeCSV[T any](w io.Writer, records []T, fields ...string) error {
	if len(fields) == 0 {
		if len(records) == 0 {
			return ErrNoSchema
		}
		fields = fieldNames(reflect.TypeOf(records[0]))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(fields); err != nil {
		return fmt.Errorf("cannot write csv header: %w", err)
	}

	row := make([]string, len(fields))
	for i, r := range records {
		v := reflect.Indirect(reflect.ValueOf(r))
		if v.Kind() != reflect.Struct {
			return fmt.Errorf("record %d: cannot encode %s as csv", i, v.Kind())
		}
		index, err := fieldIndex(v.Type(), fields)
		if err != nil {
			return err
		}
		for j, k := range index {
			row[j] = formatValue(v.Field(k))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write csv record %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func fieldNames(t reflect.Type) []string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	var names []string
	for i := range t.NumField() {
		if name, ok := fieldName(t.Field(i)); ok {
			names = append(names, name)
		}
	}
	return names
}

func fieldName(f reflect.StructField) (string, bool) {
	if !f.IsExported() {
		return "", false
	}
	switch tag := f.Tag.Get("csv"); tag {
	case "-":
		return "", false
	case "":
		return f.Name, true
	default:
		return tag, true
	}
}

// fieldIndex returns the struct field index of each name.
func fieldIndex(t reflect.Type, names []string) ([]int, error) {
	byName := make(map[string]int)
	for i := range t.NumField() {
		if name, ok := fieldName(t.Field(i)); ok {
			byName[name] = i
		}
	}
	index := make([]int, len(names))
	for i, name := range names {
		k, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown csv field %q in %s", name, t)
		}
		index[i] = k
	}
	return index, nil
}

func formatValue(v reflect.Value) string {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if v.CanInterface() {
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String()
		}
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	default:
		return fmt.Sprint(v.Interface())
	}
}
