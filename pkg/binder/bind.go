package binder

import (
	"fmt"
	"mime"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

// bindToStruct copies values into the fields of *v tagged with tag.
func bindToStruct(v any, tag string, values map[string][]string, errKind error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", errKind)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", errKind)
	}

	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		name, skip := parseFieldTag(sf, tag)
		if skip {
			continue
		}
		vals, ok := values[name]
		if !ok || len(vals) == 0 {
			continue
		}
		if err := setFieldValue(field, sf.Type, vals); err != nil {
			return fmt.Errorf("%w: field %s: %v", errKind, sf.Name, err)
		}
	}
	return nil
}

// parseFieldTag returns the parameter name for the field. Untagged fields
// are skipped so that one struct can mix form, query and path sources.
func parseFieldTag(sf reflect.StructField, tag string) (string, bool) {
	raw, ok := sf.Tag.Lookup(tag)
	if !ok || raw == "-" {
		return "", true
	}
	name, _, _ := strings.Cut(raw, ",")
	if name == "" {
		name = sf.Name
	}
	return name, false
}

func setFieldValue(field reflect.Value, typ reflect.Type, vals []string) error {
	switch typ.Kind() {
	case reflect.Pointer:
		elem := reflect.New(typ.Elem())
		if err := setFieldValue(elem.Elem(), typ.Elem(), vals); err != nil {
			return err
		}
		field.Set(elem)
		return nil

	case reflect.Slice:
		// Accept both ?tag=a&tag=b and ?tag=a,b.
		var items []string
		for _, v := range vals {
			for _, part := range strings.Split(v, ",") {
				if part = strings.TrimSpace(part); part != "" {
					items = append(items, part)
				}
			}
		}
		slice := reflect.MakeSlice(typ, len(items), len(items))
		for i, item := range items {
			if err := setScalar(slice.Index(i), typ.Elem().Kind(), item); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	}

	return setScalar(field, typ.Kind(), vals[0])
}

func setScalar(field reflect.Value, kind reflect.Kind, s string) error {
	switch kind {
	case reflect.String:
		field.SetString(s)
	case reflect.Bool:
		if s == "" || s == "on" {
			field.SetBool(s == "on")
			return nil
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if s == "" {
			return nil
		}
		n, err := strconv.ParseInt(s, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if s == "" {
			return nil
		}
		n, err := strconv.ParseUint(s, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetFloat(f)
	default:
		return fmt.Errorf("unsupported kind %s", kind)
	}
	return nil
}

// mediaType returns the request media type without parameters.
func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		mt, _, _ = strings.Cut(ct, ";")
		return strings.TrimSpace(strings.ToLower(mt))
	}
	return mt
}
