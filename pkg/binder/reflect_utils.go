package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// bindToStruct copies string values into the tagged fields of the struct v points to.
func bindToStruct(v any, tagName string, values map[string][]string, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", bindErr)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", bindErr)
	}

	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		name, ok := fieldName(sf, tagName)
		if !ok {
			continue
		}
		raw, exists := values[name]
		if !exists || len(raw) == 0 {
			continue
		}
		if err := setField(field, raw); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, name, err)
		}
	}
	return nil
}

// fieldName resolves the parameter name for a field. Untagged fields are
// skipped so JSON-only fields never pick up query or path values.
func fieldName(sf reflect.StructField, tagName string) (string, bool) {
	tag, ok := sf.Tag.Lookup(tagName)
	if !ok || tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = strings.ToLower(sf.Name)
	}
	return name, true
}

func setField(field reflect.Value, values []string) error {
	switch field.Kind() {
	case reflect.Pointer:
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return setField(field.Elem(), values)
	case reflect.Slice:
		var parts []string
		for _, v := range values {
			parts = append(parts, strings.Split(v, ",")...)
		}
		slice := reflect.MakeSlice(field.Type(), len(parts), len(parts))
		for i, p := range parts {
			if err := setField(slice.Index(i), []string{strings.TrimSpace(p)}); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	}

	value := values[0]
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)
	case reflect.Bool:
		switch strings.ToLower(value) {
		case "1", "true", "on", "yes":
			field.SetBool(true)
		case "", "0", "false", "off", "no":
			field.SetBool(false)
		default:
			return fmt.Errorf("invalid bool value %q", value)
		}
	default:
		return fmt.Errorf("unsupported type %s", field.Kind())
	}
	return nil
}
