package steam_util

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
)

// decodeVdfMap copies a parsed vdf tree into the struct result points to.
// Keys are matched to exported field names case-insensitively, unknown keys
// are ignored, and values that don't fit their field are skipped.
func decodeVdfMap(data interface{}, result interface{}) error {
	rv := reflect.ValueOf(result)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return errors.New("vdf: result must be a pointer to a struct")
	}
	section, ok := data.(map[string]interface{})
	if !ok {
		return fmt.Errorf("vdf: expected a section, got %T", data)
	}
	decodeStruct(section, rv.Elem())
	return nil
}

func decodeStruct(section map[string]interface{}, v reflect.Value) {
	t := v.Type()
	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			fields[strings.ToLower(t.Field(i).Name)] = i
		}
	}
	for key, raw := range section {
		i, found := fields[strings.ToLower(key)]
		if !found {
			continue
		}
		decodeValue(key, raw, v.Field(i))
	}
}

func decodeValue(key string, raw interface{}, field reflect.Value) {
	switch field.Kind() {
	case reflect.Struct:
		if section, ok := raw.(map[string]interface{}); ok {
			decodeStruct(section, field)
		}
	case reflect.Map:
		if section, ok := raw.(map[string]interface{}); ok {
			decodeMap(key, section, field)
		}
	default:
		s, ok := raw.(string)
		if !ok {
			slog.Debug("vdf: expected a string value", "key", key, "got", fmt.Sprintf("%T", raw))
			return
		}
		if err := setScalar(field, s); err != nil {
			slog.Debug("vdf: skipping value", "key", key, "value", s, "error", err)
		}
	}
}

// decodeMap fills a map field; integer-keyed maps have their keys parsed.
func decodeMap(key string, section map[string]interface{}, field reflect.Value) {
	mt := field.Type()
	out := reflect.MakeMapWithSize(mt, len(section))
	for k, raw := range section {
		mk := reflect.New(mt.Key()).Elem()
		if err := setScalar(mk, k); err != nil {
			slog.Debug("vdf: skipping map key", "key", key, "map_key", k, "error", err)
			continue
		}
		elem := reflect.New(mt.Elem()).Elem()
		decodeValue(k, raw, elem)
		out.SetMapIndex(mk, elem)
	}
	field.Set(out)
}

func setScalar(field reflect.Value, s string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetUint(n)
	case reflect.Bool:
		field.SetBool(s == "1" || strings.EqualFold(s, "true"))
	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}
	return nil
}
