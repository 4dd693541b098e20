package env

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// MarshalEnv renders the non-zero `env`-tagged fields of the struct pointed to by c
// as .env content. Values are quoted by godotenv, keys are sorted.
func MarshalEnv(c any) (string, error) {
	vars, err := ToMap(c)
	if err != nil {
		return "", err
	}
	if len(vars) == 0 {
		return "", nil
	}

	content, err := godotenv.Marshal(vars)
	if err != nil {
		return "", fmt.Errorf("marshal env: %w", err)
	}
	return content + "\n", nil
}

// ToMap collects the non-zero `env`-tagged fields into KEY -> value pairs.
func ToMap(c any) (map[string]string, error) {
	v := reflect.ValueOf(c)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected pointer to struct, got %T", c)
	}
	v = v.Elem()
	t := v.Type()

	vars := make(map[string]string)
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		// "KEY,required,notEmpty" -> KEY
		key, _, _ := strings.Cut(field.Tag.Get("env"), ",")
		if key == "" {
			continue
		}

		val := v.Field(i)
		if val.IsZero() {
			continue
		}
		vars[key] = formatValue(val)
	}
	return vars, nil
}

func formatValue(v reflect.Value) string {
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
