package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

func loadFromEnv(conf *Config, prefix string) error {
	return loadFromEnvRecursive(reflect.ValueOf(conf).Elem(), strings.ToUpper(prefix))
}

func loadFromEnvRecursive(v reflect.Value, prefix string) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		tagName := getFieldTagName(fieldType)
		if tagName == "" {
			continue
		}
		envKey := prefix + "_" + strings.ToUpper(tagName)

		if field.Kind() == reflect.Struct {
			if err := loadFromEnvRecursive(field, envKey); err != nil {
				return err
			}
			continue
		}

		envValue, ok := os.LookupEnv(envKey)
		if !ok || envValue == "" {
			continue
		}

		if err := setValueFromString(field, envValue, envKey); err != nil {
			return fmt.Errorf("failed to set field %s: %w", fieldType.Name, err)
		}
	}

	return nil
}

func getFieldTagName(fieldType reflect.StructField) string {
	yamlTag := fieldType.Tag.Get("yaml")
	if yamlTag == "-" {
		return ""
	}
	if yamlTag != "" {
		return strings.Split(yamlTag, ",")[0]
	}
	return strings.ToLower(fieldType.Name)
}

func setValueFromString(elem reflect.Value, value, envKey string) error {
	switch elem.Kind() {
	case reflect.String:
		elem.SetString(value)
	case reflect.Bool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %s", envKey, value)
		}
		elem.SetBool(val)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %s", envKey, value)
		}
		elem.SetInt(val)
	default:
		return fmt.Errorf("unsupported type %s for %s", elem.Kind(), envKey)
	}
	return nil
}
