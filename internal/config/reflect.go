package config

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// SettingField represents metadata about a settings field extracted from struct tags
type SettingField struct {
	Key      string // e.g., "sketchybar.item"
	Default  string // default value as string
	Desc     string // description for help text
	Min      int    // minimum value for int fields (0 = no limit)
	Max      int    // maximum value for int fields (0 = no limit)
	Type     string // "string" or "int"
	Category string // e.g., "labels", "sketchybar", "state"
}

// fieldCache caches parsed fields to avoid repeated reflection
var fieldCache []SettingField

// settingFields extracts all fields from Settings using reflection
func settingFields() []SettingField {
	if fieldCache != nil {
		return fieldCache
	}

	var fields []SettingField
	s := &Settings{}
	extractFields(reflect.TypeOf(s).Elem(), &fields)

	// Sort by key for consistent ordering
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Key < fields[j].Key
	})

	fieldCache = fields
	return fields
}

// extractFields recursively extracts fields from a struct
func extractFields(t reflect.Type, fields *[]SettingField) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		key := field.Tag.Get("config")
		if key == "" {
			if field.Type.Kind() == reflect.Struct && field.Tag.Get("toml") != "" {
				extractFields(field.Type, fields)
			}
			continue
		}

		sf := SettingField{
			Key:      key,
			Default:  field.Tag.Get("default"),
			Desc:     field.Tag.Get("desc"),
			Category: strings.Split(key, ".")[0],
		}

		// Parse min/max for validation
		if minStr := field.Tag.Get("min"); minStr != "" {
			sf.Min, _ = strconv.Atoi(minStr)
		}
		if maxStr := field.Tag.Get("max"); maxStr != "" {
			sf.Max, _ = strconv.Atoi(maxStr)
		}

		switch field.Type.Kind() {
		case reflect.Int:
			sf.Type = "int"
		case reflect.String:
			sf.Type = "string"
		}

		*fields = append(*fields, sf)
	}
}

// FindField finds a field by key
func FindField(key string) (SettingField, bool) {
	key = normalizeKey(key)
	for _, f := range settingFields() {
		if f.Key == key {
			return f, true
		}
	}
	return SettingField{}, false
}

// normalizeKey handles key aliases
func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	aliases := map[string]string{
		"labels.short":    "labels.short_break",
		"labels.long":     "labels.long_break",
		"sketchybar.freq": "sketchybar.update_freq",
		"state.file":      "state.path",
	}
	if normalized, ok := aliases[key]; ok {
		return normalized
	}
	return key
}

// lookupField finds the struct field for key inside a settings value
func lookupField(s *Settings, key string) (reflect.Value, bool) {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return reflect.Value{}, false
	}

	v := reflect.ValueOf(s).Elem()
	t := v.Type()

	// Find the nested struct by toml tag
	var nested reflect.Value
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("toml") == parts[0] {
			nested = v.Field(i)
			break
		}
	}
	if !nested.IsValid() || nested.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}

	nt := nested.Type()
	for i := 0; i < nt.NumField(); i++ {
		if nt.Field(i).Tag.Get("config") == key {
			return nested.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// getFieldValue gets a field value from settings using reflection
func getFieldValue(s *Settings, key string) (string, bool) {
	fv, ok := lookupField(s, normalizeKey(key))
	if !ok {
		return "", false
	}
	switch fv.Kind() {
	case reflect.String:
		return fv.String(), true
	case reflect.Int:
		return strconv.FormatInt(fv.Int(), 10), true
	}
	return "", false
}

// setFieldValue sets a field value on settings using reflection
func setFieldValue(s *Settings, key, value string) error {
	key = normalizeKey(key)

	field, ok := FindField(key)
	if !ok {
		return fmt.Errorf("unknown settings key: %s", key)
	}

	fv, ok := lookupField(s, key)
	if !ok {
		return fmt.Errorf("field not found: %s", key)
	}

	switch fv.Kind() {
	case reflect.String:
		fv.SetString(value)
		return nil

	case reflect.Int:
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value: %s", value)
		}

		// Validate min/max
		if field.Min != 0 && intVal < field.Min {
			return fmt.Errorf("value %d is below minimum %d", intVal, field.Min)
		}
		if field.Max != 0 && intVal > field.Max {
			return fmt.Errorf("value %d exceeds maximum %d", intVal, field.Max)
		}

		fv.SetInt(int64(intVal))
		return nil
	}

	return fmt.Errorf("unsupported field type for %s", key)
}

// ListKeys returns all available settings keys
func ListKeys() []string {
	fields := settingFields()
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys
}

// FieldsByCategory returns settings fields grouped by category
func FieldsByCategory() map[string][]SettingField {
	result := make(map[string][]SettingField)
	for _, f := range settingFields() {
		result[f.Category] = append(result[f.Category], f)
	}
	return result
}

// GenerateHelpText generates help text for all settings
func GenerateHelpText() string {
	var sb strings.Builder

	byCategory := FieldsByCategory()

	// Define category order and titles
	categories := []struct {
		key   string
		title string
	}{
		{"labels", "Labels"},
		{"sketchybar", "Sketchybar"},
		{"state", "State"},
	}

	for _, cat := range categories {
		fields, ok := byCategory[cat.key]
		if !ok || len(fields) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("  %s:\n", cat.title))
		for _, f := range fields {
			defaultStr := ""
			if f.Default != "" {
				defaultStr = fmt.Sprintf(" (default: %s)", f.Default)
			}
			// Pad key to align descriptions
			sb.WriteString(fmt.Sprintf("    %-26s %s%s\n", f.Key, f.Desc, defaultStr))
		}
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}
