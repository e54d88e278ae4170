package config

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/go-ini/ini"
)

// decodeINI turns INI content into the nested map viper merges: one map
// per section, keys lower-cased, keys outside any section at the top level.
func decodeINI(data []byte) (map[string]any, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ini: %w", err)
	}

	out := make(map[string]any)
	for _, section := range file.Sections() {
		target := out
		if name := strings.ToLower(section.Name()); section.Name() != ini.DefaultSection {
			m, ok := out[name].(map[string]any)
			if !ok {
				m = make(map[string]any)
				out[name] = m
			}
			target = m
		}
		for _, key := range section.Keys() {
			target[strings.ToLower(key.Name())] = key.String()
		}
	}
	return out, nil
}

// encodeINI writes a nested settings map as INI, sections and keys sorted.
func encodeINI(settings map[string]any) ([]byte, error) {
	file := ini.Empty()

	for _, name := range sortedKeys(settings) {
		values, ok := settings[name].(map[string]any)
		if !ok {
			if _, err := file.Section("").NewKey(name, fmt.Sprint(settings[name])); err != nil {
				return nil, err
			}
			continue
		}

		section, err := file.NewSection(name)
		if err != nil {
			return nil, err
		}
		for _, key := range sortedKeys(values) {
			if _, err := section.NewKey(key, fmt.Sprint(values[key])); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
