// Package cfg parses the input-set preset file format: INI-style sections of
// key = value lines, where a value may also be an inline brace-delimited
// mapping from element symbols to numbers.
package cfg

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var elementKeyRe = regexp.MustCompile(`^[A-Z][a-z]?$`)

// File is a parsed preset file.
type File struct {
	sections map[string]*Section
	names    []string
}

// Section is a named flat mapping from parameter names to values. A value is
// one of string, int, float64, bool or map[string]float64.
type Section struct {
	name   string
	values map[string]interface{}
	keys   []string
}

// ParseFile parses the preset file at path.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preset file: %w", err)
	}
	defer f.Close()

	parsed, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return parsed, nil
}

// Parse reads a preset file from r.
func Parse(r io.Reader) (*File, error) {
	file := &File{sections: make(map[string]*Section)}
	var current *Section

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return nil, fmt.Errorf("line %d: malformed section header %q", lineNo, line)
			}
			name := strings.TrimSpace(line[1 : len(line)-1])
			if name == "" {
				return nil, fmt.Errorf("line %d: empty section name", lineNo)
			}
			if _, exists := file.sections[name]; exists {
				return nil, fmt.Errorf("line %d: duplicate section %q", lineNo, name)
			}
			current = &Section{name: name, values: make(map[string]interface{})}
			file.sections[name] = current
			file.names = append(file.names, name)
			continue
		}

		key, raw, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("line %d: expected key = value, got %q", lineNo, line)
		}
		if current == nil {
			return nil, fmt.Errorf("line %d: key %q outside any section", lineNo, strings.TrimSpace(key))
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("line %d: empty key", lineNo)
		}
		if _, exists := current.values[key]; exists {
			return nil, fmt.Errorf("line %d: duplicate key %q in section %q", lineNo, key, current.name)
		}

		value, err := parseValue(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("line %d: key %q: %w", lineNo, key, err)
		}
		current.values[key] = value
		current.keys = append(current.keys, key)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return file, nil
}

// parseValue converts a raw value string to its typed form. Inline element
// maps use JSON object syntax with double-quoted symbol keys.
func parseValue(raw string) (interface{}, error) {
	if raw == "" {
		return "", nil
	}
	if strings.HasPrefix(raw, "{") {
		var m map[string]float64
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return nil, fmt.Errorf("malformed element map: %w", err)
		}
		for k := range m {
			if !elementKeyRe.MatchString(k) {
				return nil, fmt.Errorf("element map key %q is not an element symbol", k)
			}
		}
		return m, nil
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return int(i), nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f, nil
	}
	switch strings.ToLower(raw) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return strings.Trim(raw, `"`), nil
}

// Section returns the named section.
func (f *File) Section(name string) (*Section, bool) {
	s, ok := f.sections[name]
	return s, ok
}

// SectionNames returns section names in file order.
func (f *File) SectionNames() []string {
	return append([]string(nil), f.names...)
}

// Name returns the section name.
func (s *Section) Name() string { return s.name }

// Keys returns parameter names in file order.
func (s *Section) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Get returns the typed value for key.
func (s *Section) Get(key string) (interface{}, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Int returns an integer value.
func (s *Section) Int(key string) (int, bool) {
	v, ok := s.values[key].(int)
	return v, ok
}

// Float returns a float value; integer values are widened.
func (s *Section) Float(key string) (float64, bool) {
	switch v := s.values[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// Bool returns a boolean value.
func (s *Section) Bool(key string) (bool, bool) {
	v, ok := s.values[key].(bool)
	return v, ok
}

// String returns a string value.
func (s *Section) String(key string) (string, bool) {
	v, ok := s.values[key].(string)
	return v, ok
}

// ElementMap returns an inline element-to-number mapping.
func (s *Section) ElementMap(key string) (map[string]float64, bool) {
	v, ok := s.values[key].(map[string]float64)
	if !ok {
		return nil, false
	}
	m := make(map[string]float64, len(v))
	for k, val := range v {
		m[k] = val
	}
	return m, true
}
