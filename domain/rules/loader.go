package rules

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML rule file. Sections left out of the file keep their
// default rules.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read rules file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Set{}, fmt.Errorf("rules file %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML rules over the defaults and compiles the result.
func Parse(data []byte) (Set, error) {
	var parsed Set
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&parsed); err != nil && !errors.Is(err, io.EOF) {
		return Set{}, fmt.Errorf("decode yaml: %w", err)
	}

	s := Default()
	if len(parsed.Article) > 0 {
		s.Article = parsed.Article
	}
	if len(parsed.Title) > 0 {
		s.Title = parsed.Title
	}
	if len(parsed.Published) > 0 {
		s.Published = parsed.Published
	}
	if len(parsed.Author) > 0 {
		s.Author = parsed.Author
	}
	if len(parsed.Content.Containers) > 0 {
		s.Content.Containers = parsed.Content.Containers
	}
	if len(parsed.Content.Strip) > 0 {
		s.Content.Strip = parsed.Content.Strip
	}
	if len(parsed.Content.Blocks) > 0 {
		s.Content.Blocks = parsed.Content.Blocks
	}
	if parsed.Content.Fallback != "" {
		s.Content.Fallback = parsed.Content.Fallback
	}
	if parsed.Content.FallbackLimit != 0 {
		s.Content.FallbackLimit = parsed.Content.FallbackLimit
	}

	if err := s.Compile(); err != nil {
		return Set{}, err
	}
	return s, nil
}

// Marshal renders s as YAML.
func Marshal(s Set) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}
