package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	m "github.com/Eeeeast/diff/internal/model"
)

// Format names a test-case file encoding.
type Format string

// Supported test-case file encodings.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned when a format cannot be derived from a name.
var ErrUnknownFormat = errors.New("unknown test file format")

// ErrMissingTests is returned when a test file has no top level "tests" list.
var ErrMissingTests = errors.New(`missing "tests" list`)

// ErrUnknownKeys is returned when a test file contains keys that are not part
// of a test record.
var ErrUnknownKeys = errors.New("unknown keys")

// ParseFormat maps a user supplied name ("toml", "yaml", "yml") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatForPath derives the format from a file extension.
func FormatForPath(path m.Path) (Format, error) {
	return ParseFormat(filepath.Ext(string(path)))
}

// TestCaseStore loads and saves ordered lists of test cases.
type TestCaseStore interface {
	Load(path m.Path) ([]m.TestCase, error)
	Save(path m.Path, cases []m.TestCase) error
	Encode(w io.Writer, format Format, cases []m.TestCase) error
	Generate(count int) []m.TestCase
}

// testFile is the on-disk shape: a top level "tests" array of records.
type testFile struct {
	Tests []testRecord `toml:"tests" yaml:"tests"`
}

type testRecord struct {
	Note     string `toml:"note,omitempty" yaml:"note,omitempty"`
	Args     string `toml:"args,omitempty" yaml:"args,omitempty"`
	Input    string `toml:"input" yaml:"input"`
	Expected string `toml:"expected" yaml:"expected"`
	// Out is the legacy name of Expected; it is read but never written.
	Out string `toml:"out,omitempty" yaml:"out,omitempty"`
}

// LocalTestCaseStore reads and writes test-case files on the local disk.
type LocalTestCaseStore struct{}

// NewTestCaseStore constructs a TestCaseStore backed by the local disk.
func NewTestCaseStore() *LocalTestCaseStore {
	return &LocalTestCaseStore{}
}

// Load reads the file at path, choosing the decoder from its extension.
func (s *LocalTestCaseStore) Load(path m.Path) ([]m.TestCase, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read test file: %w", err)
	}

	var records []testRecord

	switch format {
	case FormatTOML:
		records, err = decodeTOML(data)
	case FormatYAML:
		records, err = decodeYAML(data)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse %s test file %s: %w", format, path, err)
	}

	cases := make([]m.TestCase, 0, len(records))
	for _, rec := range records {
		expected := rec.Expected
		if expected == "" {
			expected = rec.Out
		}

		cases = append(cases, m.TestCase{
			Note:     rec.Note,
			Args:     rec.Args,
			Input:    rec.Input,
			Expected: expected,
		})
	}

	return cases, nil
}

func decodeTOML(data []byte) ([]testRecord, error) {
	var file testFile

	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}

		return nil, fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
	}

	if !md.IsDefined("tests") {
		return nil, ErrMissingTests
	}

	return file.Tests, nil
}

func decodeYAML(data []byte) ([]testRecord, error) {
	// A pointer tells an absent list apart from an empty one.
	var file struct {
		Tests *[]testRecord `yaml:"tests"`
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingTests
		}

		return nil, err
	}

	if file.Tests == nil {
		return nil, ErrMissingTests
	}

	return *file.Tests, nil
}

// Save writes cases to path, choosing the encoder from its extension.
func (s *LocalTestCaseStore) Save(path m.Path, cases []m.TestCase) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := s.Encode(&buf, format, cases); err != nil {
		return err
	}

	if err := os.WriteFile(string(path), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write test file: %w", err)
	}

	return nil
}

// Encode serializes cases in the given format.
func (s *LocalTestCaseStore) Encode(w io.Writer, format Format, cases []m.TestCase) error {
	file := testFile{Tests: make([]testRecord, 0, len(cases))}
	for _, tc := range cases {
		file.Tests = append(file.Tests, testRecord{
			Note:     tc.Note,
			Args:     tc.Args,
			Input:    tc.Input,
			Expected: tc.Expected,
		})
	}

	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(file); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(file); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return nil
}

// Generate returns count placeholder cases to be edited by hand.
func (s *LocalTestCaseStore) Generate(count int) []m.TestCase {
	cases := make([]m.TestCase, 0, count)
	for i := 1; i <= count; i++ {
		cases = append(cases, m.TestCase{
			Note:     fmt.Sprintf("test %d", i),
			Args:     "arguments",
			Input:    "input",
			Expected: "output",
		})
	}

	return cases
}
