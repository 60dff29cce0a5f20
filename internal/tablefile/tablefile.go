// Package tablefile loads progression tables from YAML so thresholds and tier
// counts can change without a rebuild.
package tablefile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/academy/internal/progression"
)

// CurrentVersion is written by Marshal. Any v1.x document is accepted.
const CurrentVersion = "v1.0.0"

const supportedMajor = "v1"

// ErrUnsupportedVersion is returned for documents outside the v1 major line.
var ErrUnsupportedVersion = errors.New("unsupported tables version")

//go:embed schema.json
var schemaJSON string

const schemaURL = "schema://academy-tables.json"

// Document is the on-disk layout. Omitted sections fall back to defaults.
type Document struct {
	Version    string                   `yaml:"version"`
	Ranks      []progression.Rank       `yaml:"ranks"`
	Flames     []progression.FlameLevel `yaml:"flames"`
	Belts      []progression.BeltRank   `yaml:"belts"`
	Milestones []progression.Milestone  `yaml:"milestones"`
}

// Load reads and parses the tables file at path.
func Load(path string) (progression.Tables, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return progression.Tables{}, fmt.Errorf("read tables file: %w", err)
	}
	t, err := Parse(b)
	if err != nil {
		return progression.Tables{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a YAML document, checks it against the schema and version
// line, and merges it over the default tables. The result is validated.
func Parse(b []byte) (progression.Tables, error) {
	var raw any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return progression.Tables{}, fmt.Errorf("decode yaml: %w", err)
	}
	if err := validateSchema(raw); err != nil {
		return progression.Tables{}, err
	}

	var doc Document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return progression.Tables{}, fmt.Errorf("decode tables: %w", err)
	}
	if err := checkVersion(doc.Version); err != nil {
		return progression.Tables{}, err
	}

	t := merge(doc)
	if err := t.Validate(); err != nil {
		return progression.Tables{}, fmt.Errorf("invalid tables: %w", err)
	}
	return t, nil
}

// Marshal renders tables as a YAML document at CurrentVersion.
func Marshal(t progression.Tables) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	doc := Document{
		Version:    CurrentVersion,
		Ranks:      t.Ranks,
		Flames:     t.Flames,
		Belts:      t.Belts,
		Milestones: t.Milestones,
	}
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode tables: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode tables: %w", err)
	}
	return buf.Bytes(), nil
}

func merge(doc Document) progression.Tables {
	t := progression.DefaultTables()
	if doc.Ranks != nil {
		t.Ranks = doc.Ranks
	}
	if doc.Flames != nil {
		t.Flames = doc.Flames
	}
	if doc.Belts != nil {
		t.Belts = doc.Belts
	}
	if doc.Milestones != nil {
		t.Milestones = doc.Milestones
	}
	return t
}

func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if semver.Major(v) != supportedMajor {
		return fmt.Errorf("%w: %s (want %s.x)", ErrUnsupportedVersion, v, supportedMajor)
	}
	return nil
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// validateSchema checks a decoded YAML value against the embedded schema.
// The value goes through JSON so the validator sees JSON number types.
func validateSchema(raw any) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile tables schema: %w", err)
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
