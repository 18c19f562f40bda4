// Package jsonschema reads and writes quizzes as JSON. Documents are
// validated against an embedded JSON schema before they are decoded, so a
// quiz read back from disk always has the shape the writers expect.
package jsonschema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/fwojciec/quizdoc"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Ensure Codec implements quizdoc.QuizWriter and quizdoc.QuizReader.
var (
	_ quizdoc.QuizWriter = (*Codec)(nil)
	_ quizdoc.QuizReader = (*Codec)(nil)
)

//go:embed quiz.schema.json
var schemaJSON []byte

const schemaURL = "schema://quizdoc/quiz.schema.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var parsed any
	if err := json.Unmarshal(schemaJSON, &parsed); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, parsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	schema, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return schema, nil
})

// Codec encodes quizzes as indented JSON and decodes validated JSON quizzes.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// WriteQuiz writes quiz to w as JSON indented by four spaces. HTML in
// question text is written as is.
func (*Codec) WriteQuiz(w io.Writer, quiz *quizdoc.Quiz) error {
	if quiz == nil {
		return quizdoc.Errorf(quizdoc.EINVALID, "quiz required")
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(quiz); err != nil {
		return fmt.Errorf("encode quiz: %w", err)
	}
	return nil
}

// ReadQuiz decodes a quiz previously written by WriteQuiz. Documents that are
// not JSON or do not match the quiz schema return EINVALID.
func (*Codec) ReadQuiz(r io.Reader) (*quizdoc.Quiz, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read quiz: %w", err)
	}

	if err := Validate(data); err != nil {
		return nil, err
	}

	quiz := quizdoc.NewQuiz("")
	if err := json.Unmarshal(data, quiz); err != nil {
		return nil, quizdoc.Errorf(quizdoc.EINVALID, "invalid quiz JSON: %v", err)
	}
	return quiz, nil
}

// Validate checks data against the quiz schema.
func Validate(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("quiz schema: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return quizdoc.Errorf(quizdoc.EINVALID, "invalid quiz JSON: %v", err)
	}

	if err := schema.Validate(doc); err != nil {
		return quizdoc.Errorf(quizdoc.EINVALID, "quiz does not match schema: %v", err)
	}
	return nil
}
