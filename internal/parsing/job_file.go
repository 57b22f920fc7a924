// Package parsing reads jobs and their pre-extracted keywords from JSON documents.
package parsing

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-studio/internal/keywords"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
)

// LoadJobFile reads a job document from path. When the job schema can be located it is
// checked first; a schema that fails to load is reported to warn and otherwise ignored.
func LoadJobFile(path string, warn io.Writer) (*types.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Message: "failed to read job file", Cause: err}
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.JobSchema); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			var schemaLoadErr *schemas.SchemaLoadError
			if !errors.As(err, &schemaLoadErr) {
				return nil, &ValidationError{Message: "job file does not match schema", Cause: err}
			}
			if warn != nil {
				_, _ = fmt.Fprintf(warn, "Warning: Could not validate job file against schema: %v\n", err)
			}
		}
	}

	return ParseJob(data, path)
}

// ParseJob decodes and validates a job document. source names the document in errors.
func ParseJob(data []byte, source string) (*types.Job, error) {
	var doc types.JobDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: source, Message: "invalid job JSON", Cause: err}
	}

	job := doc.Job()
	if err := keywords.ValidateJob(job); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error(), Cause: err}
	}
	return job, nil
}
