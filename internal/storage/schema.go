package storage

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed task.schema.json
var taskSchemaJSON string

var taskSchema = jsonschema.MustCompileString("task.schema.json", taskSchemaJSON)

// validateRecord checks one decoded task record against the task schema
// and flattens any validation failure into a single readable error.
func validateRecord(record interface{}) error {
	err := taskSchema.Validate(record)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}

	var msgs []string
	collectCauses(ve, &msgs)
	if len(msgs) == 0 {
		return errors.New(ve.Message)
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

func collectCauses(ve *jsonschema.ValidationError, msgs *[]string) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*msgs = append(*msgs, loc+": "+ve.Message)
		return
	}
	for _, cause := range ve.Causes {
		collectCauses(cause, msgs)
	}
}
