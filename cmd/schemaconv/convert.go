package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/viant/schemaconv/conv"
	"github.com/viant/schemaconv/schema"
)

const maxLineSize = 16 * 1024 * 1024

// Stats summarises a conversion run
type Stats struct {
	Converted int
	Failed    int
}

type converter struct {
	registry *conv.Registry
	schema   *schema.Schema
	json     bool
	null     string
}

// Run converts every input line, converted values are written to out as JSON, failures to errOut.
// Only I/O errors stop the run.
func (c *converter) Run(in io.Reader, out, errOut io.Writer) (*Stats, error) {
	stats := &Stats{}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	writer := bufio.NewWriter(out)
	defer writer.Flush()
	line := 0
	for scanner.Scan() {
		line++
		value, err := c.convert(scanner.Bytes())
		if err == nil {
			var encoded []byte
			if encoded, err = json.Marshal(normalize(value)); err == nil {
				if _, err := fmt.Fprintf(writer, "%s\n", encoded); err != nil {
					return stats, err
				}
				stats.Converted++
				continue
			}
		}
		stats.Failed++
		log.Debugf("line %d: %v", line, err)
		if _, err := fmt.Fprintf(errOut, "line %d: %v\n", line, err); err != nil {
			return stats, err
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading input: %w", err)
	}
	return stats, writer.Flush()
}

func (c *converter) convert(line []byte) (interface{}, error) {
	if c.json {
		return c.registry.ConvertJSON(c.schema, line)
	}
	text := string(line)
	if text == c.null {
		return c.registry.ConvertString(c.schema, nil)
	}
	return c.registry.ConvertString(c.schema, &text)
}

// normalize converts map keys to text so that map values can be JSON encoded
func normalize(value interface{}) interface{} {
	switch actual := value.(type) {
	case map[interface{}]interface{}:
		ret := make(map[string]interface{}, len(actual))
		for k, v := range actual {
			ret[fmt.Sprint(k)] = normalize(v)
		}
		return ret
	case map[string]interface{}:
		ret := make(map[string]interface{}, len(actual))
		for k, v := range actual {
			ret[k] = normalize(v)
		}
		return ret
	case []interface{}:
		ret := make([]interface{}, len(actual))
		for i, v := range actual {
			ret[i] = normalize(v)
		}
		return ret
	}
	return value
}
