package printer

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/osx-registryio/registryio/pkg/types"
)

// jsonMapping represents a named property dictionary in JSON format.
type jsonMapping struct {
	Name       string         `json:"name,omitempty"`
	Count      int            `json:"count"`
	Properties map[string]any `json:"properties"`
}

// jsonValue represents a value with its kind in JSON format.
type jsonValue struct {
	Kind string `json:"kind"`
	Data any    `json:"data"`
}

// printMappingJSON prints a dictionary in JSON format.
func (p *Printer) printMappingJSON(name string, m types.Mapping) error {
	out := jsonMapping{
		Name:       name,
		Count:      len(m),
		Properties: make(map[string]any, len(m)),
	}
	for k, v := range m {
		out.Properties[k] = p.encodeJSON(v, 1)
	}
	return p.writeJSON(out)
}

// printValueJSON prints a single property in JSON format.
func (p *Printer) printValueJSON(key string, v types.Value) error {
	return p.writeJSON(map[string]any{key: p.encodeJSON(v, 1)})
}

func (p *Printer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

// encodeJSON converts v into JSON-friendly data. Bytes become hex strings.
func (p *Printer) encodeJSON(v types.Value, depth int) any {
	var data any
	switch v.Kind() {
	case types.KindMapping:
		m, _ := v.AsMapping()
		if p.collapsed(depth) && len(m) > 0 {
			data = fmt.Sprintf("{...%d entries}", len(m))
			break
		}
		obj := make(map[string]any, len(m))
		for k, e := range m {
			obj[k] = p.encodeJSON(e, depth+1)
		}
		data = obj
	case types.KindSequence:
		seq, _ := v.AsSeq()
		if p.collapsed(depth) && len(seq) > 0 {
			data = fmt.Sprintf("(...%d items)", len(seq))
			break
		}
		arr := make([]any, len(seq))
		for i, e := range seq {
			arr[i] = p.encodeJSON(e, depth+1)
		}
		data = arr
	case types.KindBytes:
		raw, _ := v.AsBytes()
		data = hex.EncodeToString(raw)
	default:
		data = v.Interface()
	}

	if p.opts.ShowKinds {
		return jsonValue{Kind: v.Kind().String(), Data: data}
	}
	return data
}
