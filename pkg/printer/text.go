package printer

import (
	"fmt"
	"strings"

	"github.com/osx-registryio/registryio/pkg/types"
)

// printMappingText prints a dictionary in human-readable text format.
func (p *Printer) printMappingText(name string, m types.Mapping) error {
	if name != "" {
		if _, err := fmt.Fprintf(p.writer, "[%s]\n", name); err != nil {
			return err
		}
	}
	for _, k := range m.Keys() {
		if err := p.printEntryText(k, m[k], 1); err != nil {
			return err
		}
	}
	return nil
}

// printEntryText prints `"key" [kind] = value` and expands containers below it.
func (p *Printer) printEntryText(key string, v types.Value, depth int) error {
	return p.printLabeledText(fmt.Sprintf("%q", key), v, depth)
}

func (p *Printer) printLabeledText(label string, v types.Value, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	if p.opts.ShowKinds {
		label += fmt.Sprintf(" [%s]", v.Kind())
	}

	switch v.Kind() {
	case types.KindMapping:
		m, _ := v.AsMapping()
		if len(m) == 0 {
			_, err := fmt.Fprintf(p.writer, "%s%s = {}\n", indent, label)
			return err
		}
		if p.collapsed(depth) {
			_, err := fmt.Fprintf(p.writer, "%s%s = {...%d entries}\n", indent, label, len(m))
			return err
		}
		if _, err := fmt.Fprintf(p.writer, "%s%s = {\n", indent, label); err != nil {
			return err
		}
		for _, k := range m.Keys() {
			if err := p.printEntryText(k, m[k], depth+1); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(p.writer, "%s}\n", indent)
		return err

	case types.KindSequence:
		seq, _ := v.AsSeq()
		if len(seq) == 0 {
			_, err := fmt.Fprintf(p.writer, "%s%s = ()\n", indent, label)
			return err
		}
		if p.collapsed(depth) {
			_, err := fmt.Fprintf(p.writer, "%s%s = (...%d items)\n", indent, label, len(seq))
			return err
		}
		if _, err := fmt.Fprintf(p.writer, "%s%s = (\n", indent, label); err != nil {
			return err
		}
		for i, e := range seq {
			if err := p.printLabeledText(fmt.Sprintf("[%d]", i), e, depth+1); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(p.writer, "%s)\n", indent)
		return err

	default:
		_, err := fmt.Fprintf(p.writer, "%s%s = %s\n", indent, label, p.scalarText(v))
		return err
	}
}

// collapsed reports whether containers at depth are past MaxDepth. Depth 1 is
// the top level of a printed dictionary.
func (p *Printer) collapsed(depth int) bool {
	return p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth
}

func (p *Printer) scalarText(v types.Value) string {
	switch v.Kind() {
	case types.KindNull:
		return "null"
	case types.KindBool:
		b, _ := v.AsBool()
		return fmt.Sprint(b)
	case types.KindInt:
		i, _ := v.AsInt()
		if i < 0 {
			return fmt.Sprintf("%d", i)
		}
		return fmt.Sprintf("0x%X (%d)", i, i)
	case types.KindFloat:
		f, _ := v.AsFloat()
		return fmt.Sprint(f)
	case types.KindString:
		s, _ := v.AsString()
		return fmt.Sprintf("%q", s)
	case types.KindBytes:
		raw, _ := v.AsBytes()
		return p.bytesText(raw)
	}
	return "?"
}

// bytesText renders NUL-separated text blobs as <"a","b"> and anything else
// as hex, truncated to MaxValueBytes.
func (p *Printer) bytesText(data []byte) string {
	if strs, ok := types.DataText(data); ok {
		quoted := make([]string, len(strs))
		for i, s := range strs {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		return "<" + strings.Join(quoted, ",") + ">"
	}

	maxBytes := p.opts.MaxValueBytes
	if maxBytes <= 0 {
		maxBytes = len(data)
	}
	displayLen := min(len(data), maxBytes)
	truncated := ""
	if len(data) > maxBytes {
		truncated = fmt.Sprintf(" (truncated, %d total bytes)", len(data))
	}
	if displayLen == 0 {
		return "<empty>" + truncated
	}
	return fmt.Sprintf("<%X>%s", data[:displayLen], truncated)
}
