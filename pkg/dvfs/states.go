package dvfs

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/osx-registryio/registryio/internal/buf"
	"github.com/osx-registryio/registryio/pkg/types"
)

// StatesPrefix is the property-name prefix of packed operating-point tables.
const StatesPrefix = "voltage-states"

const recordSize = 8

// ErrNotStates indicates a value is not a packed operating-point table.
var ErrNotStates = errors.New("dvfs: value is not a voltage-states table")

// OperatingPoint is one frequency/voltage pair.
type OperatingPoint struct {
	FrequencyHz uint64 `json:"frequency_hz"`
	VoltageMV   uint32 `json:"voltage_mv"`
}

// Table is a decoded operating-point table and the property it came from.
type Table struct {
	Key    string           `json:"key"`
	Points []OperatingPoint `json:"points"`
}

// MaxFrequencyHz returns the highest frequency in the table, or 0 if empty.
func (t Table) MaxFrequencyHz() uint64 {
	var hz uint64
	for _, p := range t.Points {
		hz = max(hz, p.FrequencyHz)
	}
	return hz
}

// MinFrequencyHz returns the lowest frequency in the table, or 0 if empty.
func (t Table) MinFrequencyHz() uint64 {
	var hz uint64
	for i, p := range t.Points {
		if i == 0 || p.FrequencyHz < hz {
			hz = p.FrequencyHz
		}
	}
	return hz
}

// DecodeStates decodes a packed voltage-states blob. Records with a zero
// frequency are padding and are skipped.
func DecodeStates(v types.Value) ([]OperatingPoint, error) {
	raw, ok := v.AsBytes()
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotStates, v.Kind())
	}
	recs, ok := buf.Records(raw, recordSize)
	if !ok {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrNotStates, len(raw), recordSize)
	}

	points := make([]OperatingPoint, 0, len(recs))
	for _, rec := range recs {
		hz := buf.U32LE(rec[:4])
		if hz == 0 {
			continue
		}
		points = append(points, OperatingPoint{
			FrequencyHz: uint64(hz),
			VoltageMV:   buf.U32LE(rec[4:]),
		})
	}
	return points, nil
}

// Scan decodes the tables named by keys, or every property whose name starts
// with StatesPrefix when keys is empty. Keys that are missing or do not decode
// are skipped. Tables are sorted by key.
func Scan(props types.Mapping, keys ...string) []Table {
	if len(keys) == 0 {
		for _, k := range props.Keys() {
			if strings.HasPrefix(k, StatesPrefix) {
				keys = append(keys, k)
			}
		}
	}

	tables := make([]Table, 0, len(keys))
	for _, k := range keys {
		v, ok := props[k]
		if !ok {
			continue
		}
		points, err := DecodeStates(v)
		if err != nil {
			continue
		}
		tables = append(tables, Table{Key: k, Points: points})
	}

	sort.Slice(tables, func(i, j int) bool {
		return tables[i].Key < tables[j].Key
	})
	return tables
}
