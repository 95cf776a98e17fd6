// Package dvfs extracts dynamic voltage/frequency scaling tables from registry
// property dictionaries.
//
// Extract is the dictionary form: it pulls a sub-table out of a property
// mapping and guarantees a non-nil result. DecodeStates and Scan handle the
// packed "voltage-states*" blobs Apple Silicon publishes on its power manager
// node (for example "pmgr"), where each 8-byte record holds a little-endian
// uint32 frequency in Hz followed by a uint32 voltage in millivolts.
//
//	v, err := ioreg.Open("pmgr", ioreg.WithMatch(types.MatchName))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, tbl := range dvfs.Scan(v.Service()) {
//	    fmt.Println(tbl.Key, tbl.MaxFrequencyHz())
//	}
package dvfs
