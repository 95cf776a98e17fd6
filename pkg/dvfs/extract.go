package dvfs

import "github.com/osx-registryio/registryio/pkg/types"

// Extract returns the mapping stored under key in props. It returns an empty,
// non-nil mapping when props is nil, key is empty, key is absent, or the value
// is not a non-empty mapping. The mapping found is returned as is.
func Extract(props types.Mapping, key string) types.Mapping {
	if props == nil || key == "" {
		return types.Mapping{}
	}
	m, ok := props[key].AsMapping()
	if !ok || len(m) == 0 {
		return types.Mapping{}
	}
	return m
}
