package prefabs

import "gopkg.in/yaml.v3"

// DecodeParams re-decodes a loosely typed params block into T.
func DecodeParams[T any](raw map[string]any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}
