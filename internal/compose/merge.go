package compose

import "reflect"

// Fragment is one slice of lint configuration: env flags, parser selection,
// rule severities, extends lists and so on. Values are strings, bools,
// numbers, nested Fragments (or map[string]any), []any and []string. Other
// string-keyed maps and other slices are accepted and come out of Merge and
// Clone as map[string]any and []any.
type Fragment = map[string]any

// Merge returns a new fragment with override layered over base.
//
// Keys present on both sides merge recursively when both values are
// mappings and concatenate when both are sequences. Any other collision,
// including a shape mismatch, resolves to the override value. Neither input
// is modified and the result shares no maps or slices with them.
func Merge(base, override Fragment) Fragment {
	out := make(Fragment, len(base)+len(override))
	for k, v := range base {
		out[k] = cloneValue(v)
	}
	for k, ov := range override {
		bv, ok := out[k]
		if !ok {
			out[k] = cloneValue(ov)
			continue
		}
		out[k] = mergeValue(bv, ov)
	}
	return out
}

// mergeValue resolves a key present on both sides. bv is already a private
// copy owned by the result, so typed maps and slices in it have been
// normalized by cloneValue.
func mergeValue(bv, ov any) any {
	if bm, ok := bv.(map[string]any); ok {
		if om, ok := asMapping(ov); ok {
			return Merge(bm, om)
		}
		return cloneValue(ov)
	}

	if bs, ok := bv.([]string); ok {
		if ostr, ok := ov.([]string); ok {
			joined := make([]string, 0, len(bs)+len(ostr))
			joined = append(joined, bs...)
			return append(joined, ostr...)
		}
	}

	bseq, bok := asSequence(bv)
	oseq, ook := asSequence(ov)
	if bok && ook {
		joined := make([]any, 0, len(bseq)+len(oseq))
		joined = append(joined, bseq...)
		for _, v := range oseq {
			joined = append(joined, cloneValue(v))
		}
		return joined
	}

	return cloneValue(ov)
}

// asMapping views any string-keyed map as map[string]any. The returned map
// may be the input itself; callers copy before retaining.
func asMapping(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// asSequence views any slice uniformly. The returned slice may be the input
// itself; callers copy before retaining. []byte is a scalar.
func asSequence(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, str := range s {
			out[i] = str
		}
		return out, true
	case []byte, nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// Clone returns a deep copy of f. A nil fragment clones to an empty one.
func Clone(f Fragment) Fragment {
	out := make(Fragment, len(f))
	for k, v := range f {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return Clone(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out
	case []byte:
		out := make([]byte, len(t))
		copy(out, t)
		return out
	}
	// Other string-keyed maps and slices come back as map[string]any and
	// []any so later merges see one shape.
	if m, ok := asMapping(v); ok {
		return Clone(m)
	}
	if seq, ok := asSequence(v); ok {
		out := make([]any, len(seq))
		for i, item := range seq {
			out[i] = cloneValue(item)
		}
		return out
	}
	return v
}
