package document

// Keys enumerates dotted field paths of the document up to depth levels.
//
// Introspection starts at the first element when the root is a non-empty
// array, otherwise at the root. Object fields are descended while depth
// remains; a path is emitted when depth is exhausted, when a non-object
// value is reached, or when an object has no fields. A negative depth walks
// the whole tree. Paths are returned in traversal order.
func (v Value) Keys(depth int) []string {
	start := v
	if v.kind == KindArray && len(v.items) > 0 {
		start = v.items[0]
	}
	return collectKeys(start, depth, "", nil)
}

func collectKeys(node Value, depth int, path string, keys []string) []string {
	if depth == 0 || node.kind != KindObject || len(node.fields) == 0 {
		if path != "" {
			keys = append(keys, path)
		}
		return keys
	}

	for _, f := range node.fields {
		next := f.Key
		if path != "" {
			next = path + "." + f.Key
		}
		keys = collectKeys(f.Value, depth-1, next, keys)
	}
	return keys
}
