package lifecycle

// HasMetadata is implemented by host objects carrying a writable tag map
// (tracks, albums, clusters).
type HasMetadata interface {
	Metadata() map[string]string
}

// HasChildFiles is implemented by host objects containing files (albums,
// clusters); children expose their own metadata.
type HasChildFiles interface {
	ChildFiles() []HasMetadata
}

// SetShelfRecursive writes shelfName into obj's metadata and into every child
// file's metadata, for host objects implementing either capability. Returns
// the number of metadata maps touched.
func SetShelfRecursive(obj any, shelfName string) int {
	touched := 0

	if m, ok := obj.(HasMetadata); ok {
		if metadata := m.Metadata(); metadata != nil {
			metadata[TagKey] = shelfName
			touched++
		}
	}

	if container, ok := obj.(HasChildFiles); ok {
		for _, child := range container.ChildFiles() {
			if child == nil {
				continue
			}
			if metadata := child.Metadata(); metadata != nil {
				metadata[TagKey] = shelfName
				touched++
			}
		}
	}

	return touched
}
