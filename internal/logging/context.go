package logging

const (
	// FieldComponent identifies the subsystem emitting a log line.
	FieldComponent = "component"
	// FieldEventType carries a stable machine-readable event name.
	FieldEventType = "event_type"
	// FieldErrorHint suggests the next step when something went wrong.
	FieldErrorHint = "error_hint"
	// FieldAlbumID tags log lines with the host-supplied release identifier.
	FieldAlbumID = "album_id"
	// FieldShelf tags log lines with a shelf name.
	FieldShelf = "shelf"
	// FieldPath tags log lines with the file path being classified.
	FieldPath = "path"
)
