package shelf

// DefaultName is the fallback shelf for files without a plausible shelf folder.
const DefaultName = "Standard"

// IncomingName is the built-in shelf for freshly imported files.
const IncomingName = "Incoming"

// InvalidPathChars are rejected outright in shelf names. Shelf names become
// directory components, so these are the characters no mainstream filesystem
// accepts.
const InvalidPathChars = `<>:"|?*`

const (
	// MaxNameLength is the longest a name can be before the plausibility
	// heuristic flags it as album text.
	MaxNameLength = 30
	// MaxWordCount is the most words a plausible shelf name can have.
	MaxWordCount = 3
)

// albumIndicators are substrings that suggest a folder name is a release
// title rather than an organizational shelf.
var albumIndicators = []string{"Vol.", "Volume", "Disc", "CD", "Part"}
