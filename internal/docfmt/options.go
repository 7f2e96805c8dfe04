package docfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures human-readable output.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowSpans bool // печатать байтовые диапазоны блоков
}

// JSONOpts configures JSON output.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	PathMode         PathMode
}
