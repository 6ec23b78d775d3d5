package archive

import (
	"io"

	"depnav/internal/logging"
	"depnav/internal/workspace"
)

// ReadContent returns the UTF-8 text behind a file entry, or the empty
// string when the stream yields no data. Missing or unreadable archive
// content is a common, non-fatal condition for a tree browser, so I/O
// failures are logged and degraded to empty content, never propagated.
// The stream is released on every exit path.
func ReadContent(file workspace.Entry, logger *logging.Logger) string {
	stream, err := file.Open()
	if err != nil {
		logger.Warn("Can't open archive entry", map[string]any{
			"path":  file.Path(),
			"error": err.Error(),
		})
		return ""
	}
	defer func() { _ = stream.Close() }()

	data, err := io.ReadAll(stream)
	if err != nil {
		logger.Warn("Can't read archive entry content", map[string]any{
			"path":  file.Path(),
			"error": err.Error(),
		})
		return ""
	}
	return string(data)
}
