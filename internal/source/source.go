package source

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// SourceProvider retrieves the content to embed.
type SourceProvider struct {
	stdin         io.Reader
	useClipboard  bool
	readClipboard func() (string, error)
	log           *zap.Logger
}

// New creates a SourceProvider reading from stdin, or from the system
// clipboard when useClipboard is set.
func New(stdin io.Reader, useClipboard bool, log *zap.Logger) *SourceProvider {
	return &SourceProvider{
		stdin:         stdin,
		useClipboard:  useClipboard,
		readClipboard: clipboard.ReadAll,
		log:           log,
	}
}

// GetContent reads the whole input.
func (sp *SourceProvider) GetContent() ([]byte, error) {
	if sp.useClipboard {
		sp.log.Debug("reading from clipboard")
		content, err := sp.readClipboard()
		if err != nil {
			return nil, fmt.Errorf("failed to read from clipboard: %w", err)
		}
		sp.log.Debug("read clipboard", zap.Int("bytes", len(content)))
		return []byte(content), nil
	}

	sp.log.Debug("reading from stdin")
	content, err := io.ReadAll(sp.stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}
	sp.log.Debug("read stdin", zap.Int("bytes", len(content)))
	return content, nil
}
