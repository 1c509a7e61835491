package audio

import (
	"fmt"
	"os"

	"github.com/dhowden/tag"
)

// OutputInfo is what the tag reader recognised in a written file
type OutputInfo struct {
	FileType tag.FileType
	Format   tag.Format
}

// IsMP3 reports whether the file was identified as MP3
func (o *OutputInfo) IsMP3() bool {
	return o.FileType == tag.MP3
}

// String renders the info as "MP3 (ID3v2.4)"
func (o *OutputInfo) String() string {
	if o.Format == "" {
		return string(o.FileType)
	}
	return fmt.Sprintf("%s (%s)", o.FileType, o.Format)
}

// IdentifyOutput inspects the metadata container of the file at path.
// Files written without any tag block yield tag.ErrNoTagsFound.
func IdentifyOutput(path string) (*OutputInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	format, fileType, err := tag.Identify(f)
	if err != nil {
		return nil, fmt.Errorf("failed to identify %s: %w", path, err)
	}
	return &OutputInfo{FileType: fileType, Format: format}, nil
}

// Inspector adapts IdentifyOutput for the conversion driver
type Inspector struct{}

// Inspect returns a short description of the written file
func (Inspector) Inspect(path string) (string, error) {
	info, err := IdentifyOutput(path)
	if err != nil {
		return "", err
	}
	return info.String(), nil
}
