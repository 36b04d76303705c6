package save

import (
	"bytes"
	"os"

	goccy "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// maxImportSize bounds how much of a file Import will read
const maxImportSize = 1 << 20

// Export writes blob to path as indented JSON
func Export(path string, blob []byte) error {
	var buf bytes.Buffer
	if err := goccy.Indent(&buf, blob, "", "  "); err != nil {
		return errors.Wrapf(ErrInvalidFormat, "%v", err)
	}
	buf.WriteByte('\n')
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "export to %s", path)
	}
	return nil
}

// Import reads a blob written by Export. The content is only checked to be
// JSON; Decode validates it against a layout.
func Import(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "import %s", path)
	}
	if info.Size() > maxImportSize {
		return nil, errors.Wrapf(ErrInvalidFormat, "%s is %d bytes", path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "import %s", path)
	}
	data = bytes.TrimSpace(data)
	if !goccy.Valid(data) {
		return nil, errors.Wrapf(ErrInvalidFormat, "%s is not JSON", path)
	}
	var buf bytes.Buffer
	if err := goccy.Compact(&buf, data); err != nil {
		return nil, errors.Wrapf(ErrInvalidFormat, "%v", err)
	}
	return buf.Bytes(), nil
}
