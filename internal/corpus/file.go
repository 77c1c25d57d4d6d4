package corpus

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"shuvoedward/Bible_lookup/internal/bible"
)

// The decoder is safe for concurrent use and expensive to build.
var zstdDecoder, _ = zstd.NewReader(nil)

var errNotUTF8 = errors.New("translation is not valid UTF-8")

func readFile(name string) (string, error) {
	if _, err := os.Stat(name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", bible.ErrInvalidCustomTranslationFile, name)
		}
		return "", bible.IOError(err)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return "", bible.IOError(err)
	}

	return decodeText(name, data)
}

// decodeText decompresses data according to the extension of name and
// checks that the result is UTF-8.
func decodeText(name string, data []byte) (string, error) {
	var err error

	switch strings.ToLower(path.Ext(name)) {
	case ".zst":
		data, err = zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return "", bible.IOError(fmt.Errorf("zstd: %w", err))
		}
	case ".xz":
		r, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return "", bible.IOError(fmt.Errorf("xz: %w", err))
		}
		data, err = io.ReadAll(r)
		if err != nil {
			return "", bible.IOError(fmt.Errorf("xz: %w", err))
		}
	}

	if !utf8.Valid(data) {
		return "", bible.IOError(errNotUTF8)
	}
	return string(data), nil
}
