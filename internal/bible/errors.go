package bible

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCustomTranslationFile = errors.New("the specified custom translation file is invalid or does not exist")
	ErrIO                           = errors.New("an I/O error occurred")
	ErrBookNotFound                 = errors.New("the specified book was not found in the translation")
	ErrChapterNotFound              = errors.New("the specified chapter was not found in the translation")
	ErrVerseNotFound                = errors.New("the specified verse was not found in the translation")
	ErrInvalidVerseFormat           = errors.New("the verse format provided is invalid")
)

// ParseError reports the first malformed line of a corpus. Line is 1-based.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

func (e *ParseError) Unwrap() error { return ErrInvalidVerseFormat }

// IOError wraps err so that it matches both ErrIO and err.
func IOError(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}
