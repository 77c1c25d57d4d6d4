package service

import "errors"

var (
	ErrTranslationNotFound = errors.New("translation not found")
	ErrEmptyQuery          = errors.New("query can not be empty")
)
