package ir

import "errors"

var (
	ErrParse              = errors.New("parse error")
	ErrUnsupportedFeature = errors.New("unsupported feature")
)
