package collection

import "errors"

var (
	ErrStackFull  = errors.New("stack is full")
	ErrStackEmpty = errors.New("stack is empty")
)
