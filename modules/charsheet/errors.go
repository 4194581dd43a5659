package charsheet

import "errors"

var (
	ErrSheetNotFound    = errors.New("charsheet: sheet not found")
	ErrUnknownLayout    = errors.New("charsheet: unknown layout")
	ErrUnknownClass     = errors.New("charsheet: unknown class")
	ErrUnknownDirectory = errors.New("charsheet: unknown email directory driver")
	ErrUnknownTrigger   = errors.New("charsheet: unknown lookup trigger")
	ErrUnknownCommand   = errors.New("charsheet: unknown command")
	ErrDirectory        = errors.New("charsheet: email directory lookup failed")
)
