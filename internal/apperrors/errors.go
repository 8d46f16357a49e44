package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRateLookup indicates that exchange rates could not be retrieved or a currency
// code is missing from the rate table. It is never retried internally.
var ErrRateLookup = errors.New("rate lookup failed")

// ErrMalformedLiteral indicates that a matched numeric literal could not be parsed.
// The conversion engine skips the offending match instead of aborting the scan.
var ErrMalformedLiteral = errors.New("malformed numeric literal")
