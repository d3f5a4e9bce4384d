// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package header

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Bhanditz/falcon/httperr"
)

// ByteRange is a single byte range requested by the client. Last is -1 when
// the range runs to the end of the resource. A negative First with Last == -1
// requests the final -First bytes.
type ByteRange struct {
	First int64
	Last  int64
}

// IsSuffix reports whether r requests the trailing bytes of the resource.
func (r ByteRange) IsSuffix() bool {
	return r.First < 0
}

// Slice returns r as a two-element slice, the shape exposed to rule
// expressions.
func (r ByteRange) Slice() []int64 {
	return []int64{r.First, r.Last}
}

const rangeDetail = "The Range header must be in one of the forms \"first-\", \"first-last\" or \"-suffix\"."

var (
	errNoDigits = errors.New("empty token")
	errNotDigit = errors.New("non-digit in token")
)

// ParseRange parses a single byte range. The accepted shapes are
//
//	"<first>-"        -> {first, -1}
//	"<first>-<last>"  -> {first, last}
//	"-<suffix>"       -> {-suffix, -1}
//
// where every token is one or more ASCII digits and suffix is positive.
// Anything else, including multiple comma-separated ranges, is rejected.
// An empty value is absent.
func ParseRange(value string) (ByteRange, bool, error) {
	if value == "" {
		return ByteRange{}, false, nil
	}

	r, err := parseRange(value)
	if err != nil {
		return ByteRange{}, false, httperr.InvalidHeader(Range, value, rangeDetail)
	}
	return r, true, nil
}

func parseRange(value string) (ByteRange, error) {
	if strings.ContainsRune(value, ',') {
		return ByteRange{}, errors.New("multiple ranges are not supported")
	}

	before, after, found := strings.Cut(value, "-")
	if !found {
		return ByteRange{}, errors.New("missing separator")
	}

	if before == "" {
		suffix, err := parseToken(after)
		if err != nil {
			return ByteRange{}, err
		}
		if suffix == 0 {
			return ByteRange{}, errors.New("suffix length must be positive")
		}
		return ByteRange{First: -suffix, Last: -1}, nil
	}

	first, err := parseToken(before)
	if err != nil {
		return ByteRange{}, err
	}
	if after == "" {
		return ByteRange{First: first, Last: -1}, nil
	}

	last, err := parseToken(after)
	if err != nil {
		return ByteRange{}, err
	}
	return ByteRange{First: first, Last: last}, nil
}

// parseToken accepts ASCII digits only. strconv alone would admit a sign.
func parseToken(tok string) (int64, error) {
	if tok == "" {
		return 0, errNoDigits
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, errNotDigit
		}
	}
	return strconv.ParseInt(tok, 10, 64)
}
