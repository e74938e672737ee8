// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color" //nolint:misspell
)

// Level is the level of the logger.
type Level uint8

const (
	// Trace is the trce level.
	Trace Level = iota
	// Debug is the dbug level.
	Debug
	// Info is the info level.
	Info
	// Warn is the warn level.
	Warn
	// Error is the eror level.
	Error
	// Critical is the crit level.
	Critical
	// DoNotChange leaves the level of the logger as is.
	DoNotChange Level = Level(^uint8(0))
)

type levelFormat struct {
	code     string
	longName string
	colour   color.Attribute
}

var levelFormats = map[Level]levelFormat{
	Trace:    {code: "TRCE", longName: "TRACE", colour: color.FgHiCyan},
	Debug:    {code: "DBUG", longName: "DEBUG", colour: color.FgHiBlue},
	Info:     {code: "INFO", longName: "INFO", colour: color.FgCyan},
	Warn:     {code: "WARN", longName: "WARNING", colour: color.FgYellow},
	Error:    {code: "EROR", longName: "ERROR", colour: color.FgHiRed},
	Critical: {code: "CRIT", longName: "CRITICAL", colour: color.FgRed},
}

// String returns the four letter code of the level.
func (level Level) String() string {
	format, ok := levelFormats[level]
	if !ok {
		return "???"
	}
	return format.code
}

// ColouredString returns the four letter code of the level,
// coloured for terminals.
func (level Level) ColouredString() string {
	format, ok := levelFormats[level]
	if !ok {
		return color.New(color.Reset).Sprint(level.String())
	}
	return color.New(format.colour).Sprint(format.code)
}

// ErrLevelNotRecognised is returned by ParseLevel for an unknown level.
var ErrLevelNotRecognised = errors.New("level is not recognised")

// ParseLevel parses a level from its four letter code (trce, dbug,
// info, warn, eror, crit) or its long name, ignoring case.
func ParseLevel(s string) (level Level, err error) {
	upper := strings.ToUpper(s)
	for level, format := range levelFormats {
		if upper == format.code || upper == format.longName {
			return level, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrLevelNotRecognised, s)
}
