// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

// Format is the format of the log lines.
type Format uint8

const (
	// FormatConsole prints the level coloured for terminals.
	FormatConsole Format = iota
	// FormatPlain prints the level without colours.
	FormatPlain
)

type contextKeyValues struct {
	key    string
	values []string
}

type settings struct {
	writer  io.Writer
	level   *Level
	format  *Format
	caller  *bool
	context []contextKeyValues
}

func newSettings(options []Option) (s settings) {
	for _, option := range options {
		option(&s)
	}
	return s
}

// mergeWith sets values of other on s where they are not already set.
func (s *settings) mergeWith(other settings) {
	if s.writer == nil {
		s.writer = other.writer
	}

	if s.level == nil && other.level != nil {
		value := *other.level
		s.level = &value
	}

	if s.format == nil && other.format != nil {
		value := *other.format
		s.format = &value
	}

	if s.caller == nil && other.caller != nil {
		value := *other.caller
		s.caller = &value
	}

	// parent context goes first
	context := make([]contextKeyValues, 0, len(other.context)+len(s.context))
	for _, kv := range other.context {
		context = append(context, contextKeyValues{
			key:    kv.key,
			values: append([]string(nil), kv.values...),
		})
	}
	for _, kv := range s.context {
		merged := false
		for i := range context {
			if context[i].key == kv.key {
				context[i].values = append(context[i].values, kv.values...)
				merged = true
				break
			}
		}
		if !merged {
			context = append(context, kv)
		}
	}
	if len(context) > 0 {
		s.context = context
	}
}

// overrideWith sets all values set in other on s.
func (s *settings) overrideWith(other settings) {
	if other.writer != nil {
		s.writer = other.writer
	}
	if other.level != nil {
		value := *other.level
		s.level = &value
	}
	if other.format != nil {
		value := *other.format
		s.format = &value
	}
	if other.caller != nil {
		value := *other.caller
		s.caller = &value
	}
	for _, kv := range other.context {
		for _, value := range kv.values {
			AddContext(kv.key, value)(s)
		}
	}
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	if s.level == nil {
		value := Info
		s.level = &value
	}

	if s.format == nil {
		value := FormatConsole
		s.format = &value
	}

	if s.caller == nil {
		value := false
		s.caller = &value
	}
}
