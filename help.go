package main

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"braces.dev/errtrace"
)

// Help is the -h/-help flag.
// "-h" prints the default help and "-h=TOPIC" prints help on TOPIC.
type Help string

// Help topics that other code refers to.
const (
	NoHelp      Help = ""
	DefaultHelp Help = "default"
	UsageHelp   Help = "usage"
)

var (
	//go:embed help/default.txt
	_defaultHelp string

	//go:embed help/commands.txt
	_commandsHelp string

	//go:embed help/config.txt
	_configHelp string

	//go:embed help/rules.txt
	_rulesHelp string

	_usageHelp = firstLineOf(_defaultHelp)

	_helpTopics = map[Help]string{
		"commands": _commandsHelp,
		"config":   _configHelp,
		"default":  _defaultHelp,
		"rules":    _rulesHelp,
		"usage":    _usageHelp,
	}
)

func firstLineOf(s string) string {
	if line, _, ok := strings.Cut(s, "\n"); ok {
		return line + "\n"
	}
	return s
}

// Write prints the help text for this topic.
// Unknown topics are an error that lists the known ones.
func (h Help) Write(w io.Writer) error {
	if h == NoHelp {
		return nil
	}

	doc, ok := _helpTopics[h]
	if !ok {
		topics := slices.Sorted(maps.Keys(_helpTopics))
		return fmt.Errorf("unknown help topic %q: valid values are %q", string(h), topics)
	}

	_, err := io.WriteString(w, doc)
	return errtrace.Wrap(err)
}

var _ flag.Getter = (*Help)(nil)

// Get returns the value of the Help.
// This is to comply with the [flag.Getter] interface.
func (h *Help) Get() any {
	return *h
}

// IsBoolFlag marks this as a boolean flag
// which allows it to be used without an argument.
func (*Help) IsBoolFlag() bool {
	return true
}

// String returns the name of this topic.
func (h Help) String() string {
	return string(h)
}

// Set receives a command line value.
func (h *Help) Set(s string) error {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "true":
		s = string(DefaultHelp)
	case "false":
		s = string(NoHelp)
	}
	*h = Help(s)
	return nil
}
