package cli

import (
	"strconv"
	"strings"

	"exporttocsv/dbexport"
)

// Options is the fully resolved command line of an export.
type Options struct {
	Export          dbexport.ExportConfig
	Connection      ConnectionOptions
	PauseBeforeExit bool
}

// ConnectionOptions holds the connection flags. Empty values fall back to
// the environment.
type ConnectionOptions struct {
	ConfigPath string
	Driver     string
	DSN        string
	Server     string
	Port       string
	User       string
	Password   string
}

// flagDef declares one flag. names are given without the leading dash; the
// first one is shown in usage. set parses the value and stores it.
type flagDef struct {
	names      []string
	takesValue bool
	set        func(o *Options, value string) error
}

var flagTable = []flagDef{
	{names: []string{"help", "h"}, set: func(*Options, string) error { return ErrHelp }},
	{names: []string{"noheadings", "no-headings"}, set: func(o *Options, _ string) error {
		o.Export.IncludeHeadings = false
		return nil
	}},
	{names: []string{"showprogress", "show-progress"}, set: func(o *Options, _ string) error {
		o.Export.ShowProgress = true
		return nil
	}},
	{names: []string{"tabdelimiter", "tab-delimiter"}, set: func(o *Options, _ string) error {
		o.Export.TabDelimiter = true
		return nil
	}},
	{names: []string{"writeschemafile", "write-schema-file"}, set: func(o *Options, _ string) error {
		o.Export.WriteSchemaFile = true
		return nil
	}},
	{names: []string{"blockingfactor", "blocking-factor"}, takesValue: true, set: func(o *Options, v string) error {
		n, err := parseCount(v)
		if err != nil {
			return err
		}
		o.Export.BlockingFactor = n
		return nil
	}},
	{names: []string{"pause", "pause-before-exit"}, set: func(o *Options, _ string) error {
		o.PauseBeforeExit = true
		return nil
	}},
	{names: []string{"config"}, takesValue: true, set: func(o *Options, v string) error {
		o.Connection.ConfigPath = v
		return nil
	}},
	{names: []string{"driver"}, takesValue: true, set: func(o *Options, v string) error {
		o.Connection.Driver = v
		return nil
	}},
	{names: []string{"dsn"}, takesValue: true, set: func(o *Options, v string) error {
		o.Connection.DSN = v
		return nil
	}},
	{names: []string{"server"}, takesValue: true, set: func(o *Options, v string) error {
		o.Connection.Server = v
		return nil
	}},
	{names: []string{"port"}, takesValue: true, set: func(o *Options, v string) error {
		if _, err := parseCount(v); err != nil {
			return err
		}
		o.Connection.Port = v
		return nil
	}},
	{names: []string{"user"}, takesValue: true, set: func(o *Options, v string) error {
		o.Connection.User = v
		return nil
	}},
	{names: []string{"password"}, takesValue: true, set: func(o *Options, v string) error {
		o.Connection.Password = v
		return nil
	}},
}

var flagsByName = indexFlags(flagTable)

func indexFlags(defs []flagDef) map[string]*flagDef {
	m := make(map[string]*flagDef)
	for i := range defs {
		for _, name := range defs[i].names {
			m[name] = &defs[i]
		}
	}
	return m
}

// lookupFlag finds the flag for a token such as "-noheadings",
// "--no-headings" or "--blocking-factor=700". Flag names are not case
// sensitive.
func lookupFlag(token string) (def *flagDef, value string, hasValue bool) {
	name := strings.TrimLeft(token, "-")
	if i := strings.IndexByte(name, '='); i >= 0 {
		name, value, hasValue = name[:i], name[i+1:], true
	}
	return flagsByName[strings.ToLower(name)], value, hasValue
}

func isFlagToken(token string) bool {
	return len(token) > 1 && token[0] == '-'
}

func isHelpToken(token string) bool {
	if !isFlagToken(token) {
		return false
	}
	def, _, _ := lookupFlag(token)
	return def != nil && def.names[0] == "help"
}

// parseCount accepts a string of digits with a value greater than zero.
func parseCount(value string) (int, error) {
	if value == "" || strings.IndexFunc(value, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, ErrNotANumber
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, ErrNotANumber
	}
	if n <= 0 {
		return 0, ErrNotPositive
	}
	return n, nil
}
