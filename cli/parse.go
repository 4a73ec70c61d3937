package cli

import (
	"os"
	"strings"

	"github.com/adrg/xdg"

	"exporttocsv/dbexport"
)

// defaultOutputDirectory is used when no output path argument is given.
var defaultOutputDirectory = func() string {
	return xdg.UserDirs.Documents
}

var requiredArguments = []string{"<databaseName>", "<library>", "<file>"}

// Resolve validates the command line of an export and returns its options.
// Positional arguments are the database, library and file names followed by
// an optional output directory; flags may appear anywhere.
//
// Resolve opens no files. It returns ErrHelp when help was requested and an
// *ArgumentError for anything it rejects.
func Resolve(args []string) (*Options, error) {
	for _, arg := range args {
		if isHelpToken(arg) {
			return nil, ErrHelp
		}
	}

	opts := &Options{Export: dbexport.NewExportConfig()}
	var positional []string
	for i := 0; i < len(args); i++ {
		token := args[i]
		if !isFlagToken(token) {
			positional = append(positional, token)
			continue
		}
		def, value, hasValue := lookupFlag(token)
		if def == nil {
			return nil, &ArgumentError{Arg: token, Err: ErrUnknownFlag}
		}
		switch {
		case def.takesValue && hasValue && strings.TrimSpace(value) == "":
			return nil, &ArgumentError{Arg: strings.SplitN(token, "=", 2)[0], Err: ErrValueNotProvided}
		case def.takesValue && !hasValue:
			if i+1 >= len(args) || isFlagToken(args[i+1]) {
				return nil, &ArgumentError{Arg: token, Err: ErrValueNotProvided}
			}
			i++
			value = args[i]
		case !def.takesValue && hasValue:
			return nil, &ArgumentError{Arg: token, Err: ErrUnexpectedValue}
		}
		if err := def.set(opts, value); err != nil {
			return nil, &ArgumentError{Arg: token, Err: err}
		}
	}

	for i, name := range requiredArguments {
		if i >= len(positional) || strings.TrimSpace(positional[i]) == "" {
			return nil, &ArgumentError{Arg: name, Err: ErrMissingArgument}
		}
	}
	if len(positional) > len(requiredArguments)+1 {
		return nil, &ArgumentError{Arg: positional[len(requiredArguments)+1], Err: ErrUnexpectedArgument}
	}
	opts.Export.DatabaseName = positional[0]
	opts.Export.LibraryName = positional[1]
	opts.Export.FileName = positional[2]

	if len(positional) > len(requiredArguments) {
		dir := trimTrailingSeparator(positional[len(requiredArguments)])
		if !isDir(dir) {
			return nil, &ArgumentError{Arg: dir, Err: ErrOutputDirNotFound}
		}
		opts.Export.OutputDirectory = dir
	} else {
		opts.Export.OutputDirectory = defaultOutputDirectory()
	}
	return opts, nil
}

func trimTrailingSeparator(path string) string {
	if len(path) > 1 && (strings.HasSuffix(path, "/") || strings.HasSuffix(path, `\`)) {
		return path[:len(path)-1]
	}
	return path
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
