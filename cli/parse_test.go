package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withDefaultOutputDirectory(t *testing.T, dir string) {
	t.Helper()
	orig := defaultOutputDirectory
	defaultOutputDirectory = func() string { return dir }
	t.Cleanup(func() { defaultOutputDirectory = orig })
}

func TestResolve_Defaults(t *testing.T) {
	withDefaultOutputDirectory(t, "/home/test/Documents")
	opts, err := Resolve([]string{"*PUBLIC/DG Net Local", "examples", "cmastnew"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := opts.Export
	if cfg.DatabaseName != "*PUBLIC/DG Net Local" || cfg.LibraryName != "examples" || cfg.FileName != "cmastnew" {
		t.Errorf("unexpected names: %+v", cfg)
	}
	if cfg.OutputDirectory != "/home/test/Documents" {
		t.Errorf("OutputDirectory = %q, want default", cfg.OutputDirectory)
	}
	if cfg.BlockingFactor != 500 {
		t.Errorf("BlockingFactor = %d, want 500", cfg.BlockingFactor)
	}
	if !cfg.IncludeHeadings || cfg.ShowProgress || cfg.TabDelimiter || cfg.WriteSchemaFile || opts.PauseBeforeExit {
		t.Errorf("unexpected flag defaults: %+v", opts)
	}
}

func TestResolve_AllFlags(t *testing.T) {
	dir := t.TempDir()
	opts, err := Resolve([]string{
		"db", "lib", "file", dir,
		"-noheadings", "--show-progress", "-tabdelimiter", "--write-schema-file",
		"-blockingfactor", "750", "-pause", "--driver=sqlite3", "--dsn", "x.db",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := opts.Export
	if cfg.IncludeHeadings || !cfg.ShowProgress || !cfg.TabDelimiter || !cfg.WriteSchemaFile {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.BlockingFactor != 750 {
		t.Errorf("BlockingFactor = %d, want 750", cfg.BlockingFactor)
	}
	if !opts.PauseBeforeExit {
		t.Error("PauseBeforeExit not set")
	}
	if opts.Connection.Driver != "sqlite3" || opts.Connection.DSN != "x.db" {
		t.Errorf("connection flags not applied: %+v", opts.Connection)
	}
	if cfg.OutputDirectory != dir {
		t.Errorf("OutputDirectory = %q, want %q", cfg.OutputDirectory, dir)
	}
}

func TestResolve_FlagsBeforePositionals(t *testing.T) {
	withDefaultOutputDirectory(t, t.TempDir())
	opts, err := Resolve([]string{"--blocking-factor=900", "-showprogress", "db", "lib", "file"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Export.BlockingFactor != 900 || !opts.Export.ShowProgress || opts.Export.FileName != "file" {
		t.Errorf("unexpected options: %+v", opts.Export)
	}
}

func TestResolve_Help(t *testing.T) {
	for _, args := range [][]string{
		{"-help"},
		{"--help"},
		{"-h"},
		{"db", "lib", "file", "-help"},
		{"-blockingfactor", "abc", "--HELP"},
	} {
		if _, err := Resolve(args); !errors.Is(err, ErrHelp) {
			t.Errorf("Resolve(%q) = %v, want ErrHelp", args, err)
		}
	}
}

func TestResolve_MissingRequired(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"db"},
		{"db", "lib"},
		{"db", "lib", "  "},
		{"db", "lib", "-showprogress"},
	} {
		_, err := Resolve(args)
		if !errors.Is(err, ErrMissingArgument) {
			t.Errorf("Resolve(%q) = %v, want ErrMissingArgument", args, err)
		}
	}
}

func TestResolve_ValueNotProvided(t *testing.T) {
	withDefaultOutputDirectory(t, t.TempDir())
	for _, args := range [][]string{
		{"db", "lib", "file", "-blockingfactor"},
		{"db", "lib", "file", "-blockingfactor", "-showprogress"},
		{"db", "lib", "file", "--driver"},
		{"db", "lib", "file", "-blockingfactor="},
		{"db", "lib", "file", "--blocking-factor=  "},
		{"db", "lib", "file", "--dsn="},
	} {
		_, err := Resolve(args)
		if !errors.Is(err, ErrValueNotProvided) {
			t.Errorf("Resolve(%q) = %v, want ErrValueNotProvided", args, err)
			continue
		}
		if !strings.HasPrefix(err.Error(), "value not provided for -") {
			t.Errorf("unexpected message %q", err.Error())
		}
	}
}

func TestResolve_BlockingFactorValidation(t *testing.T) {
	withDefaultOutputDirectory(t, t.TempDir())
	tests := []struct {
		value string
		want  error
	}{
		{"abc", ErrNotANumber},
		{"12x", ErrNotANumber},
		{"1.5", ErrNotANumber},
		{"99999999999999999999999", ErrNotANumber},
		{"0", ErrNotPositive},
	}
	for _, tt := range tests {
		_, err := Resolve([]string{"db", "lib", "file", "-blockingfactor", tt.value})
		if !errors.Is(err, tt.want) {
			t.Errorf("blockingfactor %q: got %v, want %v", tt.value, err, tt.want)
		}
		var argErr *ArgumentError
		if !errors.As(err, &argErr) || argErr.Arg != "-blockingfactor" {
			t.Errorf("blockingfactor %q: expected ArgumentError for -blockingfactor, got %#v", tt.value, err)
		}
	}
}

func TestResolve_OutputDirectory(t *testing.T) {
	dir := t.TempDir()
	opts, err := Resolve([]string{"db", "lib", "file", dir + string(filepath.Separator)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Export.OutputDirectory != dir {
		t.Errorf("OutputDirectory = %q, want %q", opts.Export.OutputDirectory, dir)
	}

	missing := filepath.Join(dir, "nope")
	_, err = Resolve([]string{"db", "lib", "file", missing})
	if !errors.Is(err, ErrOutputDirNotFound) {
		t.Errorf("expected ErrOutputDirNotFound, got %v", err)
	}
	if _, statErr := os.Stat(missing); !os.IsNotExist(statErr) {
		t.Errorf("Resolve must not create the directory")
	}

	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve([]string{"db", "lib", "file", file}); !errors.Is(err, ErrOutputDirNotFound) {
		t.Errorf("a regular file is not an output directory, got %v", err)
	}
}

func TestResolve_UnknownFlagAndExtraArguments(t *testing.T) {
	withDefaultOutputDirectory(t, t.TempDir())
	if _, err := Resolve([]string{"db", "lib", "file", "-bogus"}); !errors.Is(err, ErrUnknownFlag) {
		t.Errorf("expected ErrUnknownFlag, got %v", err)
	}
	dir := t.TempDir()
	if _, err := Resolve([]string{"db", "lib", "file", dir, "extra"}); !errors.Is(err, ErrUnexpectedArgument) {
		t.Errorf("expected ErrUnexpectedArgument, got %v", err)
	}
	if _, err := Resolve([]string{"db", "lib", "file", "-noheadings=yes"}); !errors.Is(err, ErrUnexpectedValue) {
		t.Errorf("expected ErrUnexpectedValue, got %v", err)
	}
}

func TestResolve_RootLibrary(t *testing.T) {
	withDefaultOutputDirectory(t, t.TempDir())
	opts, err := Resolve([]string{"db", "/", "file"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Export.LibraryName != "/" {
		t.Errorf("LibraryName = %q, want /", opts.Export.LibraryName)
	}
}

func TestArgumentError_Message(t *testing.T) {
	tests := []struct {
		err  *ArgumentError
		want string
	}{
		{&ArgumentError{Arg: "-blockingfactor", Err: ErrValueNotProvided}, "value not provided for -blockingfactor"},
		{&ArgumentError{Arg: "-blockingfactor", Err: ErrNotANumber}, "value must be a number: -blockingfactor"},
		{&ArgumentError{Arg: "<file>", Err: ErrMissingArgument}, "missing required argument: <file>"},
		{&ArgumentError{Arg: "/tmp/x", Err: ErrOutputDirNotFound}, "output directory not found: /tmp/x"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestResolve_EmptyInlineValueNamesFlag(t *testing.T) {
	withDefaultOutputDirectory(t, t.TempDir())
	_, err := Resolve([]string{"db", "lib", "file", "-blockingfactor="})
	if err == nil || err.Error() != "value not provided for -blockingfactor" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestResolve_OutputDirectoryAfterFlags(t *testing.T) {
	dir := t.TempDir()
	opts, err := Resolve([]string{"db", "lib", "file", "-showprogress", dir, "-tabdelimiter"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Export.OutputDirectory != dir || !opts.Export.ShowProgress || !opts.Export.TabDelimiter {
		t.Errorf("unexpected options: %+v", opts.Export)
	}
}
