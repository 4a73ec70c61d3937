package dbexport

import (
	"io"
	"os"
)

var createFile = func(name string) (io.WriteCloser, error) {
	return os.Create(name)
}
