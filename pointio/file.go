package pointio

import (
	"bufio"
	"context"
	"io"
	"io/ioutil"
	"os"
)

// FileSource reads a local text file. The name "-" reads standard input
type FileSource struct {
	Name string
}

type bufferedFile struct {
	*bufio.Reader
	io.Closer
}

func (s FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	if s.Name == "-" {
		return ioutil.NopCloser(bufio.NewReader(os.Stdin)), nil
	}
	f, err := os.Open(s.Name)
	if err != nil {
		return nil, err
	}
	return bufferedFile{bufio.NewReader(f), f}, nil
}
