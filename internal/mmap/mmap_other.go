//go:build !unix

package mmap

import "os"

// Open reads the file at path into memory.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readAll(f)
}

// Close releases the contents.
func (f *File) Close() error {
	f.data = nil
	return nil
}
