//go:build unix

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

// Open maps the file at path. Empty files and files that cannot be mapped
// (pipes, some special files) are read into memory instead.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := st.Size()
	if size == 0 || !st.Mode().IsRegular() || int64(int(size)) != size {
		return readAll(f)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return readAll(f)
	}
	return &File{data: data, mapped: true}, nil
}

// Close unmaps the file.
func (f *File) Close() error {
	if !f.mapped {
		f.data = nil
		return nil
	}
	err := unix.Munmap(f.data)
	f.data, f.mapped = nil, false
	return err
}
