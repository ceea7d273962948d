// Package mmap maps input files read-only for scanning.
package mmap

// File is a read-only view of a file's contents.
type File struct {
	data   []byte
	mapped bool
}

// Bytes returns the file contents. The slice is invalid after Close.
func (f *File) Bytes() []byte { return f.data }

// Len returns the file size.
func (f *File) Len() int { return len(f.data) }
