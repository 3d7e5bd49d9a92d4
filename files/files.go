// Package files reads and writes plain text files line by line.
package files

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// Read returns the lines of the file at path. Lines end at '\n'; a trailing
// '\r' is dropped and a final newline does not start an extra line.
func Read(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadLines(file)
}

// ReadLines splits everything in r into lines the same way Read does.
func ReadLines(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Write replaces the file at path with everything read from src.
func Write(path string, src io.Reader) (int64, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(file, src)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return n, err
}
