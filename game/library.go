package game

import (
	_ "embed"
	"fmt"
	"sync"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

//go:embed boards.yaml
var libraryYAML []byte

type libraryEntry struct {
	Name string   `yaml:"name"`
	Next string   `yaml:"next"`
	Rows []string `yaml:"rows"`
}

var (
	library     map[string]*Board
	libraryErr  error
	libraryOnce sync.Once
)

func loadLibrary() {
	var entries []libraryEntry
	if err := yaml.Unmarshal(libraryYAML, &entries); err != nil {
		libraryErr = fmt.Errorf("failed to parse board library: %w", err)
		return
	}
	library = make(map[string]*Board, len(entries))
	for _, e := range entries {
		b, err := ParseBoard(e.Rows, e.Next)
		if err != nil {
			libraryErr = fmt.Errorf("board %q: %w", e.Name, err)
			return
		}
		library[e.Name] = b
	}
}

// LibraryBoard returns a copy of a named position from the board library.
func LibraryBoard(name string) (*Board, error) {
	libraryOnce.Do(loadLibrary)
	if libraryErr != nil {
		return nil, libraryErr
	}
	b, ok := library[name]
	if !ok {
		return nil, fmt.Errorf("unknown board %q", name)
	}
	return b.Copy(), nil
}

// LibraryNames lists the names in the board library in sorted order.
func LibraryNames() ([]string, error) {
	libraryOnce.Do(loadLibrary)
	if libraryErr != nil {
		return nil, libraryErr
	}
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}
