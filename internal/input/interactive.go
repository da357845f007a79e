package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

const rule = "──────────────────────────────────────────────────"

// Collector gathers a Window interactively: it lists the files in the
// working directory, asks for the archive, optionally shows the archive
// label, then asks for the time window. The result goes through the same
// Validate as the argument path.
type Collector struct {
	In  io.Reader
	Out io.Writer

	// Preview, when set, is called with the archive name before the time
	// prompts. It runs with its own timeout and error handling; a failed
	// preview never aborts collection.
	Preview func(archive string)
}

func NewCollector() *Collector {
	return &Collector{
		In:  os.Stdin,
		Out: os.Stdout,
	}
}

func (c *Collector) Collect(dir string) (Window, error) {
	scanner := bufio.NewScanner(c.In)

	names, err := listRegularFiles(dir)
	if err != nil {
		return Window{}, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	fmt.Fprintln(c.Out)
	fmt.Fprintln(c.Out, "Files in current directory:")
	fmt.Fprintln(c.Out, rule)
	for _, name := range names {
		fmt.Fprintf(c.Out, "  %s\n", name)
	}
	fmt.Fprintln(c.Out, rule)

	archive, err := c.prompt(scanner, "PCP archive basename (e.g. 20260122.15.xz): ")
	if err != nil {
		return Window{}, err
	}

	if c.Preview != nil {
		c.Preview(archive)
	}

	start, err := c.prompt(scanner, "Start time (YYYY-MM-DD HH:MM): ")
	if err != nil {
		return Window{}, err
	}
	end, err := c.prompt(scanner, "End   time (YYYY-MM-DD HH:MM): ")
	if err != nil {
		return Window{}, err
	}

	return Window{Archive: archive, Start: start, End: end}, nil
}

func (c *Collector) prompt(scanner *bufio.Scanner, label string) (string, error) {
	fmt.Fprint(c.Out, label)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", fmt.Errorf("input closed")
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func listRegularFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
