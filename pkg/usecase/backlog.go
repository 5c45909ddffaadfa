package usecase

import (
	"bufio"
	"io"

	"github.com/m-mizutani/goerr/v2"
)

// Lines longer than this are rejected by ReadBacklog
const maxBacklogLineSize = 1024 * 1024

// ReadBacklog reads one backlog item per line. Blank lines are kept so the
// payload keeps the same skip rule for every source.
func ReadBacklog(r io.Reader) ([]string, error) {
	var items []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxBacklogLineSize)
	for scanner.Scan() {
		items = append(items, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to read backlog", goerr.V("read_items", len(items)))
	}

	return items, nil
}
