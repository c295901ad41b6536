package sixdegrees

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// maxLineSize bounds a single edge list line
const maxLineSize = 1024 * 1024

// ParseEdges reads a tab separated two column edge list.
// Blank lines, lines starting with '#' and lines that do not split into
// exactly two fields on a tab are skipped. A two column line holding a
// value that is not a uint32 is an error.
func ParseEdges(r io.Reader) ([]Edge, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var edges []Edge
	lineNum, skipped := 0, 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 2 {
			skipped++
			continue
		}
		from, err := parseVertex(parts[0])
		if err != nil {
			return nil, errorutil.NewWithTag("sixdegrees", "line %d: invalid source vertex %q: %v", lineNum, parts[0], err)
		}
		to, err := parseVertex(parts[1])
		if err != nil {
			return nil, errorutil.NewWithTag("sixdegrees", "line %d: invalid target vertex %q: %v", lineNum, parts[1], err)
		}
		edges = append(edges, Edge{From: from, To: to})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if skipped > 0 {
		gologger.Warning().Msgf("skipped %d lines without exactly two tab separated columns", skipped)
	}
	return edges, nil
}

// ReadEdgesFile parses the edge list stored at path
func ReadEdgesFile(path string) ([]Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseEdges(f)
}

func parseVertex(value string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
