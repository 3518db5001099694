package eval

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/2389-research/mux-evals/internal/types"
)

// Filter restricts which loaded cases are retained. Empty fields match
// everything; both fields set means both must match.
type Filter struct {
	Category string
	ID       string
}

func (f Filter) matches(c Case) bool {
	if f.Category != "" && c.Category != f.Category {
		return false
	}
	if f.ID != "" && c.ID != f.ID {
		return false
	}
	return true
}

// Load reads eval cases from path, which is either a directory (every .jsonl
// file in it is read, in filename order) or a single file. Each non-blank line
// is one JSON case record. Any unreadable path or malformed line aborts the
// whole load with EVAL_LOAD_FAILED; partial results are never returned.
//
// Duplicate ids are retained as-is: filtering by a duplicated id returns every
// record carrying it.
func Load(path string, filter Filter) ([]Case, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, types.WrapError(types.EVAL_LOAD_FAILED, fmt.Sprintf("cannot access path %s", path), err)
	}

	var files []string
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, types.WrapError(types.EVAL_LOAD_FAILED, fmt.Sprintf("cannot read directory %s", path), err)
		}
		for _, entry := range entries {
			if strings.HasSuffix(entry.Name(), ".jsonl") {
				files = append(files, filepath.Join(path, entry.Name()))
			}
		}
	} else {
		files = []string{path}
	}

	var cases []Case
	for _, file := range files {
		loaded, err := loadFile(file, filter)
		if err != nil {
			return nil, err
		}
		cases = append(cases, loaded...)
	}
	return cases, nil
}

func loadFile(path string, filter Filter) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, types.WrapError(types.EVAL_LOAD_FAILED, fmt.Sprintf("failed to open %s", path), err)
	}
	defer f.Close()

	var cases []Case
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var c Case
		if err := json.Unmarshal([]byte(line), &c); err != nil {
			return nil, types.WrapError(types.EVAL_LOAD_FAILED,
				fmt.Sprintf("failed to parse line %d in %s", lineNum, path), err)
		}

		if filter.matches(c) {
			cases = append(cases, c)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, types.WrapError(types.EVAL_LOAD_FAILED, fmt.Sprintf("error reading %s", path), err)
	}
	return cases, nil
}
