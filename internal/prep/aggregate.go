package prep

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/plainsdata/licenseprep/internal/frame"
	"github.com/plainsdata/licenseprep/internal/logging"
)

// AggregateState standardizes every source file under one state's root
// folder. The state root's immediate subdirectories are its category
// folders (conventionally named so they contain "Hunt" or "Fish"); every
// file inside them is run through the state's registered transform, the
// results are concatenated, and exact duplicates are removed, since the
// same person can hold several licenses of one type and appear in more
// than one file.
//
// Any file failing to parse or map fails the whole state. A partial state
// would be a silently incomplete corpus, which is worse than no corpus;
// there is no skip-and-continue.
func AggregateState(ctx context.Context, root, state string) (*frame.Frame, error) {
	transform, ok := Lookup(state)
	if !ok {
		return nil, fmt.Errorf("no transform registered for state %q", state)
	}

	dir := filepath.Join(root, state)
	files, err := listCategoryFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("state %s: %w", state, err)
	}

	logger := logging.WithFields(ctx, "state", state)
	frames := make([]*frame.Frame, 0, len(files))
	for _, file := range files {
		f, err := transform(file)
		if err != nil {
			return nil, fmt.Errorf("state %s: %s: %w", state, file, err)
		}
		logger.Debug("file standardized", "file", file, "rows", f.Len())
		frames = append(frames, f)
	}

	if len(frames) == 0 {
		return frame.New(StandardColumns), nil
	}

	out, err := frame.Concat(frames...)
	if err != nil {
		return nil, fmt.Errorf("state %s: %w", state, err)
	}
	out.DropDuplicates()
	return out, nil
}

// BuildCorpus aggregates every configured state, in the given order, into
// the final corpus. State results are concatenated as-is: duplicate rows
// across states are not removed, and Hunt and Fish rows for the same
// person are not merged.
func BuildCorpus(ctx context.Context, root string, states []string) (*frame.Frame, error) {
	frames := make([]*frame.Frame, 0, len(states))
	for _, state := range states {
		f, err := AggregateState(ctx, root, state)
		if err != nil {
			return nil, err
		}
		logging.FromContext(ctx).Info("state aggregated", "state", state, "rows", f.Len())
		frames = append(frames, f)
	}

	if len(frames) == 0 {
		return frame.New(StandardColumns), nil
	}
	return frame.Concat(frames...)
}

// listCategoryFiles returns the files one level down from the state root:
// every file inside every immediate subdirectory, in directory-listing
// order. Files sitting directly in the state root are not source files and
// are skipped, as is anything nested deeper than a category folder. A
// category folder with no files contributes nothing; a missing state root
// is an error.
func listCategoryFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading state folder: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		sub := filepath.Join(dir, entry.Name())
		inner, err := os.ReadDir(sub)
		if err != nil {
			return nil, fmt.Errorf("reading category folder %s: %w", sub, err)
		}
		for _, item := range inner {
			if item.IsDir() {
				continue
			}
			files = append(files, filepath.Join(sub, item.Name()))
		}
	}
	return files, nil
}
