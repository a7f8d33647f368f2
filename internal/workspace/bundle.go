package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	sferrors "git.home.luguber.info/inful/siteforge/internal/errors"
)

// archiveDelimiter frames each file in the single-artifact export form.
//
// The archive is line-oriented, so the format carries one invariant: file
// content is newline-terminated text. Every generated bundle file satisfies
// this. Content missing the terminator is normalized to it on export, and
// round trips reconstruct the normalized form byte-identically.
const archiveDelimiterFormat = "=== %s ===\n"

// WriteBundle writes a filename→content map into dir, one file per entry.
// Filenames are flat (no separators) by construction of the generator; any
// path escaping the directory is rejected.
func WriteBundle(dir string, files map[string]string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return sferrors.WorkspaceError("bundle dir create", err)
	}
	for name, content := range files {
		if filepath.Base(name) != name {
			return sferrors.WorkspaceError("bundle write",
				fmt.Errorf("invalid bundle filename %q", name))
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return sferrors.WorkspaceError("bundle write", err)
		}
	}
	return nil
}

// ExportArchive concatenates a bundle into one text artifact using the
// "=== filename ===" delimiter convention. Files are emitted in sorted
// filename order so the artifact is deterministic. Content is normalized to
// the newline-terminated invariant described on archiveDelimiterFormat.
func ExportArchive(files map[string]string) string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, archiveDelimiterFormat, name)
		b.WriteString(files[name])
		if !strings.HasSuffix(files[name], "\n") {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// ImportArchive splits a concatenated artifact back into per-file content.
// Newline-terminated content reconstructs byte-identically; content that was
// normalized by ExportArchive reconstructs in its normalized form.
func ImportArchive(archive string) (map[string]string, error) {
	files := map[string]string{}
	var current string
	var body []string
	flush := func() {
		if current == "" {
			return
		}
		content := strings.Join(body, "\n")
		// ExportArchive guarantees a trailing newline per file; restore it.
		files[current] = content
	}

	for _, line := range strings.Split(archive, "\n") {
		if strings.HasPrefix(line, "=== ") && strings.HasSuffix(line, " ===") {
			flush()
			current = strings.TrimSuffix(strings.TrimPrefix(line, "=== "), " ===")
			body = body[:0]
			continue
		}
		if current == "" {
			if strings.TrimSpace(line) != "" {
				return nil, sferrors.New(sferrors.CategoryFileSystem, sferrors.SeverityError,
					"archive content before first delimiter")
			}
			continue
		}
		body = append(body, line)
	}
	flush()

	// The split leaves one trailing empty element from the final newline;
	// normalize each file back to its exported bytes.
	for name, content := range files {
		files[name] = strings.TrimSuffix(content, "\n") + "\n"
	}
	return files, nil
}
