// Package lockfile implements the explicit lock file codec.
package lockfile

import (
	"bufio"
	"os"
	"strings"

	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/zerr"
)

// Header is the literal line marking explicit mode. Everything before it is
// preamble; everything after is one package record per non-blank line.
const Header = "@EXPLICIT"

// Codec implements ports.LockfileCodec.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Write encodes the records to path: header line first, then one retrieval
// URL per record in the given order, each with its checksum fragment when the
// record carries one. The write is flushed and closed before success is
// reported; on any I/O error the file's final state is undefined and is left
// for the caller to retry or discard.
func (c *Codec) Write(path string, records []domain.PackageRecord) error {
	f, err := os.Create(path) //nolint:gosec // path is derived from the host-supplied envfile
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create lock file"), "lockfile", path)
	}

	w := bufio.NewWriter(f)
	_, err = w.WriteString(Header + "\n")
	for _, record := range records {
		if err != nil {
			break
		}
		line := record.URL
		if record.Checksum != "" {
			line += "#" + record.Checksum
		}
		_, err = w.WriteString(line + "\n")
	}
	if err == nil {
		err = w.Flush()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write lock file"), "lockfile", path)
	}
	return nil
}

// Read decodes the lock file at path, preserving record order. A file without
// the header line yields ErrLockFileHeader; a record line whose final path
// segment has fewer than three dash-delimited components yields
// ErrLockFileFormat.
func (c *Codec) Read(path string) ([]domain.PackageRecord, error) {
	f, err := os.Open(path) //nolint:gosec // path is derived from the host-supplied envfile
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open lock file"), "lockfile", path)
	}
	defer f.Close() //nolint:errcheck // read-only file

	var records []domain.PackageRecord
	header := true

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if header {
			if line == Header {
				header = false
			}
			continue
		}
		if line == "" {
			continue
		}

		record, err := ParseRecordLine(line)
		if err != nil {
			return nil, zerr.With(err, "lockfile", path)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read lock file"), "lockfile", path)
	}
	if header {
		return nil, zerr.With(domain.ErrLockFileHeader, "lockfile", path)
	}

	return records, nil
}

// ParseRecordLine converts one lock file record line into a PackageRecord.
// The line is a URL with an optional trailing "#<checksum>" fragment, carried
// through unparsed. The package name is recovered from the URL's final path
// segment by stripping the last two dash-delimited components (version and
// build string).
func ParseRecordLine(line string) (domain.PackageRecord, error) {
	url, checksum, _ := strings.Cut(line, "#")

	idx := strings.LastIndex(url, "/")
	segment := url[idx+1:]

	parts := strings.Split(segment, "-")
	if len(parts) < 3 {
		err := zerr.With(domain.ErrLockFileFormat, "line", line)
		return domain.PackageRecord{}, zerr.With(err, "segment", segment)
	}

	return domain.PackageRecord{
		Name:     strings.Join(parts[:len(parts)-2], "-"),
		URL:      url,
		Checksum: checksum,
	}, nil
}
