// Package wordcount counts lines, words and bytes in text files, in the
// manner of wc(1), reporting unreadable or non-UTF-8 input as errors instead
// of guessing.
//
// Lines are split on "\n" with an optional preceding "\r"; a final line
// without a terminator still counts. Bytes are the bytes of line content,
// excluding terminators. Words are runs of non-space characters.
package wordcount

import (
	"bufio"
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/conneroisu/localvec/internal/errors"
	"github.com/conneroisu/localvec/internal/logging"
	"github.com/conneroisu/localvec/pkg/hybridvec"
)

// ErrInvalidUTF8 marks a line that is not valid UTF-8.
var ErrInvalidUTF8 = stderrors.New("invalid UTF-8")

// Counts holds the totals for one input.
type Counts struct {
	Lines int `json:"lines" yaml:"lines"`
	Words int `json:"words" yaml:"words"`
	Bytes int `json:"bytes" yaml:"bytes"`
}

// Add returns the element-wise sum of c and other.
func (c Counts) Add(other Counts) Counts {
	return Counts{
		Lines: c.Lines + other.Lines,
		Words: c.Words + other.Words,
		Bytes: c.Bytes + other.Bytes,
	}
}

// Result pairs a file with its counts.
type Result struct {
	Path   string `json:"path" yaml:"path"`
	Counts `yaml:",inline"`
}

// Count reads r to the end. On failure the counts gathered so far are
// returned with an *errors.Error carrying the 1-based line number.
func Count(r io.Reader) (Counts, error) {
	reader := bufio.NewReader(r)
	var counts Counts

	for line := 1; ; line++ {
		text, err := reader.ReadString('\n')
		if len(text) > 0 {
			text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
			if !utf8.ValidString(text) {
				return counts, errors.NewIOError(errors.ErrCodeInvalidEncoding, "cannot decode line", ErrInvalidUTF8).
					WithLine(line)
			}
			counts.Lines++
			counts.Words += len(strings.Fields(text))
			counts.Bytes += len(text)
		}
		if err == io.EOF {
			return counts, nil
		}
		if err != nil {
			return counts, errors.NewIOError(errors.ErrCodeReadFailed, "cannot read line", err).WithLine(line)
		}
	}
}

// CountFile opens path and counts its contents.
func CountFile(path string) (Counts, error) {
	file, err := os.Open(path)
	if err != nil {
		code := errors.ErrCodeReadFailed
		if stderrors.Is(err, fs.ErrNotExist) {
			code = errors.ErrCodeFileNotFound
		}
		return Counts{}, errors.WrapIO(err, code, path)
	}
	defer file.Close()

	counts, err := Count(file)
	if err != nil {
		var e *errors.Error
		if stderrors.As(err, &e) {
			e.WithPath(path)
		}
		return counts, err
	}
	return counts, nil
}

// Counter counts many files, continuing past failures.
type Counter struct {
	logger   logging.Logger
	capacity int
}

// NewCounter creates a counter whose result list stays inline for up to
// capacity files.
func NewCounter(logger logging.Logger, capacity int) *Counter {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Counter{logger: logger.WithComponent("wordcount"), capacity: capacity}
}

// CountFiles counts each path in order. Results hold only the files that
// were counted successfully; the returned error joins every failure. It
// stops early when ctx is done.
func (c *Counter) CountFiles(ctx context.Context, paths []string) (*hybridvec.Vec[Result], error) {
	results := hybridvec.New[Result](c.capacity)
	collector := errors.NewCollector()
	op := logging.StartOperation(c.logger, "count_files")

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			collector.Add(err)
			break
		}

		counts, err := CountFile(path)
		if err != nil {
			c.logger.Warn(ctx, err, "Skipping file", "path", path)
			collector.Add(err)
			continue
		}

		c.logger.Debug(ctx, "Counted file", "path", path, "lines", counts.Lines)
		results.Push(Result{Path: path, Counts: counts})
	}

	op.End(ctx, "files", results.Len(), "failed", collector.Len(), "spilled", results.Spilled())

	if !collector.HasErrors() {
		return results, nil
	}
	return results, collector.Err()
}

// Total sums the counts of every result.
func Total(results *hybridvec.Vec[Result]) Counts {
	var total Counts
	for result := range results.Values() {
		total = total.Add(result.Counts)
	}
	return total
}
