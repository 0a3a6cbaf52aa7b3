package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"syscall"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goprop/internal/cli"
	"goprop/internal/writers"
	"goprop/pkg/api"
)

const (
	annotations = "!gaf-version: 2.2\n" +
		"ignored\tG1\tignored\tignored\tGO:0000001\n" +
		"ignored\tG2\tignored\tignored\tGO:0000001\n"
	hierarchy = "ignored\tignored\t1\tName1\t2\n"
)

func memFS(t *testing.T, files map[string]string) billy.Filesystem {
	t.Helper()
	fsys := memfs.New()
	for name, data := range files {
		require.NoError(t, util.WriteFile(fsys, name, []byte(data), 0o644))
	}
	return fsys
}

func run(t *testing.T, fsys billy.Filesystem, args ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := RunFS(context.Background(), fsys, args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestScenarioReport(t *testing.T) {
	fsys := memFS(t, map[string]string{"ann.gaf": annotations, "go.tsv": hierarchy})
	code, out, errOut := run(t, fsys, "ann.gaf", "go.tsv")
	require.Equal(t, ExitOK, code, errOut)

	want := "GO Class ID     GO Class Name                                      Gene Count\n" +
		strings.Repeat("=", 85) + "\n" +
		"GO:0000001      Name1                                              2\n" +
		"GO:0000002      Unknown                                            2\n"
	assert.Equal(t, want, out)
	assert.Empty(t, errOut)
}

func TestUsageErrors(t *testing.T) {
	fsys := memFS(t, map[string]string{"ann.gaf": annotations})
	for _, args := range [][]string{nil, {"ann.gaf"}, {"a", "b", "c"}} {
		code, out, errOut := run(t, fsys, args...)
		assert.Equal(t, ExitUsage, code, "args=%v", args)
		assert.Empty(t, out)
		assert.Contains(t, errOut, "Usage: goprop")
	}
}

func TestMissingFile(t *testing.T) {
	fsys := memFS(t, map[string]string{"ann.gaf": annotations})
	code, out, errOut := run(t, fsys, "ann.gaf", "missing.tsv")
	assert.Equal(t, ExitUsage, code)
	assert.Empty(t, out)
	assert.Equal(t, "Error: File not found - missing.tsv\n", errOut)

	require.NoError(t, fsys.MkdirAll("dir", 0o755))
	code, _, errOut = run(t, fsys, "dir", "ann.gaf")
	assert.Equal(t, ExitUsage, code)
	assert.Equal(t, "Error: File not found - dir\n", errOut)
}

func TestMalformedRowIsAllOrNothing(t *testing.T) {
	fsys := memFS(t, map[string]string{"ann.gaf": annotations + "short\trow\n", "go.tsv": hierarchy})
	code, out, errOut := run(t, fsys, "ann.gaf", "go.tsv")
	assert.Equal(t, ExitInput, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "line 4")
}

func TestLenientWarns(t *testing.T) {
	fsys := memFS(t, map[string]string{"ann.gaf": annotations + "short\trow\n", "go.tsv": hierarchy})
	code, out, errOut := run(t, fsys, "--lenient", "ann.gaf", "go.tsv")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "GO:0000002")
	assert.Contains(t, errOut, "WARN: annotations: skipped line 4")

	code, _, errOut = run(t, fsys, "--lenient", "-q", "ann.gaf", "go.tsv")
	require.Equal(t, ExitOK, code)
	assert.Empty(t, errOut)
}

func TestJSONOutput(t *testing.T) {
	fsys := memFS(t, map[string]string{"ann.gaf": annotations, "go.tsv": hierarchy})
	code, out, errOut := run(t, fsys, "-o", "json", "ann.gaf", "go.tsv")
	require.Equal(t, ExitOK, code, errOut)

	var got []api.ClassCountV1
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []api.ClassCountV1{
		{ClassID: "GO:0000001", Name: "Name1", GeneCount: 2},
		{ClassID: "GO:0000002", Name: "Unknown", GeneCount: 2},
	}, got)
}

func TestTopAndNoHeader(t *testing.T) {
	fsys := memFS(t, map[string]string{"ann.gaf": annotations, "go.tsv": hierarchy})
	code, out, _ := run(t, fsys, "--top", "1", "--no-header", "-o", "tsv", "ann.gaf", "go.tsv")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "GO:0000001\tName1\t2\n", out)
}

func TestVerboseLogsStages(t *testing.T) {
	fsys := memFS(t, map[string]string{"ann.gaf": annotations, "go.tsv": hierarchy})
	code, _, errOut := run(t, fsys, "--verbose", "ann.gaf", "go.tsv")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, errOut, "annotations loaded")
	assert.Contains(t, errOut, "hierarchy loaded")
}

func TestHelpAndVersion(t *testing.T) {
	code, out, _ := run(t, memfs.New(), "-h")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Usage: goprop")
	assert.Contains(t, out, "--output")

	code, out, _ = run(t, memfs.New(), "--version")
	assert.Equal(t, ExitOK, code)
	assert.True(t, strings.HasPrefix(out, "goprop version "))
}

func TestBadFlag(t *testing.T) {
	code, out, errOut := run(t, memfs.New(), "--output", "fasta", "a", "b")
	assert.Equal(t, ExitUsage, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `invalid --output "fasta"`)
}

func TestEveryCLIFormatHasWriter(t *testing.T) {
	for _, f := range cli.Formats {
		assert.True(t, writers.Known(f), f)
	}
}

func TestCancelled(t *testing.T) {
	fsys := memFS(t, map[string]string{"ann.gaf": annotations, "go.tsv": hierarchy})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errBuf bytes.Buffer
	code := RunFS(ctx, fsys, []string{"ann.gaf", "go.tsv"}, &out, &errBuf)
	assert.Equal(t, ExitCancelled, code)
	assert.Zero(t, out.Len())
}

type failWriter struct {
	err    error
	writes int
}

func (w *failWriter) Write([]byte) (int, error) {
	w.writes++
	return 0, w.err
}

func TestStdoutFailures(t *testing.T) {
	var big strings.Builder
	for c := 1; c <= 200; c++ {
		fmt.Fprintf(&big, "db\tG1\ts\t\t%d\n", c)
	}
	small := memFS(t, map[string]string{"ann.gaf": annotations, "go.tsv": hierarchy})
	large := memFS(t, map[string]string{"ann.gaf": big.String(), "go.tsv": ""})

	cases := []struct {
		name string
		fsys billy.Filesystem
		err  error
		code int
	}{
		{"flush broken pipe", small, syscall.EPIPE, ExitOK},
		{"flush disk full", small, errors.New("disk full"), ExitWrite},
		{"direct write broken pipe", large, syscall.EPIPE, ExitOK},
		{"direct write disk full", large, errors.New("disk full"), ExitWrite},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := &failWriter{err: c.err}
			var errBuf bytes.Buffer
			code := RunFS(context.Background(), c.fsys, []string{"--top", "0", "ann.gaf", "go.tsv"}, w, &errBuf)
			assert.Equal(t, c.code, code)
			assert.NotZero(t, w.writes)
			if c.code == ExitWrite {
				assert.Contains(t, errBuf.String(), "disk full")
			} else {
				assert.Empty(t, errBuf.String())
			}
		})
	}
}
