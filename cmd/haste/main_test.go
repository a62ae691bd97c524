package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/haste/internal/testutil"
)

// run executes the CLI in-process with fresh flag values.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	_, err := rootCmd.ExecuteContextC(context.Background())
	return out.String(), err
}

func TestSave_Stdin(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.NextKey("abc123")

	out, err := run(t, "hello", "--url", srv.URL, "save")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/abc123\n", out)
	assert.Equal(t, []string{"hello"}, srv.Posts())
}

func TestSave_Trim(t *testing.T) {
	srv := testutil.NewServer(t)

	_, err := run(t, "  hello\n\n", "--url", srv.URL, "--trim", "save", "--raw")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, srv.Posts())
}

func TestSave_Files(t *testing.T) {
	srv := testutil.NewServer(t)
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("first"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.txt"), []byte("second"), 0644))

	out, err := run(t, "", "--url", srv.URL, "save", "-o", "json", filepath.Join(dir, "**", "*.txt"))
	require.NoError(t, err)

	var results []result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, filepath.Join(dir, "a.txt"), results[0].Source)
	assert.Equal(t, srv.URL+"/"+results[0].Key, results[0].URL)
	assert.Equal(t, srv.URL+"/raw/"+results[1].Key, results[1].Raw)
	assert.Equal(t, []string{"first", "second"}, srv.Posts())
}

func TestSave_YAML(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.NextKey("abc123")

	out, err := run(t, "hello", "--url", srv.URL, "save", "-o", "yaml")
	require.NoError(t, err)

	var results []result
	require.NoError(t, yaml.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "abc123", results[0].Key)
	assert.Empty(t, results[0].Source)
}

func TestSave_RefusesBlank(t *testing.T) {
	srv := testutil.NewServer(t)

	_, err := run(t, " \n\t", "--url", srv.URL, "save")
	assert.ErrorContains(t, err, "blank document")
	assert.Zero(t, srv.Requests())
}

func TestSave_StoreError(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.FailPuts(500, `{"message":"too large"}`)

	_, err := run(t, "hello", "--url", srv.URL, "save")
	assert.EqualError(t, err, "stdin: too large")
}

func TestGet(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.Store.Set("abc123", "a\n\nb")

	out, err := run(t, "", "--url", srv.URL, "get", "abc123")
	require.NoError(t, err)
	assert.Equal(t, "a\n\nb", out)

	out, err = run(t, "", "--url", srv.URL, "get", "abc123", "--html")
	require.NoError(t, err)
	assert.Equal(t, `<span class="line">a</span>`+"\n"+`<span class="line"></span>`+"\n"+`<span class="line">b</span>`, out)
}

func TestGet_OutputFile(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.Store.Set("abc123", "saved to disk")
	target := filepath.Join(t.TempDir(), "doc.txt")

	out, err := run(t, "", "--url", srv.URL, "get", "abc123", "-O", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "saved to disk", string(data))
}

func TestGet_NotFound(t *testing.T) {
	srv := testutil.NewServer(t)

	_, err := run(t, "", "--url", srv.URL, "get", "doesnotexist")
	assert.ErrorContains(t, err, "could not be loaded")
}

func TestDuplicate(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.Store.Set("abc123", "original")
	srv.NextKey("def456")

	out, err := run(t, "", "--url", srv.URL, "duplicate", "abc123")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/def456\n", out)
	assert.Equal(t, []string{"original"}, srv.Posts())

	content, err := srv.Store.Get(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "original", content)
}

func TestDuplicate_NotFound(t *testing.T) {
	srv := testutil.NewServer(t)

	_, err := run(t, "", "--url", srv.URL, "duplicate", "missing")
	assert.ErrorContains(t, err, "could not be loaded")
	assert.Empty(t, srv.Posts())
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "haste version "))
}

func TestPrintResults_UnknownFormat(t *testing.T) {
	err := printResults(&bytes.Buffer{}, "xml", false, nil)
	assert.ErrorContains(t, err, "unknown output format")
}
