package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/japaniel/vocab/pkg/dictionary"
	"github.com/japaniel/vocab/pkg/entry"
)

// run executes the CLI in-process from dir and returns stdout.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(dir)

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	t.Logf("stderr: %s", errOut.String())
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func fixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "lists", "a.txt"),
		"die schule\tschool\t\t\tn.f\n"+
			"laufen\tto run\t\t\tv\n")
	writeFile(t, filepath.Join(dir, "lists", "more", "b.txt"),
		"die Schule\tschoolhouse\tIch gehe zur Schule.\t\tn.f\n"+
			"das Auto\tcar\t\t\tn.nt\n"+
			"Äpfel\tapples\t\t\tn.pl\n")
	return dir
}

func TestBuild(t *testing.T) {
	dir := fixture(t)

	stdout, err := run(t, dir, "build", "lists", "-o", "out.txt")
	require.NoError(t, err)
	assert.Equal(t, "Wrote 4 entries to out.txt (1 merged, 0 skipped).\n", stdout)

	data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t,
		"# A\n"+
			"Äpfel\tapples\t\t\tn.pl\n"+
			"das Auto\tcar\t\t\tn.nt\n"+
			"\n# L\n"+
			"laufen\tto run\t\t\tv\n"+
			"\n# S\n"+
			"die Schule\tschool<br>schoolhouse\tIch gehe zur Schule.\t\tn.f\n",
		string(data))

	// The output is itself a valid source.
	stdout, err = run(t, dir, "build", "out.txt", "-o", "again.txt")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote 4 entries")
	again, err := os.ReadFile(filepath.Join(dir, "again.txt"))
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestBuild_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "words.csv"), "run;correr;;;v\nhouse;casa;;;n\n")
	writeFile(t, filepath.Join(dir, "vocab.yaml"),
		"language: en\nseparator: semicolon\nsources: [\"*.csv\"]\noutput:\n  path: en.csv\n  plain: true\n")

	stdout, err := run(t, dir, "build")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote 2 entries to en.csv")

	data, err := os.ReadFile(filepath.Join(dir, "en.csv"))
	require.NoError(t, err)
	assert.Equal(t, "house;casa;;;n\nrun;correr;;;v\n", string(data))
}

func TestBuild_Errors(t *testing.T) {
	dir := fixture(t)

	_, err := run(t, dir, "build")
	require.ErrorIs(t, err, errNoSources)

	_, err = run(t, dir, "build", "lists", "--lang", "xx")
	require.ErrorIs(t, err, entry.ErrLanguage)

	writeFile(t, filepath.Join(dir, "bad", "c.txt"), "kaputt\n")
	_, err = run(t, dir, "build", "lists", "bad", "--strict")
	require.ErrorIs(t, err, entry.ErrParse)
	assert.Contains(t, err.Error(), "c.txt:1:")
}

func TestCheck(t *testing.T) {
	dir := fixture(t)
	stdout, err := run(t, dir, "check", "lists")
	require.NoError(t, err)
	assert.Equal(t, "OK: 4 entries in 2 files.\n", stdout)

	writeFile(t, filepath.Join(dir, "bad.txt"),
		"kaputt\n"+
			"schön\tbeautiful\t\t\tadj f\n"+
			"...\tellipsis\t\t\texpr\n")
	stdout, err = run(t, dir, "check", "bad.txt", "--strict")
	require.EqualError(t, err, "3 problems in 1 files")
	assert.Contains(t, stdout, "bad.txt:1:")
	assert.Contains(t, stdout, `"schön"`)
	assert.Contains(t, stdout, `"..."`)
}

func TestSearch(t *testing.T) {
	dir := fixture(t)

	stdout, err := run(t, dir, "search", "lists", "--tag", "n")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Äpfel\t"))
	assert.True(t, strings.HasPrefix(lines[2], "die Schule\t"))

	stdout, err = run(t, dir, "search", "lists", "--text", "run")
	require.NoError(t, err)
	assert.Equal(t, "laufen\tto run\t\t\tv\n", stdout)

	stdout, err = run(t, dir, "search", "lists", "-i", "s", "-n", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "die Schule\t"))

	_, err = run(t, dir, "search", "lists", "--tag", "noun")
	require.EqualError(t, err, `unknown tag "noun"`)
}

func TestShow(t *testing.T) {
	dir := fixture(t)

	stdout, err := run(t, dir, "show", "schule", "lists")
	require.NoError(t, err)

	var records []dictionary.Record
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "die Schule", records[0].Headword)
	assert.Equal(t, "n.f", records[0].Tags)
	assert.Equal(t, []string{"school", "schoolhouse"}, records[0].Meanings)

	_, err = run(t, dir, "show", "Haus", "lists")
	require.EqualError(t, err, `no entry matches "Haus"`)
}

func TestHarvest(t *testing.T) {
	dir := fixture(t)
	writeFile(t, filepath.Join(dir, "article.txt"), "Wir laufen zur Schule. Das Auto ist rot.\nNiemand isst Äpfel")

	stdout, err := run(t, dir, "harvest", "--from", "article.txt", "lists", "-o", "out.txt")
	require.NoError(t, err)
	assert.Equal(t, "Added 4 examples from 3 sentences, wrote 4 entries to out.txt.\n", stdout)

	data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "laufen\tto run\tWir laufen zur Schule.\t\tv\n")
	assert.Contains(t, string(data), "die Schule\tschool<br>schoolhouse\tIch gehe zur Schule.<br>Wir laufen zur Schule.\t\tn.f\n")
	assert.Contains(t, string(data), "das Auto\tcar\tDas Auto ist rot.\t\tn.nt\n")
	assert.Contains(t, string(data), "Äpfel\tapples\tNiemand isst Äpfel\t\tn.pl\n")

	_, err = run(t, dir, "harvest", "lists")
	require.Error(t, err, "--from is required")
}

func TestVersion(t *testing.T) {
	stdout, err := run(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "vocab version dev (commit: unknown, built: unknown)\n", stdout)
}
