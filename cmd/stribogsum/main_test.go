package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zeebo/assert"
)

// example 1 of the standard
const (
	m1        = "210987654321098765432109876543210987654321098765432109876543210"
	m1Hash256 = "00557BE5E584FD52A449B16B0251D05D27F94AB76CBAA6DA890B59D8EF1E159D"
	m1Hash512 = "486F64C1917879417FEF082B3381A4E211C324F074654C38823A7B76F830AD00" +
		"FA1FBAE42B1285C0352F227524BC9AB16254288DD6863DCCD5B9F54A1AD0541B"
)

func runCmd(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestSum(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "m1", m1)

	code, stdout, _ := runCmd(t, "", path)
	assert.Equal(t, code, 0)
	assert.Equal(t, stdout, m1Hash256+"  "+path+"\n")

	code, stdout, _ = runCmd(t, "", "-l", "512", path)
	assert.Equal(t, code, 0)
	assert.Equal(t, stdout, m1Hash512+"  "+path+"\n")

	code, stdout, _ = runCmd(t, "", "--lower", path)
	assert.Equal(t, code, 0)
	assert.Equal(t, stdout, strings.ToLower(m1Hash256)+"  "+path+"\n")
}

func TestSum_Stdin(t *testing.T) {
	code, stdout, _ := runCmd(t, m1)
	assert.Equal(t, code, 0)
	assert.Equal(t, stdout, m1Hash256+"  -\n")

	code, stdout, _ = runCmd(t, m1, "--length=512", "-")
	assert.Equal(t, code, 0)
	assert.Equal(t, stdout, m1Hash512+"  -\n")
}

func TestSum_ManyFiles(t *testing.T) {
	dir := t.TempDir()

	var paths []string
	for i := 0; i < 7; i++ {
		paths = append(paths, writeFile(t, dir, string(rune('a'+i)), strings.Repeat("x", i*50)))
	}
	paths = append(paths, writeFile(t, dir, "m1", m1))

	code, stdout, _ := runCmd(t, "", append([]string{"-j", "3"}, paths...)...)
	assert.Equal(t, code, 0)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	assert.Equal(t, len(lines), len(paths))
	for i, line := range lines {
		assert.That(t, strings.HasSuffix(line, "  "+paths[i]))
	}
	assert.Equal(t, lines[len(lines)-1], m1Hash256+"  "+paths[len(paths)-1])
}

func TestSum_Errors(t *testing.T) {
	code, _, stderr := runCmd(t, "", filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, code, 1)
	assert.That(t, strings.Contains(stderr, "reading"))

	code, _, _ = runCmd(t, "", "-l", "384")
	assert.Equal(t, code, 2)

	code, _, _ = runCmd(t, "", "--bogus")
	assert.Equal(t, code, 2)

	code, stdout, _ := runCmd(t, "", "--help")
	assert.Equal(t, code, 0)
	assert.That(t, strings.Contains(stdout, "--length"))
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a", m1)
	b := writeFile(t, dir, "b", "hello")

	_, sums256, _ := runCmd(t, "", a, b)
	_, sums512, _ := runCmd(t, "", "-l", "512", "--lower", a)
	list := writeFile(t, dir, "SUMS", sums256+"\n"+sums512)

	code, stdout, _ := runCmd(t, "", "--no-color", "-c", list)
	assert.Equal(t, code, 0)
	assert.Equal(t, stdout, a+": OK\n"+b+": OK\n"+a+": OK\n")

	writeFile(t, dir, "b", "hellO")
	code, stdout, stderr := runCmd(t, "", "--no-color", "-c", list)
	assert.Equal(t, code, 1)
	assert.Equal(t, stdout, a+": OK\n"+b+": FAILED\n"+a+": OK\n")
	assert.That(t, strings.Contains(stderr, "1 of 3"))

	assert.NoError(t, os.Remove(b))
	code, stdout, _ = runCmd(t, "", "--no-color", "-c", list)
	assert.Equal(t, code, 1)
	assert.That(t, strings.Contains(stdout, b+": FAILED open or read"))
}

func TestCheck_Malformed(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a", m1)

	list := writeFile(t, dir, "SUMS", ""+
		"nothex  "+a+"\n"+
		"abcd  "+a+"\n"+
		m1Hash256+"\n"+
		m1Hash256+" *"+a+"\n")

	code, stdout, stderr := runCmd(t, "", "--no-color", "-c", list)
	assert.Equal(t, code, 0)
	assert.Equal(t, stdout, a+": OK\n")
	assert.That(t, strings.Contains(stderr, "3 lines are improperly formatted"))

	empty := writeFile(t, dir, "EMPTY", "garbage\n")
	code, _, stderr = runCmd(t, "", "-c", empty)
	assert.Equal(t, code, 1)
	assert.That(t, strings.Contains(stderr, "no properly formatted"))
}

func TestParseEntry(t *testing.T) {
	ent, err := parseEntry(strings.ToLower(m1Hash512) + "  some file")
	assert.NoError(t, err)
	assert.Equal(t, int(ent.width), 512)
	assert.Equal(t, ent.name, "some file")
	assert.Equal(t, len(ent.digest), 64)

	_, err = parseEntry(m1Hash256)
	assert.Error(t, err)

	_, err = parseEntry(m1Hash256 + " ")
	assert.Error(t, err)
}
