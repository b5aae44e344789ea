package sample

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingust/lingust/internal/provider"
)

func TestExtract_ValidText(t *testing.T) {
	p := provider.NewFakeProvider()
	p.AddFile("/hello.py", []byte("print('hello')\n"))

	s, err := Extract(p, "/hello.py")
	require.NoError(t, err)
	assert.Equal(t, VerdictText, s.Verdict)
	assert.Equal(t, "print('hello')\n", s.Text)
}

func TestExtract_InvalidUTF8(t *testing.T) {
	p := provider.NewFakeProvider()
	p.AddFile("/blob.txt", []byte{0xff, 0xfe, 0x00, 0x41})

	s, err := Extract(p, "/blob.txt")
	require.NoError(t, err)
	assert.Equal(t, VerdictBinary, s.Verdict)
	assert.Empty(t, s.Text)
}

func TestExtract_ReadFailure(t *testing.T) {
	p := provider.NewFakeProvider()
	p.AddUnreadableFile("/secret.py")

	_, err := Extract(p, "/secret.py")
	assert.Error(t, err)
}

func TestExtract_MissingFile(t *testing.T) {
	p := provider.NewFakeProvider()
	p.AddDir("/")

	_, err := Extract(p, "/gone.py")
	assert.Error(t, err)
}

func TestExtract_BoundedPrefix(t *testing.T) {
	p := provider.NewFakeProvider()
	p.AddFile("/big.txt", bytes.Repeat([]byte("a"), MaxSampleSize*3))

	s, err := Extract(p, "/big.txt")
	require.NoError(t, err)
	assert.Len(t, s.Raw, MaxSampleSize)
	assert.Equal(t, VerdictText, s.Verdict)
}

func TestExtract_EmptyFile(t *testing.T) {
	p := provider.NewFakeProvider()
	p.AddFile("/empty.go", []byte{})

	s, err := Extract(p, "/empty.go")
	require.NoError(t, err)
	assert.Equal(t, VerdictText, s.Verdict)
	assert.Empty(t, s.Text)
}

func TestExtract_RealFilesystem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n"), 0o644))

	p := provider.NewFSProvider(dir)
	s, err := Extract(p, path)
	require.NoError(t, err)
	assert.Equal(t, VerdictText, s.Verdict)
	assert.Equal(t, "package main\n", s.Text)
}

func TestExtract_RealFilesystemBoundedRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.log")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), MaxSampleSize+100), 0o644))

	p := provider.NewFSProvider(dir)
	s, err := Extract(p, path)
	require.NoError(t, err)
	assert.Len(t, s.Raw, MaxSampleSize)
}
