package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lingust/lingust/internal/provider"
	"github.com/lingust/lingust/internal/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		text     string
		want     string
	}{
		{
			name:     "python by extension and content",
			filename: "main.py",
			text:     "def main():\n    print('hi')\n",
			want:     "Python",
		},
		{
			name:     "go by extension",
			filename: "server.go",
			text:     "package main\n\nfunc main() {}\n",
			want:     "Go",
		},
		{
			name:     "bash shebang without extension",
			filename: "script",
			text:     "#!/bin/bash\necho hi\n",
			want:     "Shell",
		},
		{
			name:     "python shebang without extension",
			filename: "run",
			text:     "#!/usr/bin/env python\nprint('hi')\n",
			want:     "Python",
		},
		{
			name:     "makefile by filename",
			filename: "Makefile",
			text:     "all:\n\techo done\n",
			want:     "Makefile",
		},
		{
			name:     "dockerfile by filename",
			filename: "Dockerfile",
			text:     "FROM alpine:3.20\nRUN echo hi\n",
			want:     "Dockerfile",
		},
		{
			name:     "empty content falls back to extension",
			filename: "empty.rs",
			text:     "",
			want:     "Rust",
		},
		{
			name:     "no signal at all",
			filename: "mystery",
			text:     "nothing recognizable here\n",
			want:     types.LabelUnknown,
		},
		{
			name:     "no extension no content",
			filename: "blank",
			text:     "",
			want:     types.LabelUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.filename, tt.text))
		})
	}
}

func TestClassify_AmbiguousHeaderDefersToFilename(t *testing.T) {
	// .h content with no C++ markers should resolve by extension convention
	got := Classify("list.h", "struct node { int v; };\n")
	assert.Contains(t, []string{"C", "C++", "Objective-C"}, got)
}

func TestClassifyFile_BinaryExtensionSkipsRead(t *testing.T) {
	p := provider.NewFakeProvider()
	// Reads on this file fail; a Binary result proves content was not touched
	p.AddUnreadableFile("/photo.png")

	assert.Equal(t, types.LabelBinary, ClassifyFile(p, "/photo.png"))
}

func TestClassifyFile_UndecodableContent(t *testing.T) {
	p := provider.NewFakeProvider()
	// .txt extension suggests text, the decode failure wins
	p.AddFile("/notes.txt", []byte{0xc3, 0x28, 0x00, 0x01})

	assert.Equal(t, types.LabelBinary, ClassifyFile(p, "/notes.txt"))
}

func TestClassifyFile_ReadFailure(t *testing.T) {
	p := provider.NewFakeProvider()
	p.AddUnreadableFile("/locked.py")

	assert.Equal(t, types.LabelError, ClassifyFile(p, "/locked.py"))
}

func TestClassifyFile_MissingFile(t *testing.T) {
	p := provider.NewFakeProvider()
	p.AddDir("/")

	assert.Equal(t, types.LabelError, ClassifyFile(p, "/vanished.go"))
}

func TestClassifyFile_Text(t *testing.T) {
	p := provider.NewFakeProvider()
	p.AddFile("/app.rb", []byte("puts 'hello'\n"))

	assert.Equal(t, "Ruby", ClassifyFile(p, "/app.rb"))
}

func TestClassifyFile_Idempotent(t *testing.T) {
	p := provider.NewFakeProvider()
	p.AddFile("/main.py", []byte("import os\n"))

	first := ClassifyFile(p, "/main.py")
	second := ClassifyFile(p, "/main.py")
	assert.Equal(t, first, second)
	assert.Equal(t, "Python", first)
}
