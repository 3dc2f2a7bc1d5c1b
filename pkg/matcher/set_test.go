package matcher_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/srcmine/pkg/lang"
	"github.com/yaklabco/srcmine/pkg/matcher"
	"github.com/yaklabco/srcmine/pkg/scanner"
	"github.com/yaklabco/srcmine/pkg/source"
)

type fixture struct {
	file    *source.File
	regions []scanner.Region
	profile *lang.Profile
}

func load(t *testing.T, language, src string) fixture {
	t.Helper()

	p, err := lang.Default().Lookup(language)
	require.NoError(t, err)

	file := source.New("fixture", []byte(src))
	return fixture{file: file, regions: scanner.Scan(file.Content, p), profile: p}
}

func find(t *testing.T, language, src string, tags ...lang.Tag) ([]matcher.Match, []matcher.Failure) {
	t.Helper()

	fx := load(t, language, src)
	return matcher.Default().FindAll(tags, fx.file, fx.regions, fx.profile)
}

// span is a compact view of a match for table assertions.
type span struct {
	Name  string
	Start int
	End   int
}

func spans(matches []matcher.Match) []span {
	out := make([]span, 0, len(matches))
	for _, m := range matches {
		out = append(out, span{Name: m.Name, Start: m.StartLine, End: m.EndLine})
	}
	return out
}

func TestFindFixedCount(t *testing.T) {
	t.Parallel()

	src := `#include <stdio.h>

/* int fake(void) { return 0; } */
static int add(int a, int b)
{
    return a + b;
}

int sub(int a, int b) {
    return a - b;
}

char *name(void) {
    const char *s = "int ghost(void) {";
    return s;
}

unsigned long count(const char *s) {
    unsigned long n = 0;
    while (*s++) {
        n++;
    }
    return n;
}

int main(int argc, char **argv) {
    if (argc > 1) {
        return add(1, 2);
    }
    return 0;
}
`
	fx := load(t, "c", src)
	matches, failures := matcher.Default().Find(lang.TagFunction, fx.file, fx.regions, fx.profile)
	require.Empty(t, failures)

	assert.Equal(t, []span{
		{Name: "add", Start: 4, End: 7},
		{Name: "sub", Start: 9, End: 11},
		{Name: "name", Start: 13, End: 16},
		{Name: "count", Start: 18, End: 24},
		{Name: "main", Start: 26, End: 31},
	}, spans(matches))

	masked := scanner.Mask(fx.file.Content, fx.regions)
	for i, m := range matches {
		assert.Equal(t, lang.TagFunction, m.Tag)
		assert.Equal(t, "c", m.Language)
		if i > 0 {
			assert.Greater(t, m.StartLine, matches[i-1].EndLine, "matches must not overlap")
		}

		first, _ := fx.file.Line(m.StartLine)
		last, _ := fx.file.Line(m.EndLine)
		body := masked[first.StartOffset:last.NewlineStart]
		assert.Equal(t, bytes.Count(body, []byte("{")), bytes.Count(body, []byte("}")),
			"%s must hold balanced braces", m.Name)
	}
}

func TestFindIgnoresCommentsAndStrings(t *testing.T) {
	t.Parallel()

	src := `# def commented():
s = """
def in_string():
    pass
"""
def real():
    return "def fake():"
`
	matches, failures := find(t, "python", src, lang.TagFunction)
	require.Empty(t, failures)
	assert.Equal(t, []span{{Name: "real", Start: 6, End: 7}}, spans(matches))
}

func TestFindPythonIndent(t *testing.T) {
	t.Parallel()

	src := `class Greeter:
    """Docs.

text at column zero inside the docstring
    """

    def greet(self, name):
        # comment
        return (
    "hi " + name
        )

    # trailing comment

def helper(
    x,
):
    return x
`
	fx := load(t, "python", src)
	matches, failures := matcher.Default().FindAll(
		[]lang.Tag{lang.TagClass, lang.TagFunction}, fx.file, fx.regions, fx.profile)
	require.Empty(t, failures)

	assert.Equal(t, []span{
		{Name: "Greeter", Start: 1, End: 11},
		{Name: "greet", Start: 7, End: 11},
		{Name: "helper", Start: 15, End: 18},
	}, spans(matches))

	assert.True(t, matches[0].Contains(matches[1]), "methods nest inside classes")
	assert.Equal(t, "def greet(self, name)", matches[1].Signature)

	// The next code line after an indent construct is never deeper.
	masked := scanner.Mask(fx.file.Content, fx.regions)
	for _, m := range matches {
		for next := m.EndLine + 1; next <= fx.file.LineCount(); next++ {
			line, _ := fx.file.Line(next)
			if len(bytes.TrimSpace(masked[line.StartOffset:line.NewlineStart])) == 0 {
				continue
			}
			assert.LessOrEqual(t, fx.file.Indent(next), fx.file.Indent(m.StartLine), "%s truncated", m.Name)
			break
		}
	}
}

func TestFindHaskellEquations(t *testing.T) {
	t.Parallel()

	src := `module Main where

import Data.List (sortBy)

-- | Factorial.
fact :: Integer -> Integer
fact 0 = 1
fact n =
  n * fact (n - 1)

facts :: [Integer]
facts = map fact [0 ..]
`
	matches, failures := find(t, "haskell", src, lang.TagFunction)
	require.Empty(t, failures)
	assert.Equal(t, []span{
		{Name: "fact", Start: 6, End: 9},
		{Name: "facts", Start: 11, End: 12},
	}, spans(matches))
}

func TestFindTerminators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lang string
		src  string
		tags []lang.Tag
		want []span
	}{
		{
			name: "ruby",
			lang: "ruby",
			src: `require "json"

# def commented
class Parser < Base
  def parse(input)
    input.each do |x|
      puts x
    end
  end

  def ready?; true; end

  def size = @items.size
end
`,
			tags: []lang.Tag{lang.TagClass, lang.TagFunction},
			want: []span{
				{Name: "Parser", Start: 4, End: 14},
				{Name: "parse", Start: 5, End: 9},
				{Name: "ready?", Start: 11, End: 11},
				{Name: "size", Start: 13, End: 13},
			},
		},
		{
			name: "lua",
			lang: "lua",
			src: `local M = {}

function M.add(a, b)
  if a then
    return a + b
  end
end

local function id(x) return x end

M.mul = function(a, b)
  return a * b
end

return M
`,
			tags: []lang.Tag{lang.TagFunction},
			want: []span{
				{Name: "M.add", Start: 3, End: 7},
				{Name: "id", Start: 9, End: 9},
				{Name: "M.mul", Start: 11, End: 13},
			},
		},
		{
			name: "elixir",
			lang: "elixir",
			src: `defmodule Math do
  def add(a, b), do: a + b

  defp square(x) do
    x * x
  end
end
`,
			tags: []lang.Tag{lang.TagModule, lang.TagFunction},
			want: []span{
				{Name: "Math", Start: 1, End: 7},
				{Name: "add", Start: 2, End: 2},
				{Name: "square", Start: 4, End: 6},
			},
		},
		{
			name: "shell",
			lang: "shell",
			src: `#!/bin/bash

greet() {
  echo "hello }"
  if true; then
    echo ok
  fi
}

function quiet { :; }

sub() (
  cd /tmp
)
`,
			tags: []lang.Tag{lang.TagFunction},
			want: []span{
				{Name: "greet", Start: 3, End: 8},
				{Name: "quiet", Start: 10, End: 10},
				{Name: "sub", Start: 12, End: 14},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			matches, failures := find(t, tt.lang, tt.src, tt.tags...)
			require.Empty(t, failures)
			assert.Equal(t, tt.want, spans(matches))
		})
	}
}

func TestFindStatements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lang string
		src  string
		tag  lang.Tag
		want []span
	}{
		{
			name: "go grouped import",
			lang: "go",
			src:  "package main\n\nimport (\n\t\"fmt\"\n\t\"os\"\n)\n\nconst Limit = 10\n",
			tag:  lang.TagImport,
			want: []span{{Name: "fmt", Start: 3, End: 6}},
		},
		{
			name: "go package line",
			lang: "go",
			src:  "package main\n\nfunc main() {}\n",
			tag:  lang.TagModule,
			want: []span{{Name: "main", Start: 1, End: 1}},
		},
		{
			name: "rust use tree",
			lang: "rust",
			src:  "use std::{\n    fmt,\n    io,\n};\n\nfn main() {}\n",
			tag:  lang.TagImport,
			want: []span{{Name: "std::{", Start: 1, End: 4}},
		},
		{
			name: "c define continuation",
			lang: "c",
			src:  "#define MAX(a, b) \\\n    ((a) > (b) ? (a) : (b))\n\nint x;\n",
			tag:  lang.TagMacro,
			want: []span{{Name: "MAX", Start: 1, End: 2}},
		},
		{
			name: "php define strips quotes",
			lang: "php",
			src:  "<?php\ndefine('LIMIT', 10);\n",
			tag:  lang.TagConstant,
			want: []span{{Name: "LIMIT", Start: 2, End: 2}},
		},
		{
			name: "kotlin companion object",
			lang: "kotlin",
			src:  "class A {\n    companion object {\n        const val X = 1\n    }\n}\n",
			tag:  lang.TagModule,
			want: []span{{Name: "companion", Start: 2, End: 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			matches, failures := find(t, tt.lang, tt.src, tt.tag)
			require.Empty(t, failures)
			assert.Equal(t, tt.want, spans(matches))
		})
	}
}

func TestImportNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lang string
		src  string
		want string
	}{
		{name: "c quoted include", lang: "c", src: "#include \"myheader.h\"\n", want: "myheader.h"},
		{name: "c system include", lang: "c", src: "#include <stdio.h>\n", want: "<stdio.h>"},
		{name: "go single import", lang: "go", src: "package main\n\nimport \"fmt\"\n", want: "fmt"},
		{name: "go aliased import", lang: "go", src: "package main\n\nimport str \"strings\"\n", want: "str \"strings\""},
		{name: "ruby require", lang: "ruby", src: "require 'json'\n", want: "json"},
		{name: "shell source", lang: "shell", src: "source \"./lib.sh\"\n", want: "./lib.sh"},
		{name: "python trailing comment", lang: "python", src: "import os  # stdlib\n", want: "os"},
		{name: "python grouped", lang: "python", src: "from typing import (\n    List,\n    Dict,\n)\n", want: "List"},
		{name: "javascript named", lang: "javascript", src: "import { readFile } from 'fs';\n", want: "readFile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			matches, failures := find(t, tt.lang, tt.src, lang.TagImport)
			require.Empty(t, failures)
			require.Len(t, matches, 1)
			assert.Equal(t, tt.want, matches[0].Name)
		})
	}
}

func TestRustImplNames(t *testing.T) {
	t.Parallel()

	src := `impl MyStruct {
    fn new() -> Self { MyStruct }
}

impl Display for MyStruct {
    fn fmt(&self, f: &mut Formatter) -> Result { Ok(()) }
}

impl<T: Clone> From<T> for Wrapper<T> {
    fn from(v: T) -> Self { Wrapper(v) }
}

unsafe impl !Send for Handle {}
`
	matches, failures := find(t, "rust", src, lang.TagImpl)
	require.Empty(t, failures)
	assert.Equal(t, []span{
		{Name: "MyStruct", Start: 1, End: 3},
		{Name: "Display", Start: 5, End: 7},
		{Name: "From", Start: 9, End: 11},
		{Name: "Send", Start: 13, End: 13},
	}, spans(matches))
}

func TestFindBraceLayouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lang string
		src  string
		tag  lang.Tag
		want []span
	}{
		{
			name: "prototype and allman definition",
			lang: "c",
			src:  "int proto(int a);\n\nint defined(int a)\n{\n    return a;\n}\n",
			tag:  lang.TagFunction,
			want: []span{
				{Name: "proto", Start: 1, End: 1},
				{Name: "defined", Start: 3, End: 6},
			},
		},
		{
			name: "angle brackets are not brackets",
			lang: "java",
			src: `class Box {
    static <T> boolean less(List<T> a, int n) {
        return a.size() < n && n > 0;
    }
}
`,
			tag:  lang.TagFunction,
			want: []span{{Name: "less", Start: 2, End: 4}},
		},
		{
			name: "template literal braces",
			lang: "javascript",
			src:  "function render(user) {\n  return `<div>${user.name} }}}</div>`;\n}\n\nfunction after() {}\n",
			tag:  lang.TagFunction,
			want: []span{
				{Name: "render", Start: 1, End: 3},
				{Name: "after", Start: 5, End: 5},
			},
		},
		{
			name: "multi-line parameters",
			lang: "go",
			src:  "func long(\n\ta int,\n\tb int,\n) int {\n\treturn a + b\n}\n",
			tag:  lang.TagFunction,
			want: []span{{Name: "long", Start: 1, End: 6}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			matches, failures := find(t, tt.lang, tt.src, tt.tag)
			require.Empty(t, failures)
			assert.Equal(t, tt.want, spans(matches))
		})
	}
}

func TestFindFailsAtEOF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		lang   string
		src    string
		want   string
		reason string
	}{
		{name: "open brace", lang: "c", src: "int broken(void) {\n    return 1;\n", want: "broken", reason: matcher.ReasonUnbalancedBraces},
		{name: "open paren", lang: "python", src: "def f(\n    x,\n", want: "f", reason: matcher.ReasonUnclosedBrackets},
		{name: "missing end", lang: "ruby", src: "def f\n  1\n", want: "f", reason: matcher.ReasonMissingTerminator},
		{name: "shell without body", lang: "shell", src: "f()\necho hi\n", want: "f", reason: matcher.ReasonMissingBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			matches, failures := find(t, tt.lang, tt.src, lang.TagFunction)
			assert.Empty(t, matches, "unresolved extents are never truncated")
			require.Len(t, failures, 1)
			assert.Equal(t, tt.want, failures[0].Name)
			assert.Equal(t, 1, failures[0].Line)
			assert.Equal(t, tt.reason, failures[0].Reason)
			assert.Equal(t, lang.TagFunction, failures[0].Tag)
		})
	}
}

func TestFindTieBreaks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lang string
		src  string
		want lang.Tag
	}{
		{name: "swift class func is a function", lang: "swift", src: "class func make() -> Self {}\n", want: lang.TagFunction},
		{name: "kotlin enum class is an enum", lang: "kotlin", src: "enum class Color { RED }\n", want: lang.TagEnum},
		{name: "zig import beats constant", lang: "zig", src: "const std = @import(\"std\");\n", want: lang.TagImport},
		{name: "rust const fn is a function", lang: "rust", src: "pub const fn zero() -> u8 { 0 }\n", want: lang.TagFunction},
		{name: "keyword beats shape", lang: "cpp", src: "class Widget {\n};\n", want: lang.TagClass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := load(t, tt.lang, tt.src)
			all := fx.profile.SupportedTags()
			matches, failures := matcher.Default().FindAll(all, fx.file, fx.regions, fx.profile)
			require.Empty(t, failures)
			require.Len(t, matches, 1)
			assert.Equal(t, tt.want, matches[0].Tag)
		})
	}
}

func TestFindOnlyWinningTag(t *testing.T) {
	t.Parallel()

	matches, failures := find(t, "zig", "const std = @import(\"std\");\n", lang.TagConstant)
	assert.Empty(t, matches)
	assert.Empty(t, failures)
}

func TestSignature(t *testing.T) {
	t.Parallel()

	matches, _ := find(t, "c", "static int add(int a, int b) { // adds\n    return a + b;\n}\n", lang.TagFunction)
	require.Len(t, matches, 1)
	assert.Equal(t, "static int add(int a, int b)", matches[0].Signature)
	assert.Equal(t, "static int add(int a, int b) { // adds\n    return a + b;\n}", matches[0].Text)
}

func TestEveryLanguageHasRules(t *testing.T) {
	t.Parallel()

	for _, p := range lang.Default().Profiles() {
		rules := matcher.Default().Rules(p.Name)
		assert.NotEmpty(t, rules, p.Name)
		for _, r := range rules {
			assert.True(t, p.Supports(r.Tag), "%s rule for unsupported tag %s", p.Name, r.Tag)
		}
	}
}
