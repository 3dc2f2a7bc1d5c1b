package lang

const (
	escBackslash = '\\'
	dq           = `"`
	sq           = `'`
	tripleDQ     = `"""`
	tripleSQ     = `'''`
	backtick     = "`"
)

func slashComments() []string {
	return []string{"//"}
}

func cBlockComments(nested bool) []CommentPair {
	return []CommentPair{{Open: "/*", Close: "*/", Nested: nested}}
}

// quoted returns the common double-quoted string plus a character literal.
func quoted() []StringDelim {
	return []StringDelim{
		{Open: dq, Close: dq, Escape: escBackslash},
		{Open: sq, Close: sq, Escape: escBackslash, Char: true},
	}
}

// builtinProfiles returns the fixed language table in registry order.
func builtinProfiles() []*Profile {
	return []*Profile{
		{
			Name:         "python",
			Display:      "Python",
			Extensions:   []string{".py", ".pyi"},
			Aliases:      []string{"py"},
			LineComments: []string{"#"},
			Strings: []StringDelim{
				{Open: tripleDQ, Close: tripleDQ, Escape: escBackslash, Multiline: true},
				{Open: tripleSQ, Close: tripleSQ, Escape: escBackslash, Multiline: true},
				{Open: dq, Close: dq, Escape: escBackslash},
				{Open: sq, Close: sq, Escape: escBackslash},
			},
			Block: BlockIndent,
			Tags:  []Tag{TagClass, TagFunction, TagDecorator, TagImport, TagVariable},
		},
		{
			Name:          "c",
			Display:       "C",
			Extensions:    []string{".c", ".h"},
			Aliases:       []string{"h"},
			LineComments:  slashComments(),
			BlockComments: cBlockComments(false),
			Strings:       quoted(),
			Block:         BlockBrace,
			Tags: []Tag{
				TagStruct, TagUnion, TagEnum, TagTypedef, TagMacro,
				TagFunction, TagImport, TagVariable,
			},
		},
		{
			Name:          "cpp",
			Display:       "C++",
			Extensions:    []string{".cpp", ".hpp", ".cc", ".cxx", ".hh", ".hxx"},
			Aliases:       []string{"c++", "hpp", "cc", "cxx"},
			LineComments:  slashComments(),
			BlockComments: cBlockComments(false),
			Strings: append([]StringDelim{
				{Open: `R"(`, Close: `)"`, Multiline: true},
			}, quoted()...),
			Block: BlockBrace,
			Tags: []Tag{
				TagClass, TagStruct, TagEnum, TagNamespace, TagFunction,
				TagMacro, TagImport, TagTypeAlias,
			},
		},
		{
			Name:          "rust",
			Display:       "Rust",
			Extensions:    []string{".rs"},
			Aliases:       []string{"rs"},
			LineComments:  slashComments(),
			BlockComments: cBlockComments(true),
			Strings: []StringDelim{
				{Open: `r#"`, Close: `"#`, Multiline: true},
				{Open: `r"`, Close: dq, Multiline: true},
				{Open: dq, Close: dq, Escape: escBackslash, Multiline: true},
				{Open: sq, Close: sq, Escape: escBackslash, Char: true},
			},
			Block: BlockBrace,
			Tags: []Tag{
				TagFunction, TagStruct, TagEnum, TagTrait, TagImpl, TagModule,
				TagMacro, TagConstant, TagTypeAlias, TagImport, TagDecorator,
			},
		},
		{
			Name:          "javascript",
			Display:       "JavaScript",
			Extensions:    []string{".js", ".mjs", ".cjs", ".jsx"},
			Aliases:       []string{"js", "node"},
			LineComments:  slashComments(),
			BlockComments: cBlockComments(false),
			Strings:       jsStrings(),
			RegexLiterals: true,
			Block:         BlockBrace,
			Tags: []Tag{
				TagClass, TagFunction, TagComponent, TagConstant, TagImport, TagModule,
			},
		},
		{
			Name:          "typescript",
			Display:       "TypeScript",
			Extensions:    []string{".ts", ".tsx", ".mts", ".cts"},
			Aliases:       []string{"ts"},
			LineComments:  slashComments(),
			BlockComments: cBlockComments(false),
			Strings:       jsStrings(),
			RegexLiterals: true,
			Block:         BlockBrace,
			Tags: []Tag{
				TagInterface, TagTypeAlias, TagEnum, TagClass, TagFunction,
				TagNamespace, TagModule, TagImport, TagDecorator,
			},
		},
		{
			Name:          "java",
			Display:       "Java",
			Extensions:    []string{".java"},
			LineComments:  slashComments(),
			BlockComments: cBlockComments(false),
			Strings: append([]StringDelim{
				{Open: tripleDQ, Close: tripleDQ, Escape: escBackslash, Multiline: true},
			}, quoted()...),
			Block: BlockBrace,
			Tags: []Tag{
				TagClass, TagInterface, TagEnum, TagFunction, TagImport,
				TagModule, TagDecorator, TagConstant,
			},
		},
		{
			Name:          "go",
			Display:       "Go",
			Extensions:    []string{".go"},
			Aliases:       []string{"golang"},
			LineComments:  slashComments(),
			BlockComments: cBlockComments(false),
			Strings: append([]StringDelim{
				{Open: backtick, Close: backtick, Multiline: true},
			}, quoted()...),
			Block: BlockBrace,
			Tags: []Tag{
				TagFunction, TagMethod, TagStruct, TagInterface, TagTypeAlias,
				TagConstant, TagImport, TagModule,
			},
		},
		{
			Name:         "ruby",
			Display:      "Ruby",
			Extensions:   []string{".rb", ".rake", ".gemspec"},
			Aliases:      []string{"rb"},
			LineComments: []string{"#"},
			BlockComments: []CommentPair{
				{Open: "=begin", Close: "=end", LineAnchored: true},
			},
			Strings: []StringDelim{
				{Open: dq, Close: dq, Escape: escBackslash, Multiline: true},
				{Open: sq, Close: sq, Escape: escBackslash, Multiline: true},
			},
			Block:      BlockTerminator,
			Terminator: "end",
			Tags: []Tag{
				TagClass, TagModule, TagFunction, TagConstant, TagImport, TagDecorator,
			},
		},
		{
			Name:          "php",
			Display:       "PHP",
			Extensions:    []string{".php"},
			LineComments:  []string{"//", "#"},
			BlockComments: cBlockComments(false),
			Strings: []StringDelim{
				{Open: dq, Close: dq, Escape: escBackslash, Multiline: true},
				{Open: sq, Close: sq, Escape: escBackslash, Multiline: true},
			},
			Block: BlockBrace,
			Tags: []Tag{
				TagClass, TagInterface, TagTrait, TagFunction, TagNamespace,
				TagImport, TagConstant,
			},
		},
		{
			Name:          "swift",
			Display:       "Swift",
			Extensions:    []string{".swift"},
			LineComments:  slashComments(),
			BlockComments: cBlockComments(true),
			Strings: []StringDelim{
				{Open: tripleDQ, Close: tripleDQ, Escape: escBackslash, Multiline: true},
				{Open: dq, Close: dq, Escape: escBackslash},
			},
			Block: BlockBrace,
			Tags: []Tag{
				TagClass, TagStruct, TagEnum, TagProtocol, TagExtension,
				TagFunction, TagImport, TagConstant, TagVariable,
			},
		},
		{
			Name:          "kotlin",
			Display:       "Kotlin",
			Extensions:    []string{".kt", ".kts"},
			Aliases:       []string{"kt"},
			LineComments:  slashComments(),
			BlockComments: cBlockComments(true),
			Strings:       jvmStrings(),
			Block:         BlockBrace,
			Tags: []Tag{
				TagClass, TagInterface, TagEnum, TagFunction, TagConstant,
				TagVariable, TagModule, TagImport, TagDecorator,
			},
		},
		{
			Name:          "scala",
			Display:       "Scala",
			Extensions:    []string{".scala", ".sc"},
			LineComments:  slashComments(),
			BlockComments: cBlockComments(true),
			Strings:       jvmStrings(),
			Block:         BlockBrace,
			Tags: []Tag{
				TagClass, TagTrait, TagModule, TagFunction, TagConstant,
				TagVariable, TagTypeAlias, TagImport,
			},
		},
		{
			Name:         "lua",
			Display:      "Lua",
			Extensions:   []string{".lua"},
			LineComments: []string{"--"},
			BlockComments: []CommentPair{
				{Open: "--[[", Close: "]]"},
			},
			Strings: []StringDelim{
				{Open: "[[", Close: "]]", Multiline: true},
				{Open: dq, Close: dq, Escape: escBackslash},
				{Open: sq, Close: sq, Escape: escBackslash},
			},
			Block:      BlockTerminator,
			Terminator: "end",
			Tags:       []Tag{TagFunction, TagVariable},
		},
		{
			Name:              "shell",
			Display:           "Shell",
			Extensions:        []string{".sh", ".bash", ".zsh", ".ksh"},
			Aliases:           []string{"sh", "bash", "zsh"},
			LineComments:      []string{"#"},
			WordStartComments: true,
			Strings: []StringDelim{
				{Open: dq, Close: dq, Escape: escBackslash, Multiline: true},
				{Open: sq, Close: sq, Multiline: true},
			},
			Block:      BlockTerminator,
			Terminator: "}",
			Tags:       []Tag{TagFunction, TagVariable, TagImport},
		},
		{
			Name:              "perl",
			Display:           "Perl",
			Extensions:        []string{".pl", ".pm"},
			Aliases:           []string{"pl"},
			LineComments:      []string{"#"},
			WordStartComments: true,
			BlockComments: []CommentPair{
				{Open: "=pod", Close: "=cut", LineAnchored: true},
			},
			Strings: []StringDelim{
				{Open: dq, Close: dq, Escape: escBackslash, Multiline: true},
				{Open: sq, Close: sq, Escape: escBackslash, Multiline: true},
			},
			Block: BlockBrace,
			Tags:  []Tag{TagFunction, TagModule, TagImport, TagConstant},
		},
		{
			Name:         "haskell",
			Display:      "Haskell",
			Extensions:   []string{".hs"},
			Aliases:      []string{"hs"},
			LineComments: []string{"--"},
			BlockComments: []CommentPair{
				{Open: "{-", Close: "-}", Nested: true},
			},
			Strings: []StringDelim{
				{Open: dq, Close: dq, Escape: escBackslash},
				{Open: sq, Close: sq, Escape: escBackslash, Char: true},
			},
			Block: BlockIndent,
			Tags: []Tag{
				TagModule, TagTypeAlias, TagStruct, TagClass, TagFunction, TagImport,
			},
		},
		{
			Name:         "zig",
			Display:      "Zig",
			Extensions:   []string{".zig"},
			LineComments: slashComments(),
			Strings: append([]StringDelim{
				{Open: `\\`, Close: ""},
			}, quoted()...),
			Block: BlockBrace,
			Tags: []Tag{
				TagFunction, TagStruct, TagEnum, TagUnion, TagConstant,
				TagVariable, TagImport,
			},
		},
		{
			Name:         "elixir",
			Display:      "Elixir",
			Extensions:   []string{".ex", ".exs"},
			Aliases:      []string{"ex", "exs"},
			LineComments: []string{"#"},
			Strings: []StringDelim{
				{Open: tripleDQ, Close: tripleDQ, Escape: escBackslash, Multiline: true},
				{Open: tripleSQ, Close: tripleSQ, Escape: escBackslash, Multiline: true},
				{Open: dq, Close: dq, Escape: escBackslash, Multiline: true},
				{Open: sq, Close: sq, Escape: escBackslash, Multiline: true},
			},
			Block:      BlockTerminator,
			Terminator: "end",
			Tags: []Tag{
				TagModule, TagFunction, TagProtocol, TagImpl, TagStruct, TagImport,
			},
		},
		{
			Name:          "csharp",
			Display:       "C#",
			Extensions:    []string{".cs"},
			Aliases:       []string{"cs", "c#"},
			LineComments:  slashComments(),
			BlockComments: cBlockComments(false),
			Strings: append([]StringDelim{
				{Open: tripleDQ, Close: tripleDQ, Multiline: true},
				{Open: `@"`, Close: dq, Doubled: true, Multiline: true},
			}, quoted()...),
			Block: BlockBrace,
			Tags: []Tag{
				TagClass, TagInterface, TagStruct, TagEnum, TagNamespace,
				TagFunction, TagProperty, TagImport, TagDecorator, TagConstant,
			},
		},
	}
}

func jsStrings() []StringDelim {
	return []StringDelim{
		{Open: backtick, Close: backtick, Escape: escBackslash, Multiline: true},
		{Open: dq, Close: dq, Escape: escBackslash},
		{Open: sq, Close: sq, Escape: escBackslash},
	}
}

func jvmStrings() []StringDelim {
	return append([]StringDelim{
		{Open: tripleDQ, Close: tripleDQ, Multiline: true},
	}, quoted()...)
}
