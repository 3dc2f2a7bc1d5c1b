package matcher

import "github.com/yaklabco/srcmine/pkg/lang"

// Shared fragments.
const (
	cSpecifiers  = `(?:(?:static|inline|extern|const|volatile|unsigned|signed|long|short|register|struct|enum|union|_Noreturn)\s+)*`
	cPointer     = `(?:\s+|\s*\*+\s*)`
	rustVis      = `(?:pub(?:\s*\([^)]*\))?\s+)?`
	jsExport     = `(?:export\s+)?(?:default\s+)?`
	tsDeclare    = `(?:export\s+)?(?:default\s+)?(?:declare\s+)?`
	javaMods     = `(?:(?:public|private|protected|static|final|abstract|sealed|non-sealed|strictfp)\s+)*`
	javaAnnots   = `(?:@\w[\w.]*(?:\([^)]*\))?\s+)*`
	csMods       = `(?:(?:public|private|protected|internal|static|sealed|abstract|partial|readonly|unsafe|file|required|virtual|override|async|extern|ref)\s+)*`
	csType       = `[\w.]+(?:<.*>)?(?:\[\])*\??`
	swiftMods    = `(?:(?:public|private|internal|open|fileprivate|final|static|class|override|mutating|nonmutating|indirect|convenience|required|@\w+(?:\([^)]*\))?)\s+)*`
	swiftTypeMod = `(?:(?:public|private|internal|open|fileprivate|final|indirect|@\w+(?:\([^)]*\))?)\s+)*`
	kotlinMods   = `(?:(?:public|private|protected|internal|open|abstract|sealed|data|inner|annotation|value|inline|override|suspend|operator|infix|tailrec|external|const|lateinit|final|expect|actual|@\w[\w.:]*(?:\([^)]*\))?)\s+)*`
	scalaMods    = `(?:(?:abstract|sealed|case|final|implicit|private|protected|override|lazy|inline|open|transparent)\s+|(?:private|protected)\[\w+\]\s+)*`
	zigPub       = `(?:pub\s+)?`
	cppTemplate  = `(?:template\s*<.*>\s*)?`
	typeBodyTail = `\s*(?:[:{;].*)?$`
)

func cRules() []Rule {
	return []Rule{
		keyword(lang.TagStruct, `^\s*(?:typedef\s+)?struct\s+(?P<name>\w+)\s*(?:\{.*)?$`),
		keyword(lang.TagUnion, `^\s*(?:typedef\s+)?union\s+(?P<name>\w+)\s*(?:\{.*)?$`),
		keyword(lang.TagEnum, `^\s*(?:typedef\s+)?enum\s+(?P<name>\w+)\s*(?:\{.*)?$`),
		keyword(lang.TagTypedef, `^\s*typedef\s+.+?\b(?P<name>\w+)\s*(?:\[[^\]]*\])?\s*;`),
		keyword(lang.TagTypedef, `^\s*typedef\s+.+?\(\s*\*\s*(?P<name>\w+)\s*\)\s*\(`),
		keyword(lang.TagMacro, `^\s*#\s*define\s+(?P<name>\w+)`),
		shape(lang.TagFunction, `^\s*`+cSpecifiers+`[A-Za-z_]\w*`+cPointer+`(?P<name>[A-Za-z_]\w*)\s*\(`),
		keyword(lang.TagImport, `^\s*#\s*include\s*(?P<name>.+)`),
		shape(lang.TagVariable, `^\s*(?:(?:static|extern|const|volatile|unsigned|signed|long|short|register)\s+)*`+
			`(?:char|int|float|double|void|long|short|unsigned|signed|size_t|bool|_Bool|\w+_t|struct\s+\w+|enum\s+\w+)`+
			cPointer+`(?:const\s+)?(?P<name>[A-Za-z_]\w*)\s*(?:=|;|\[)`),
	}
}

func cppRules() []Rule {
	return []Rule{
		keyword(lang.TagClass, `^\s*`+cppTemplate+`class\s+(?P<name>\w+)\s*(?:final\b)?`+typeBodyTail),
		keyword(lang.TagStruct, `^\s*`+cppTemplate+`(?:typedef\s+)?struct\s+(?P<name>\w+)\s*(?:final\b)?`+typeBodyTail),
		keyword(lang.TagEnum, `^\s*enum\s+(?:class\s+|struct\s+)?(?P<name>\w+)`),
		keyword(lang.TagNamespace, `^\s*(?:inline\s+)?namespace\s+(?P<name>[\w:]+)`),
		shape(lang.TagFunction, `^\s*`+cppTemplate+
			`(?:(?:static|inline|virtual|explicit|constexpr|consteval|constinit|extern|const|friend|unsigned|signed|long|short|volatile)\s+)*`+
			`[\w:]+(?:<.*>)?(?:\s+|\s*[*&]+\s*)(?P<name>~?[\w:]+)\s*\(`),
		shape(lang.TagFunction, `^\s*(?P<name>\w+::~?\w+)\s*\([^;]*$`),
		keyword(lang.TagMacro, `^\s*#\s*define\s+(?P<name>\w+)`),
		keyword(lang.TagImport, `^\s*#\s*include\s*(?P<name>.+)`),
		keyword(lang.TagTypeAlias, `^\s*`+cppTemplate+`using\s+(?P<name>\w+)\s*=`),
		keyword(lang.TagTypeAlias, `^\s*typedef\s+.+?\b(?P<name>\w+)\s*;`),
	}
}

func rustRules() []Rule {
	return []Rule{
		keyword(lang.TagFunction, `^\s*`+rustVis+`(?:default\s+)?(?:const\s+)?(?:async\s+)?(?:unsafe\s+)?(?:extern\s+)?fn\s+(?P<name>\w+)`),
		keyword(lang.TagStruct, `^\s*`+rustVis+`struct\s+(?P<name>\w+)`),
		keyword(lang.TagEnum, `^\s*`+rustVis+`enum\s+(?P<name>\w+)`),
		keyword(lang.TagTrait, `^\s*`+rustVis+`(?:unsafe\s+)?(?:auto\s+)?trait\s+(?P<name>\w+)`),
		// A trait impl is named by its trait, an inherent impl by its type.
		keyword(lang.TagImpl, `^\s*(?:unsafe\s+)?impl(?:\s*<.*?>)?\s+!?(?P<name>[\w:]+)`),
		keyword(lang.TagModule, `^\s*`+rustVis+`mod\s+(?P<name>\w+)`),
		keyword(lang.TagMacro, `^\s*macro_rules!\s*(?P<name>\w+)`),
		keyword(lang.TagConstant, `^\s*`+rustVis+`(?:const|static)\s+(?:mut\s+)?(?P<name>\w+)\s*:`),
		keyword(lang.TagTypeAlias, `^\s*`+rustVis+`type\s+(?P<name>\w+)`),
		keyword(lang.TagImport, `^\s*`+rustVis+`use\s+(?P<name>[^;]+)`),
		keyword(lang.TagImport, `^\s*extern\s+crate\s+(?P<name>\w+)`),
		keyword(lang.TagDecorator, `^\s*#!?\[(?P<name>\w[^\]]*)`),
	}
}

func javascriptRules() []Rule {
	return []Rule{
		keyword(lang.TagClass, `^\s*`+jsExport+`class\s+(?P<name>\w+)`),
		keyword(lang.TagFunction, `^\s*`+jsExport+`(?:async\s+)?function\s*\*?\s*(?P<name>\w+)\s*\(`),
		keyword(lang.TagFunction, `^\s*(?:export\s+)?(?:const|let|var)\s+(?P<name>\w+)\s*=\s*(?:async\s+)?(?:function\b|\([^)]*\)\s*=>|\w+\s*=>)`),
		keyword(lang.TagComponent, `^\s*`+jsExport+`(?:const|let|var)\s+(?P<name>\w+)\s*=\s*(?:React\.)?(?:memo|forwardRef|lazy)\s*\(`),
		keyword(lang.TagConstant, `^\s*(?:export\s+)?const\s+(?P<name>[A-Z][A-Z_0-9]+)\s*=`),
		keyword(lang.TagImport, `^\s*import\s+(?P<name>.+)`),
		keyword(lang.TagModule, `^\s*`+jsExport+`(?:const|let|var)\s+(?P<name>\w+)\s*=\s*require\s*\(`).statement(),
	}
}

func typescriptRules() []Rule {
	return []Rule{
		keyword(lang.TagInterface, `^\s*`+tsDeclare+`interface\s+(?P<name>\w+)`),
		keyword(lang.TagTypeAlias, `^\s*`+tsDeclare+`type\s+(?P<name>\w+)\s*(?:<.*?>)?\s*=`),
		keyword(lang.TagEnum, `^\s*`+tsDeclare+`(?:const\s+)?enum\s+(?P<name>\w+)`),
		keyword(lang.TagClass, `^\s*`+tsDeclare+`(?:abstract\s+)?class\s+(?P<name>\w+)`),
		keyword(lang.TagFunction, `^\s*`+tsDeclare+`(?:async\s+)?function\s*\*?\s*(?P<name>\w+)`),
		keyword(lang.TagFunction, `^\s*(?:export\s+)?(?:const|let|var)\s+(?P<name>\w+)\s*(?::[^=]+)?=\s*(?:async\s+)?`+
			`(?:function\b|\([^)]*\)\s*(?::[^=]+)?=>|\w+\s*=>|<[^>]*>\s*\()`),
		keyword(lang.TagNamespace, `^\s*`+tsDeclare+`namespace\s+(?P<name>[\w.]+)`),
		keyword(lang.TagModule, `^\s*`+tsDeclare+`module\s+(?P<name>[\w.]+)`),
		keyword(lang.TagModule, `^\s*`+tsDeclare+`module\s(?P<name>\s*[\w.]*\s*)\{`),
		keyword(lang.TagImport, `^\s*import\s+(?P<name>.+)`),
		keyword(lang.TagDecorator, `^\s*@(?P<name>\w[\w.]*)`),
	}
}

func javaRules() []Rule {
	return []Rule{
		keyword(lang.TagClass, `^\s*`+javaAnnots+javaMods+`(?:class|record)\s+(?P<name>\w+)`),
		keyword(lang.TagInterface, `^\s*`+javaAnnots+javaMods+`@?interface\s+(?P<name>\w+)`),
		keyword(lang.TagEnum, `^\s*`+javaAnnots+javaMods+`enum\s+(?P<name>\w+)`),
		shape(lang.TagFunction, `^\s*`+javaAnnots+
			`(?:(?:public|private|protected|static|final|synchronized|native|abstract|default|strictfp)\s+)*`+
			`(?:<[^>]+>\s+)?[\w.]+(?:<.*>)?(?:\[\])*\s+(?P<name>\w+)\s*\(`),
		keyword(lang.TagImport, `^\s*import\s+(?:static\s+)?(?P<name>[^;]+)`),
		keyword(lang.TagModule, `^\s*package\s+(?P<name>[\w.]+)`).line(),
		keyword(lang.TagDecorator, `^\s*@(?P<name>\w[\w.]*)\s*(?:\(.*)?$`),
		keyword(lang.TagConstant, `^\s*(?:(?:public|private|protected)\s+)?(?:static\s+final|final\s+static)\s+`+
			`[\w.]+(?:<.*>)?(?:\[\])*\s+(?P<name>[A-Z_][A-Z0-9_]*)\s*=`),
	}
}

func goRules() []Rule {
	return []Rule{
		keyword(lang.TagFunction, `^\s*func\s+(?P<name>\w+)\s*(?:\[.*?\])?\s*\(`),
		keyword(lang.TagMethod, `^\s*func\s*\([^)]*\)\s*(?P<name>\w+)\s*(?:\[.*?\])?\s*\(`),
		keyword(lang.TagStruct, `^\s*type\s+(?P<name>\w+)(?:\[.*?\])?\s+struct\b`),
		keyword(lang.TagInterface, `^\s*type\s+(?P<name>\w+)(?:\[.*?\])?\s+interface\b`),
		keyword(lang.TagTypeAlias, `^\s*type\s+(?P<name>\w+)(?:\[.*?\])?\s*=?\s*[\w*\[(]`).
			rejecting(`^\s*type\s+\w+(?:\[.*?\])?\s+(?:struct|interface)\b`),
		keyword(lang.TagTypeAlias, `^\s*type\s+(?P<name>\()`),
		keyword(lang.TagConstant, `^\s*(?:const|var)\s+(?P<name>\w+|\()`),
		keyword(lang.TagImport, `^\s*import\s+(?P<name>.+)`),
		keyword(lang.TagModule, `^\s*package\s+(?P<name>\w+)`).line(),
	}
}

func rubyRules() []Rule {
	return []Rule{
		keyword(lang.TagClass, `^\s*class\s+(?P<name>[A-Z][\w:]*)`),
		keyword(lang.TagModule, `^\s*module\s+(?P<name>[A-Z][\w:]*)`),
		keyword(lang.TagFunction, `^\s*(?:(?:private|protected|public|module_function)\s+)?def\s+(?:self\.)?(?P<name>\w+[?!=]?)`),
		keyword(lang.TagConstant, `^\s*(?P<name>[A-Z][A-Z_0-9]+)\s*=(?:[^=~]|$)`),
		keyword(lang.TagImport, `^\s*(?:require|require_relative|load)\s+(?P<name>.+)`),
		keyword(lang.TagDecorator, `^\s*attr_(?:reader|writer|accessor)\s+(?P<name>.+)`),
	}
}

func phpRules() []Rule {
	return []Rule{
		keyword(lang.TagClass, `^\s*(?:(?:abstract|final|readonly)\s+)*class\s+(?P<name>\w+)`),
		keyword(lang.TagInterface, `^\s*interface\s+(?P<name>\w+)`),
		keyword(lang.TagTrait, `^\s*trait\s+(?P<name>\w+)`),
		keyword(lang.TagFunction, `^\s*(?:(?:public|private|protected|static|abstract|final)\s+)*function\s+&?\s*(?P<name>\w+)\s*\(`),
		keyword(lang.TagNamespace, `^\s*namespace\s+(?P<name>[\w\\]+)`).statement(),
		keyword(lang.TagImport, `^\s*(?:use|require|require_once|include|include_once)\b\s*(?P<name>[^;]+)`),
		keyword(lang.TagConstant, `^\s*(?:(?:public|private|protected|final)\s+)*const\s+(?:\w+\s+)?(?P<name>\w+)\s*=`),
		keyword(lang.TagConstant, `^\s*define\s*\((?P<name>[^,]+),`),
	}
}

func swiftRules() []Rule {
	return []Rule{
		keyword(lang.TagClass, `^\s*`+swiftTypeMod+`class\s+(?P<name>\w+)`),
		keyword(lang.TagStruct, `^\s*`+swiftTypeMod+`struct\s+(?P<name>\w+)`),
		keyword(lang.TagEnum, `^\s*`+swiftTypeMod+`enum\s+(?P<name>\w+)`),
		keyword(lang.TagProtocol, `^\s*`+swiftTypeMod+`protocol\s+(?P<name>\w+)`),
		keyword(lang.TagExtension, `^\s*`+swiftTypeMod+`extension\s+(?P<name>[\w.]+)`),
		keyword(lang.TagFunction, `^\s*`+swiftMods+`func\s+(?P<name>\w+)`),
		keyword(lang.TagImport, `^\s*(?:@testable\s+)?import\s+(?:(?:class|struct|enum|protocol|func|typealias)\s+)?(?P<name>[\w.]+)`).line(),
		keyword(lang.TagConstant, `^\s*`+swiftMods+`let\s+(?P<name>\w+)`),
		keyword(lang.TagVariable, `^\s*`+swiftMods+`(?:lazy\s+|weak\s+|unowned\s+)?var\s+(?P<name>\w+)`),
	}
}

func kotlinRules() []Rule {
	return []Rule{
		keyword(lang.TagClass, `^\s*`+kotlinMods+`class\s+(?P<name>\w+)`),
		keyword(lang.TagInterface, `^\s*`+kotlinMods+`(?:fun\s+)?interface\s+(?P<name>\w+)`),
		keyword(lang.TagEnum, `^\s*`+kotlinMods+`enum\s+class\s+(?P<name>\w+)`),
		keyword(lang.TagFunction, `^\s*`+kotlinMods+`fun\s+(?:<[^>]+>\s+)?(?:[\w.<>?]+\.)?(?P<name>\w+)\s*\(`),
		keyword(lang.TagConstant, `^\s*`+kotlinMods+`val\s+(?P<name>\w+)`),
		keyword(lang.TagVariable, `^\s*`+kotlinMods+`var\s+(?P<name>\w+)`),
		keyword(lang.TagModule, `^\s*`+kotlinMods+`(?:companion\s+|data\s+)?object\s+(?P<name>\w+)`),
		keyword(lang.TagModule, `^\s*`+kotlinMods+`companion\s+object\b(?P<name>)`),
		keyword(lang.TagImport, `^\s*import\s+(?P<name>.+)`),
		keyword(lang.TagDecorator, `^\s*@(?P<name>\w[\w.:]*)\s*(?:\(.*)?$`),
	}
}

func scalaRules() []Rule {
	return []Rule{
		keyword(lang.TagClass, `^\s*`+scalaMods+`class\s+(?P<name>\w+)`),
		keyword(lang.TagTrait, `^\s*`+scalaMods+`trait\s+(?P<name>\w+)`),
		keyword(lang.TagModule, `^\s*`+scalaMods+`object\s+(?P<name>\w+)`),
		keyword(lang.TagFunction, `^\s*`+scalaMods+`def\s+(?P<name>\w+)`),
		keyword(lang.TagConstant, `^\s*`+scalaMods+`val\s+(?P<name>\w+)`),
		keyword(lang.TagVariable, `^\s*`+scalaMods+`var\s+(?P<name>\w+)`),
		keyword(lang.TagTypeAlias, `^\s*`+scalaMods+`type\s+(?P<name>\w+)`),
		keyword(lang.TagImport, `^\s*import\s+(?P<name>.+)`),
	}
}

func luaRules() []Rule {
	return []Rule{
		keyword(lang.TagFunction, `^\s*(?:local\s+)?function\s+(?P<name>[\w.:]+)\s*\(`),
		keyword(lang.TagFunction, `^\s*(?:local\s+)?(?P<name>[\w.]+)\s*=\s*function\s*\(`),
		keyword(lang.TagVariable, `^\s*local\s+(?P<name>\w+)\s*=`),
	}
}

func shellRules() []Rule {
	return []Rule{
		keyword(lang.TagFunction, `^\s*(?:function\s+)?(?P<name>[\w.:-]+)\s*\(\s*\)`),
		keyword(lang.TagFunction, `^\s*function\s+(?P<name>[\w.:-]+)`),
		keyword(lang.TagVariable, `^\s*(?:(?:export|readonly|local|typeset|declare(?:\s+-\w+)*)\s+)?(?P<name>[A-Z_][A-Z_0-9]*)=`),
		keyword(lang.TagImport, `^\s*(?:source|\.)\s+(?P<name>.+)`),
	}
}

func perlRules() []Rule {
	return []Rule{
		keyword(lang.TagFunction, `^\s*sub\s+(?P<name>\w+)`),
		keyword(lang.TagModule, `^\s*package\s+(?P<name>\w[\w:]*)`).statement(),
		keyword(lang.TagConstant, `^\s*use\s+constant\s+(?P<name>\w+|\{)`),
		keyword(lang.TagImport, `^\s*(?:use|require|no)\s+(?P<name>[^;]+)`).rejecting(`^\s*use\s+constant\b`),
	}
}

func haskellRules() []Rule {
	return []Rule{
		keyword(lang.TagModule, `^\s*module\s+(?P<name>[\w.]+)`),
		keyword(lang.TagTypeAlias, `^\s*type\s+(?:family\s+)?(?P<name>\w+)`),
		keyword(lang.TagStruct, `^\s*(?:data|newtype)\s+(?P<name>\w+)`),
		keyword(lang.TagClass, `^\s*class\s+(?:.*=>\s*)?(?P<name>\w+)`),
		keyword(lang.TagFunction, `^(?P<name>[a-z_][\w']*)\s*::`),
		keyword(lang.TagImport, `^\s*import\s+(?:qualified\s+)?(?P<name>.+)`),
	}
}

func zigRules() []Rule {
	return []Rule{
		keyword(lang.TagFunction, `^\s*`+zigPub+`(?:export\s+|extern\s+|inline\s+)?fn\s+(?P<name>\w+)`),
		keyword(lang.TagStruct, `^\s*`+zigPub+`const\s+(?P<name>\w+)\s*=\s*(?:extern\s+|packed\s+)?struct\b`),
		keyword(lang.TagEnum, `^\s*`+zigPub+`const\s+(?P<name>\w+)\s*=\s*(?:extern\s+)?enum\b`),
		keyword(lang.TagUnion, `^\s*`+zigPub+`const\s+(?P<name>\w+)\s*=\s*(?:extern\s+|packed\s+)?union\b`),
		keyword(lang.TagImport, `^\s*`+zigPub+`const\s+(?P<name>\w+)\s*=\s*@import\(`),
		keyword(lang.TagConstant, `^\s*`+zigPub+`const\s+(?P<name>\w+)\s*(?::[^=]+)?=`),
		keyword(lang.TagVariable, `^\s*`+zigPub+`var\s+(?P<name>\w+)`),
	}
}

func elixirRules() []Rule {
	return []Rule{
		keyword(lang.TagModule, `^\s*defmodule\s+(?P<name>[\w.]+)`),
		keyword(lang.TagFunction, `^\s*(?:def|defp|defmacro|defmacrop|defguard|defguardp)\s+(?P<name>\w+[?!]?)`),
		keyword(lang.TagProtocol, `^\s*defprotocol\s+(?P<name>[\w.]+)`),
		keyword(lang.TagImpl, `^\s*defimpl\s+(?P<name>[\w.]+)`),
		keyword(lang.TagStruct, `^\s*defstruct\s+(?P<name>.+)`).statement(),
		keyword(lang.TagImport, `^\s*(?:import|alias|use|require)\s+(?P<name>.+)`),
	}
}

func csharpRules() []Rule {
	return []Rule{
		keyword(lang.TagClass, `^\s*`+csMods+`(?:record\s+class|class|record)\s+(?P<name>\w+)`),
		keyword(lang.TagInterface, `^\s*`+csMods+`interface\s+(?P<name>\w+)`),
		keyword(lang.TagStruct, `^\s*`+csMods+`(?:record\s+)?struct\s+(?P<name>\w+)`),
		keyword(lang.TagEnum, `^\s*`+csMods+`enum\s+(?P<name>\w+)`),
		keyword(lang.TagNamespace, `^\s*namespace\s+(?P<name>[\w.]+)`),
		shape(lang.TagFunction, `^\s*`+csMods+`(?:`+csType+`\s+)?(?P<name>\w+)\s*(?:<[^()]*>)?\s*\(`).
			rejecting(`^\s*\w+\s*\(`),
		shape(lang.TagProperty, `^\s*`+csMods+csType+`\s+(?P<name>\w+)\s*(?:\{|=>)`),
		keyword(lang.TagImport, `^\s*(?:global\s+)?using\s+(?:static\s+)?(?P<name>[\w.]+(?:\s*=\s*[\w.<>]+)?)\s*;`),
		keyword(lang.TagDecorator, `^\s*\[(?P<name>\w[\w.]*)(?:\(.*)?\]?\s*$`),
		keyword(lang.TagConstant, `^\s*`+csMods+`const\s+`+csType+`\s+(?P<name>\w+)\s*=`),
	}
}

func pythonRules() []Rule {
	return []Rule{
		keyword(lang.TagClass, `^\s*class\s+(?P<name>\w+)\s*[(:\[]`),
		keyword(lang.TagFunction, `^\s*(?:async\s+)?def\s+(?P<name>\w+)\s*[(\[]`),
		keyword(lang.TagDecorator, `^\s*@(?P<name>\w[\w.]*)`),
		keyword(lang.TagImport, `^\s*(?:from\s+\S+\s+)?import\s+(?P<name>.+)`),
		keyword(lang.TagVariable, `^\s*(?P<name>[A-Z][A-Z_0-9]+)\s*(?::[^=]*)?=(?:[^=]|$)`),
	}
}

// builtinRules returns the rule tables keyed by language identifier. Rule
// order is the declaration order used by the tie-break.
func builtinRules() map[string][]Rule {
	return map[string][]Rule{
		"python":     pythonRules(),
		"c":          cRules(),
		"cpp":        cppRules(),
		"rust":       rustRules(),
		"javascript": javascriptRules(),
		"typescript": typescriptRules(),
		"java":       javaRules(),
		"go":         goRules(),
		"ruby":       rubyRules(),
		"php":        phpRules(),
		"swift":      swiftRules(),
		"kotlin":     kotlinRules(),
		"scala":      scalaRules(),
		"lua":        luaRules(),
		"shell":      shellRules(),
		"perl":       perlRules(),
		"haskell":    haskellRules(),
		"zig":        zigRules(),
		"elixir":     elixirRules(),
		"csharp":     csharpRules(),
	}
}
