// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package naming

var cReserved = []string{
	"auto", "break", "case", "char", "const", "continue", "default", "do",
	"double", "else", "enum", "extern", "float", "for", "goto", "if",
	"inline", "int", "long", "register", "restrict", "return", "short",
	"signed", "sizeof", "static", "struct", "switch", "typedef", "union",
	"unsigned", "void", "volatile", "while", "bool", "true", "false",
}

var objcReserved = []string{
	"id", "self", "super", "nil", "Nil", "YES", "NO", "BOOL", "SEL", "IMP",
	"Class", "in", "out", "inout", "bycopy", "byref", "oneway", "description",
	"hash", "retain", "release", "autorelease", "copy", "new", "init",
}

var phpReserved = []string{
	"abstract", "and", "array", "as", "break", "callable", "case", "catch",
	"class", "clone", "const", "continue", "declare", "default", "do", "echo",
	"else", "elseif", "empty", "enddeclare", "endfor", "endforeach", "endif",
	"endswitch", "endwhile", "eval", "exit", "extends", "final", "finally",
	"fn", "for", "foreach", "function", "global", "goto", "if", "implements",
	"include", "instanceof", "insteadof", "interface", "isset", "list",
	"match", "namespace", "new", "or", "print", "private", "protected",
	"public", "readonly", "require", "return", "static", "switch", "throw",
	"trait", "try", "unset", "use", "var", "while", "xor", "yield",
}

var rubyReserved = []string{
	"BEGIN", "END", "alias", "and", "begin", "break", "case", "class", "def",
	"defined?", "do", "else", "elsif", "end", "ensure", "false", "for", "if",
	"in", "module", "next", "nil", "not", "or", "redo", "rescue", "retry",
	"return", "self", "super", "then", "true", "undef", "unless", "until",
	"when", "while", "yield",
}

var jsReserved = []string{
	"await", "break", "case", "catch", "class", "const", "continue",
	"debugger", "default", "delete", "do", "else", "enum", "export",
	"extends", "false", "finally", "for", "function", "if", "implements",
	"import", "in", "instanceof", "interface", "let", "new", "null",
	"package", "private", "protected", "public", "return", "static", "super",
	"switch", "this", "throw", "true", "try", "typeof", "var", "void",
	"while", "with", "yield",
}

var javaReserved = []string{
	"abstract", "assert", "boolean", "break", "byte", "case", "catch", "char",
	"class", "const", "continue", "default", "do", "double", "else", "enum",
	"extends", "final", "finally", "float", "for", "goto", "if",
	"implements", "import", "instanceof", "int", "interface", "long",
	"native", "new", "package", "private", "protected", "public", "return",
	"short", "static", "strictfp", "super", "switch", "synchronized", "this",
	"throw", "throws", "transient", "try", "void", "volatile", "while",
	"true", "false", "null", "var", "record", "yield",
}

// goReserved holds Go keywords plus the package and parameter names
// generated Go code refers to.
var goReserved = []string{
	"break", "case", "chan", "const", "continue", "default", "defer", "else",
	"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
	"map", "package", "range", "return", "select", "struct", "switch", "type",
	"var",
	"baseURL", "context", "ctx", "http", "strings", "url", "xml",
}

var kotlinReserved = []string{
	"as", "break", "class", "continue", "do", "else", "false", "for", "fun",
	"if", "in", "interface", "is", "null", "object", "package", "return",
	"super", "this", "throw", "true", "try", "typealias", "typeof", "val",
	"var", "when", "while",
}
