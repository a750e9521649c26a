package runner

import (
	"fmt"

	"github.com/awwright/grammarswiki-sub003/regexsynth"
)

// DialectByName maps the CLI's --dialect flag values to the regex flavors
// regexsynth can emit.
func DialectByName(name string) (regexsynth.DialectSpec, error) {
	switch name {
	case "", "ecmascript", "js":
		return regexsynth.ECMAScript, nil
	case "pcre":
		return regexsynth.PCRE, nil
	case "pcre2":
		return regexsynth.PCRE2, nil
	case "java":
		return regexsynth.Java, nil
	case "python":
		return regexsynth.Python, nil
	case "ruby":
		return regexsynth.Ruby, nil
	case "perl":
		return regexsynth.Perl, nil
	case "re2":
		return regexsynth.RE2, nil
	case "rust":
		return regexsynth.Rust, nil
	case "go":
		return regexsynth.GoRegexp, nil
	case "swift":
		return regexsynth.Swift, nil
	case "posix-bre":
		return regexsynth.PosixBRE, nil
	case "posix-ere":
		return regexsynth.PosixERE, nil
	case "iregexp":
		return regexsynth.IRegexp, nil
	default:
		return regexsynth.DialectSpec{}, fmt.Errorf("unknown dialect %q", name)
	}
}
