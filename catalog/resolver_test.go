package catalog

import (
	"errors"
	"testing"

	"github.com/awwright/grammarswiki-sub003/abnf"
)

func mustParse(t *testing.T, src string) abnf.Rulelist {
	t.Helper()
	rl, err := abnf.ParseRulelist(abnf.Normalize([]byte(src)))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return rl
}

func TestDereferenceInlinesImport(t *testing.T) {
	root := mustParse(t, "top = <import other.abnf greeting>\n")
	other := mustParse(t, "greeting = \"hello\"\n")

	loader := func(filename string) (abnf.Rulelist, error) {
		if filename == "other.abnf" {
			return other, nil
		}
		return abnf.Rulelist{}, errors.New("not found")
	}

	out, err := Dereference(root, loader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dict := out.Dictionary()
	if _, ok := dict["greeting"]; !ok {
		t.Fatalf("expected imported rule 'greeting' to be present: %+v", dict)
	}
	topElem := dict["top"].Alternation.Concatenations[0].Repetitions[0].Element
	if topElem.Kind != abnf.ElementRulename || topElem.Rulename != "greeting" {
		t.Fatalf("expected top's import to become a rulename reference, got %+v", topElem)
	}
}

func TestDereferenceLocalOverridesImport(t *testing.T) {
	root := mustParse(t, "top = <import other.abnf greeting>\ngreeting = \"local\"\n")
	other := mustParse(t, "greeting = \"remote\"\n")
	loader := func(string) (abnf.Rulelist, error) { return other, nil }

	out, err := Dereference(root, loader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dict := out.Dictionary()
	text := dict["greeting"].Alternation.Concatenations[0].Repetitions[0].Element.CharVal.Text
	if text != "local" {
		t.Fatalf("expected local definition to win, got %q", text)
	}
}

func TestDereferenceUnknownImport(t *testing.T) {
	root := mustParse(t, "top = <import other.abnf missing>\n")
	other := mustParse(t, "greeting = \"hello\"\n")
	loader := func(string) (abnf.Rulelist, error) { return other, nil }

	_, err := Dereference(root, loader)
	var ui *UnknownImport
	if !errors.As(err, &ui) {
		t.Fatalf("expected *UnknownImport, got %v", err)
	}
}

func TestDereferenceCircularImport(t *testing.T) {
	root := mustParse(t, "top = <import a.abnf a>\n")
	fileA := mustParse(t, "a = <import b.abnf b>\n")
	fileB := mustParse(t, "b = <import a.abnf a>\n")
	loader := func(filename string) (abnf.Rulelist, error) {
		switch filename {
		case "a.abnf":
			return fileA, nil
		case "b.abnf":
			return fileB, nil
		}
		return abnf.Rulelist{}, errors.New("not found")
	}

	_, err := Dereference(root, loader)
	var ci *CircularImport
	if !errors.As(err, &ci) {
		t.Fatalf("expected *CircularImport, got %v", err)
	}
}
