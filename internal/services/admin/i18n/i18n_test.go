package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       language.Tag
	}{
		{name: "empty", want: language.English},
		{name: "flag wins", candidates: []string{"pt-BR", "en_US.UTF-8"}, want: language.MustParse("pt-BR")},
		{name: "posix locale", candidates: []string{"", "pt_BR.UTF-8"}, want: language.MustParse("pt-BR")},
		{name: "c locale falls through", candidates: []string{"C", "pt_BR"}, want: language.MustParse("pt-BR")},
		{name: "garbage", candidates: []string{"!!"}, want: language.English},
		{name: "english", candidates: []string{"en"}, want: language.English},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveTag(tc.candidates...); got != tc.want {
				t.Fatalf("ResolveTag(%v) = %v, want %v", tc.candidates, got, tc.want)
			}
		})
	}
}

func TestPrinterTranslatesLabels(t *testing.T) {
	pt := Printer(language.MustParse("pt-BR"))
	if got := pt.Sprintf("Error: %s", "falhou"); got != "Erro: falhou" {
		t.Fatalf("unexpected pt-BR label %q", got)
	}
	en := Printer(language.English)
	if got := en.Sprintf("Error: %s", "failed"); got != "Error: failed" {
		t.Fatalf("unexpected en label %q", got)
	}
}

func TestPrinterGroupsNumbers(t *testing.T) {
	if got := Printer(language.English).Sprintf("%d", 1234567); got != "1,234,567" {
		t.Fatalf("unexpected en grouping %q", got)
	}
}

func TestConfirms(t *testing.T) {
	pt := language.MustParse("pt-BR")
	tests := []struct {
		tag    language.Tag
		answer string
		want   bool
	}{
		{tag: language.English, answer: "y", want: true},
		{tag: language.English, answer: " YES ", want: true},
		{tag: language.English, answer: "s", want: false},
		{tag: language.English, answer: "", want: false},
		{tag: pt, answer: "sim", want: true},
		{tag: pt, answer: "y", want: true},
		{tag: pt, answer: "n", want: false},
	}
	for _, tc := range tests {
		if got := Confirms(tc.tag, tc.answer); got != tc.want {
			t.Fatalf("Confirms(%v, %q) = %v, want %v", tc.tag, tc.answer, got, tc.want)
		}
	}
}

func TestSupportedReturnsCopy(t *testing.T) {
	tags := Supported()
	tags[0] = language.French
	if Supported()[0] != language.English {
		t.Fatal("expected Supported to return a copy")
	}
}
