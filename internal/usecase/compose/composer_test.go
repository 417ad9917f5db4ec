package compose

import (
	"fmt"
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/kailas-cloud/filacolia/internal/domain/answer/mode"
	"github.com/kailas-cloud/filacolia/internal/domain/corpus"
	"github.com/kailas-cloud/filacolia/internal/domain/ranking"
	"github.com/kailas-cloud/filacolia/internal/usecase/rank"
)

func scoredDoc(t *testing.T, content, chapter, volume string, score int) ranking.Scored {
	t.Helper()
	d, err := corpus.NewDocument(content, volume, chapter, "src-"+chapter)
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return ranking.New(d, score)
}

func TestCompose_NotFound(t *testing.T) {
	for _, m := range []mode.Mode{mode.Short, mode.Full} {
		t.Run(string(m), func(t *testing.T) {
			a := Compose("xyz123", nil, m)
			if a.Content() != NotFoundMessage {
				t.Errorf("content = %q", a.Content())
			}
			if a.HasMoreDetails() {
				t.Error("expected HasMoreDetails = false")
			}
			if a.Mode() != m {
				t.Errorf("mode = %q, want %q", a.Mode(), m)
			}
		})
	}
}

func TestCompose_ShortFromDefaultCorpus(t *testing.T) {
	query := "oração do coração"
	ranked := rank.Rank(query, corpus.Default())

	a := Compose(query, ranked, mode.Short)
	if a.Mode() != mode.Short {
		t.Errorf("mode = %q", a.Mode())
	}
	if !a.HasMoreDetails() {
		t.Error("expected HasMoreDetails = true")
	}

	suffix := "\n\n" + MoreDetailsPrompt
	if !strings.HasSuffix(a.Content(), suffix) {
		t.Fatalf("missing prompt: %q", a.Content())
	}
	excerpt := strings.TrimSuffix(a.Content(), suffix)
	if !strings.HasSuffix(excerpt, Ellipsis) {
		t.Errorf("excerpt does not end with ellipsis: %q", excerpt)
	}
	if n := utf8.RuneCountInString(excerpt); n > MaxShortLen+len(Ellipsis) {
		t.Errorf("excerpt has %d characters, want <= %d", n, MaxShortLen+len(Ellipsis))
	}
	if !strings.HasPrefix(excerpt, "A oração do coração é uma prática fundamental") {
		t.Errorf("excerpt not taken from the top document: %q", excerpt)
	}
}

func TestCompose_ShortTruncates(t *testing.T) {
	long := strings.Repeat("palavra ", 60) // 480 characters, no sentence punctuation
	a := Compose("palavra", []ranking.Scored{scoredDoc(t, long, "C", "V", 10)}, mode.Short)

	excerpt := strings.TrimSuffix(a.Content(), Ellipsis+"\n\n"+MoreDetailsPrompt)
	if n := utf8.RuneCountInString(excerpt); n != MaxShortLen {
		t.Errorf("excerpt has %d characters, want %d", n, MaxShortLen)
	}
}

func TestCompose_ShortTruncatesOnCharacterBoundary(t *testing.T) {
	long := strings.Repeat("ção ", 100)
	a := Compose("ção", []ranking.Scored{scoredDoc(t, long, "C", "V", 10)}, mode.Short)
	if !utf8.ValidString(a.Content()) {
		t.Fatal("truncation split a multi-byte character")
	}
}

func TestCompose_ShortUsesFirstSentenceOfLongParagraph(t *testing.T) {
	first := "A vigilância do coração guarda a alma de todo pensamento vão"
	rest := strings.Repeat(" E a oração incessante sustenta o monge em todas as horas do dia.", 5)
	content := first + "." + rest

	a := Compose("vigilância", []ranking.Scored{scoredDoc(t, content, "C", "V", 10)}, mode.Short)
	want := first + Ellipsis + "\n\n" + MoreDetailsPrompt
	if a.Content() != want {
		t.Errorf("content = %q, want %q", a.Content(), want)
	}
}

func TestCompose_ShortFallsBackToRawContent(t *testing.T) {
	a := Compose("jejum", []ranking.Scored{scoredDoc(t, "O jejum.", "C", "V", 3)}, mode.Short)
	want := "O jejum." + Ellipsis + "\n\n" + MoreDetailsPrompt
	if a.Content() != want {
		t.Errorf("content = %q, want %q", a.Content(), want)
	}
	if !a.HasMoreDetails() {
		t.Error("expected HasMoreDetails = true")
	}
}

func TestCompose_Full(t *testing.T) {
	ranked := []ranking.Scored{
		scoredDoc(t, "Primeiro conteúdo.", "Sobre a Oração", "Tomo 1, Volume 1", 27),
		scoredDoc(t, "Segundo conteúdo.", "Vida Ascética", "Tomo 2, Volume 1", 3),
	}

	a := Compose("oração", ranked, mode.Full)
	want := "Encontrei 2 trechos relevantes na Filacolia:\n\n" +
		"**1. Sobre a Oração** (Tomo 1, Volume 1)\nPrimeiro conteúdo.\n\n" +
		"**2. Vida Ascética** (Tomo 2, Volume 1)\nSegundo conteúdo.\n\n"
	if a.Content() != want {
		t.Errorf("content =\n%q\nwant\n%q", a.Content(), want)
	}
	if a.HasMoreDetails() {
		t.Error("full answers never have more details")
	}
	if a.Mode() != mode.Full {
		t.Errorf("mode = %q", a.Mode())
	}
}

func TestCompose_ShortThenFullRoundTrip(t *testing.T) {
	c := corpus.Default()
	for _, q := range []string{"oração do coração", "padres", "amor", "humildade"} {
		ranked := rank.Rank(q, c)
		s := Compose(q, ranked, mode.Short)
		if !s.HasMoreDetails() {
			t.Fatalf("%q: short answer should offer more details", q)
		}

		// asking for more details reruns the same query in full mode
		f := Compose(q, rank.Rank(q, c), mode.Full)
		header := fmt.Sprintf("Encontrei %d trechos", len(ranked))
		if !strings.HasPrefix(f.Content(), header) {
			t.Errorf("%q: full answer header = %q", q, f.Content())
		}
		top := ranked[0].Document()
		if !strings.Contains(f.Content(), top.Content()) {
			t.Errorf("%q: full answer misses the short answer's document", q)
		}
	}
}

func TestCompose_UnknownModeIsFull(t *testing.T) {
	ranked := []ranking.Scored{scoredDoc(t, "Conteúdo qualquer.", "C", "V", 3)}
	a := Compose("q", ranked, mode.Mode("outro"))
	if a.Mode() != mode.Full || a.HasMoreDetails() {
		t.Errorf("unexpected answer mode=%q more=%v", a.Mode(), a.HasMoreDetails())
	}
}

func TestExcerpts_Paragraphs(t *testing.T) {
	p1 := "Este é um parágrafo suficientemente longo para ser um trecho válido."
	p2 := "Curto demais."
	p3 := "Outro parágrafo com tamanho bastante para sobreviver aos filtros."
	content := p1 + "\n\n" + p2 + "\n \t\n" + p3

	got := slices.Collect(Excerpts(content))
	want := []string{p1, p3}
	if !slices.Equal(got, want) {
		t.Errorf("Excerpts = %q, want %q", got, want)
	}
}

func TestExcerpts_LongParagraphSplitsIntoSentences(t *testing.T) {
	s1 := "A primeira sentença tem tamanho de sobra para ser um trecho"
	s2 := "Curta"
	s3 := " Terceira sentença também longa o suficiente para aparecer aqui"
	filler := strings.Repeat(" Mais uma sentença de enchimento para passar do limite", 4)
	content := s1 + "!" + s2 + "?" + s3 + "..." + filler

	got := slices.Collect(Excerpts(content))
	if len(got) < 2 {
		t.Fatalf("expected sentence fragments, got %q", got)
	}
	if got[0] != s1 || got[1] != s3 {
		t.Errorf("first fragments = %q, %q", got[0], got[1])
	}
	for _, f := range got {
		if trimmedLen(f) <= minFragmentLen {
			t.Errorf("fragment too short: %q", f)
		}
	}
}

func TestExcerpts_Empty(t *testing.T) {
	for _, c := range []string{"", "curto", "x\n\ny"} {
		if got := slices.Collect(Excerpts(c)); len(got) != 0 {
			t.Errorf("Excerpts(%q) = %q, want empty", c, got)
		}
	}
}

func TestExcerpts_Restartable(t *testing.T) {
	seq := Excerpts(strings.Repeat("Um parágrafo longo o suficiente para contar como trecho.\n\n", 3))
	a := slices.Collect(seq)
	b := slices.Collect(seq)
	if len(a) != 3 || !slices.Equal(a, b) {
		t.Errorf("sequence not restartable: %q vs %q", a, b)
	}

	n := 0
	for range seq {
		n++
		break
	}
	if n != 1 {
		t.Errorf("early stop yielded %d items", n)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"abc", 5, "abc"},
		{"abcdef", 3, "abc"},
		{"coração", 4, "cora"},
		{"çãé", 2, "çã"},
		{"", 3, ""},
	}
	for _, tc := range tests {
		if got := truncate(tc.in, tc.n); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
		}
	}
}
