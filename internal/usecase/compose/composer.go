package compose

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/filacolia/internal/domain/answer"
	"github.com/kailas-cloud/filacolia/internal/domain/answer/mode"
	"github.com/kailas-cloud/filacolia/internal/domain/ranking"
)

// Fixed answer texts.
const (
	NotFoundMessage = "Desculpe, não encontrei informações específicas sobre isso na Filacolia. " +
		"Pode reformular sua pergunta?"
	MoreDetailsPrompt = "Gostaria de ver mais detalhes sobre este assunto?"
	Ellipsis          = "..."
)

// MaxShortLen is the maximum excerpt length of a short answer, in characters.
const MaxShortLen = 300

// Compose builds the answer for query from ranked documents (best first).
// Unknown modes are composed as full answers.
func Compose(query string, ranked []ranking.Scored, m mode.Mode) answer.Answer {
	if m != mode.Short {
		m = mode.Full
	}
	if len(ranked) == 0 {
		return answer.New(NotFoundMessage, m, false)
	}

	if m == mode.Short {
		return answer.New(short(ranked[0]), mode.Short, true)
	}
	return answer.New(full(ranked), mode.Full, false)
}

func short(top ranking.Scored) string {
	doc := top.Document()
	excerpt := truncate(firstExcerpt(doc.Content()), MaxShortLen)
	return excerpt + Ellipsis + "\n\n" + MoreDetailsPrompt
}

func full(ranked []ranking.Scored) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Encontrei %d trechos relevantes na Filacolia:\n\n", len(ranked))
	for i := range ranked {
		doc := ranked[i].Document()
		fmt.Fprintf(&b, "**%d. %s** (%s)\n", i+1, doc.Chapter(), doc.Volume())
		b.WriteString(doc.Content())
		b.WriteString("\n\n")
	}
	return b.String()
}
