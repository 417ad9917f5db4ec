package corpus

// Default returns the built-in Filocalia corpus.
// Each call returns a fresh Corpus, so callers may hold it for the process lifetime.
func Default() *Corpus {
	return build([]Document{
		{
			content: "A oração do coração é uma prática fundamental na tradição ortodoxa. " +
				"Os Padres ensinam que através da oração contínua e da vigilância espiritual, " +
				"podemos combater as tentações da carne e aproximar-nos de Deus.",
			volume:  "Tomo 1, Volume 1",
			chapter: "Sobre a Oração",
			source:  "filocalia-tomo-1-volume-1",
		},
		{
			content: "A humildade é considerada a mãe de todas as virtudes. " +
				"Os Padres da Igreja ensinam que sem humildade, nenhuma virtude pode ser verdadeiramente adquirida. " +
				"É através da humildade que reconhecemos nossa dependência de Deus.",
			volume:  "Tomo 1, Volume 2",
			chapter: "Sobre a Humildade",
			source:  "filocalia-tomo-1-volume-2",
		},
		{
			content: "A vida ascética é o caminho da renúncia e da disciplina espiritual. " +
				"Os monges e ascetas buscam purificar suas almas através do jejum, da vigília e da oração contínua, " +
				"seguindo o exemplo de Cristo no deserto.",
			volume:  "Tomo 2, Volume 1",
			chapter: "Vida Ascética",
			source:  "filocalia-tomo-2-volume-1",
		},
		{
			content: "O amor ao próximo é essencial na vida cristã. " +
				"Como ensinam os Padres, não podemos amar a Deus sem amar nosso irmão. " +
				"O amor verdadeiro se manifesta através de atos de caridade e compaixão.",
			volume:  "Tomo 2, Volume 2",
			chapter: "Sobre o Amor",
			source:  "filocalia-tomo-2-volume-2",
		},
		{
			content: "A paciência é uma virtude fundamental que nos ajuda a suportar as provações da vida. " +
				"Os Padres ensinam que através da paciência, desenvolvemos a fortaleza espiritual " +
				"e nos tornamos mais semelhantes a Cristo.",
			volume:  "Tomo 2, Volume 3",
			chapter: "Sobre a Paciência",
			source:  "filocalia-tomo-2-volume-3",
		},
	})
}
