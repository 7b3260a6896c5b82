package arasaac

import "strings"

// categoryKeywords mapeia nomes de categoria (com e sem acento, e aliases em inglês)
// para as palavras-chave buscadas no catálogo
var categoryKeywords = map[string][]string{}

func init() {
	groups := []struct {
		names    []string
		keywords []string
	}{
		{[]string{"emoções", "emocoes", "emotions"}, []string{"feliz", "triste", "raiva", "medo", "amor", "surpresa", "nojo"}},
		{[]string{"alimentação", "alimentacao", "comida", "food"}, []string{"comida", "bebida", "frutas", "legumes", "pão", "leite", "água", "café"}},
		{[]string{"lugares", "places"}, []string{"casa", "escola", "hospital", "parque", "praia", "igreja", "mercado"}},
		{[]string{"pessoas", "família", "familia", "people", "family"}, []string{"mãe", "pai", "irmão", "avó", "avô", "amigo", "bebê", "professor"}},
		{[]string{"necessidades", "needs"}, []string{"banheiro", "dormir", "dor", "ajuda", "remédio", "banho", "sede", "fome"}},
		{[]string{"ações", "acoes", "actions"}, []string{"quero", "brincar", "ver", "ouvir", "ler", "desenhar", "sair", "entrar"}},
		{[]string{"animais", "animals"}, []string{"cachorro", "gato", "pássaro", "peixe", "cavalo", "vaca", "galinha"}},
		{[]string{"cores", "colors"}, []string{"vermelho", "azul", "verde", "amarelo", "preto", "branco", "rosa"}},
		{[]string{"números", "numeros", "numbers"}, []string{"um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove", "dez"}},
		{[]string{"transporte", "transport"}, []string{"carro", "ônibus", "bicicleta", "avião", "trem", "barco", "moto"}},
		{[]string{"corpo", "body"}, []string{"cabeça", "mão", "pé", "olho", "boca", "orelha", "nariz"}},
		{[]string{"tempo", "time"}, []string{"manhã", "tarde", "noite", "hoje", "amanhã", "ontem", "dia", "semana"}},
		{[]string{"objetos", "brinquedos", "objects", "toys"}, []string{"bola", "boneca", "livro", "lápis", "telefone", "relógio"}},
	}

	for _, g := range groups {
		for _, name := range g.names {
			categoryKeywords[name] = g.keywords
		}
	}
}

// KeywordsForCategory retorna as palavras-chave de uma categoria conhecida.
// Nomes desconhecidos viram a própria (e única) palavra-chave.
func KeywordsForCategory(category string) []string {
	name := strings.ToLower(strings.TrimSpace(category))
	if keywords, ok := categoryKeywords[name]; ok {
		return keywords
	}
	return []string{name}
}
