package frete

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf16"
)

// Limites da distância simulada por preset, em km.
const (
	DistanciaMinima        = 0.5
	DistanciaMaximaVitrine = 50.0
	DistanciaMaximaFuncao  = 30.0
)

// somaCodigos soma as unidades UTF-16 da string, como charCodeAt.
func somaCodigos(s string) int {
	soma := 0
	for _, u := range utf16.Encode([]rune(s)) {
		soma += int(u)
	}
	return soma
}

// DistanciaVitrine é a distância simulada da API da loja: diferença das somas
// dividida por 10, limitada a [0.5, 50]. Diferencia maiúsculas.
func DistanciaVitrine(origem, destino string) float64 {
	d := math.Abs(float64(somaCodigos(origem)-somaCodigos(destino))) / 10
	return limitar(d, DistanciaMinima, DistanciaMaximaVitrine)
}

// DistanciaFuncao é a distância simulada da função de frete: diferença das
// somas (em minúsculas) módulo 50, limitada a [0.5, 30].
func DistanciaFuncao(origem, destino string) float64 {
	diff := somaCodigos(minusculas(origem)) - somaCodigos(minusculas(destino))
	if diff < 0 {
		diff = -diff
	}
	return limitar(float64(diff%50), DistanciaMinima, DistanciaMaximaFuncao)
}

// minusculas reproduz o toLowerCase do JavaScript. Além do mapeamento simples
// de cada letra, İ vira "i" + ponto combinante e Σ no fim de palavra vira ς.
func minusculas(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range rs {
		switch {
		case r == '\u0130':
			b.WriteString("i\u0307")
		case r == '\u03a3' && sigmaFinal(rs, i):
			b.WriteRune('\u03c2')
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// sigmaFinal: há uma letra com caixa antes e nenhuma depois, pulando os
// caracteres que não têm caixa (acentos combinantes, apóstrofo, ponto).
func sigmaFinal(rs []rune, i int) bool {
	antes := false
	for j := i - 1; j >= 0; j-- {
		if ignoraCaixa(rs[j]) {
			continue
		}
		antes = temCaixa(rs[j])
		break
	}
	if !antes {
		return false
	}
	for j := i + 1; j < len(rs); j++ {
		if ignoraCaixa(rs[j]) {
			continue
		}
		return !temCaixa(rs[j])
	}
	return true
}

func temCaixa(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r) ||
		unicode.In(r, unicode.Other_Lowercase, unicode.Other_Uppercase)
}

func ignoraCaixa(r rune) bool {
	switch r {
	case '\'', '.', ':', '^', '`', '\u00ad', '\u00b7', '\u2018', '\u2019', '\u2024', '\u2027':
		return true
	}
	return unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf, unicode.Lm, unicode.Sk)
}
