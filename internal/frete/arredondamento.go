package frete

import (
	"math"
	"strconv"
)

// arredondar reproduz Math.round: o empate vai sempre para +Inf.
func arredondar(v float64) float64 {
	r := math.Floor(v)
	if v-r >= 0.5 {
		r++
	}
	return r
}

// arredondar2 equivale a Math.round(v * 100) / 100.
func arredondar2(v float64) float64 {
	return arredondar(v*100) / 100
}

// arredondar1 equivale a Math.round(v * 10) / 10.
func arredondar1(v float64) float64 {
	return arredondar(v*10) / 10
}

// fixar2 equivale a Number(v.toFixed(2)). FormatFloat arredonda o valor
// binário exato, como toFixed, mas desempata para o par; toFixed escolhe o
// maior módulo. Empates exatos só ocorrem quando v*8 é inteiro ímpar.
func fixar2(v float64) float64 {
	if oitavos := math.Abs(v) * 8; oitavos == math.Trunc(oitavos) && math.Mod(oitavos, 2) == 1 {
		return math.Copysign(math.Ceil(math.Abs(v)*100)/100, v)
	}
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return f
}

func limitar(v, minimo, maximo float64) float64 {
	return math.Max(minimo, math.Min(v, maximo))
}
