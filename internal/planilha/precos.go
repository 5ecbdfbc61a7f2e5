package planilha

import "github.com/shopspring/decimal"

type itemPadrao struct {
	id, nome, preco string
}

var podsPadrao = []itemPadrao{
	{"ignite-v50", "Ignite V50", "74.90"},
	{"ignite-v80", "Ignite V80", "89.90"},
	{"ignite-v120", "Ignite V120", "94.90"},
	{"ignite-v150", "Ignite V150", "99.90"},
	{"ignite-v250", "Ignite V250", "124.90"},
	{"ignite-v300", "Ignite V300", "129.90"},
	{"ignite-v400-1", "Ignite V400", "129.90"},
	{"ignite-v400-2", "Ignite V400 (Promo)", "119.90"},
	{"elfbar-bc16k", "Elfbar BC 16K", "99.90"},
	{"elfbar-bc-touch-10k", "Elfbar BC TOUCH 10K", "69.90"},
	{"elfbar-18k", "Elfbar 18K", "84.90"},
	{"elfbar-23k", "Elfbar 23K", "89.90"},
	{"elfbar-30k", "Elfbar 30K", "129.90"},
	{"elfbar-40k", "Elfbar 40K", "134.90"},
	{"lostmary-20k", "LostMary 20K", "94.90"},
	{"lostmary-30k", "LostMary 30K", "119.90"},
	{"oxbar-9.5k", "Oxbar 9.5K", "74.90"},
	{"oxbar-10k", "Oxbar 10K", "79.90"},
	{"oxbar-30k", "Oxbar 30K", "104.90"},
	{"maskking-40k", "Maskking 40K", "99.90"},
	{"waka-20k", "Waka 20k", "84.90"},
	{"cabo-tipo-c", "Cabo Tipo C", "16.90"},
}

var cansmokePadrao = []itemPadrao{
	{"seda-ocb-xpert", "Seda OCB X-Pert", "8.00"},
	{"seda-ocb-black", "Seda OCB Black 1/4", "6.00"},
	{"piteira-hiper", "Piteira Hiper Large GG", "8.00"},
	{"filtros-slim", "Filtros Slim Longos BB", "9.90"},
	{"isqueiro", "Isqueiro", "8.90"},
	{"tabaco-amsterdam", "Tabaco Amsterdam", "23.90"},
	{"tabaco-acrema", "Tabaco ACrema", "22.90"},
	{"cuia", "Cuia", "0"},
	{"tesoura", "Tesoura", "0"},
	{"bag", "BAG", "0"},
}

func itensPadrao(lista []itemPadrao) []Item {
	itens := make([]Item, len(lista))
	for i, p := range lista {
		itens[i] = Item{ID: p.id, Nome: p.nome, Preco: decimal.RequireFromString(p.preco)}
	}
	return itens
}
