package checkout

import (
	"fmt"
	"net/url"
	"strings"
)

// MensagemWhatsApp monta o texto enviado ao lojista para confirmar o pedido.
func MensagemWhatsApp(r Resultado) string {
	p := r.Pedido
	var b strings.Builder

	b.WriteString("🛍️ *Novo Pedido - PODE POD*\n\n")
	fmt.Fprintf(&b, "👤 *Nome:* %s\n", p.Cliente.Nome)
	fmt.Fprintf(&b, "📱 *Telefone:* %s\n", p.Cliente.Telefone)
	fmt.Fprintf(&b, "📍 *Endereço:* %s\n", p.Cliente.Endereco)
	fmt.Fprintf(&b, "🏘️ *Bairro:* %s\n", p.Cliente.Bairro)
	fmt.Fprintf(&b, "📏 *Distância:* %.1f km\n", r.Entrega.DistanciaKm)
	fmt.Fprintf(&b, "🚚 *Prazo Entrega:* ~%d minutos\n\n", r.Entrega.DuracaoMin)

	b.WriteString("*Produtos:*\n")
	for i, it := range p.Itens {
		if i > 0 {
			b.WriteString("\n")
		}
		sabor := ""
		if it.Sabor != "" {
			sabor = fmt.Sprintf(" (%s)", it.Sabor)
		}
		fmt.Fprintf(&b, "• %dx %s%s - R$ %.2f", it.Quantidade, it.Nome, sabor, it.Subtotal())
	}

	freteTexto := fmt.Sprintf("R$ %.2f", p.Frete)
	if r.FreteGratis {
		freteTexto = "GRÁTIS (pedido acima de R$ 300)"
	}
	b.WriteString("\n\n*Resumo:*\n")
	fmt.Fprintf(&b, "💳 Subtotal: R$ %.2f\n", r.Subtotal)
	fmt.Fprintf(&b, "🚚 Frete: %s\n", freteTexto)
	fmt.Fprintf(&b, "💰 *Total:* R$ %.2f\n\n", p.Total)
	b.WriteString("✅ Pagamento via PIX confirmado!")
	return b.String()
}

// URLWhatsApp devolve o link wa.me com a mensagem já codificada.
func URLWhatsApp(numero, mensagem string) string {
	texto := strings.ReplaceAll(url.QueryEscape(mensagem), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", numero, texto)
}
