package responder

import "strings"

// Canned replies used when no AI backend can answer. Texts carry their own
// disclaimer line so they read complete on their own.
const (
	staticMarketReply = `Activos principales del MERVAL incluyen YPF (energía), Banco Macro (financiero), Pampa Energía (eléctrica) y Galicia (bancario), entre otros. Para datos actualizados de precios y volúmenes, consultá la página oficial de BYMA (Bolsas y Mercados Argentinos).

Información solo con fines informativos. No constituye recomendación de inversión.`

	staticCurrencyReply = `Tipos de cambio en Argentina: dólar oficial, blue, MEP y CCL. Cada uno tiene diferentes valores y usos. El blue es informal; MEP y CCL son vías legales para acceder a divisas. Consultá fuentes oficiales para cotizaciones actuales.

Información solo con fines informativos. No constituye recomendación de inversión.`

	staticHelpReply = `Soy un asistente financiero argentino. Puedo ayudarte con:
- Mercados y acciones: "MERVAL", "YPF", "bancos"
- Tipos de cambio: "dólar blue", "MEP", "CCL"
- Contexto del mercado local

Información solo con fines informativos. No constituye recomendación de inversión.`

	staticDefaultReply = `Soy un asistente especializado en información del mercado financiero argentino. Puedo ayudarte con datos sobre activos del MERVAL, tipos de cambio y contexto del mercado local.

Información solo con fines informativos. No constituye recomendación de inversión.`
)

var (
	marketKeywords   = []string{"ypf", "pampa", "galicia", "macro", "merval"}
	currencyKeywords = []string{"dolar", "dólar", "blue", "mep", "ccl"}
	helpKeywords     = []string{"ayuda", "help", "qué puedes hacer", "que puedes hacer"}
)

// StaticReply picks a canned reply by keyword. It always returns something,
// which is what makes the response chain total.
func StaticReply(message string) string {
	lower := strings.ToLower(message)

	if containsAny(lower, marketKeywords) {
		return staticMarketReply
	}
	if containsAny(lower, currencyKeywords) {
		return staticCurrencyReply
	}
	if containsAny(lower, helpKeywords) {
		return staticHelpReply
	}
	return staticDefaultReply
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
