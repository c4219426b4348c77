package prompt

import (
	"fmt"
	"strings"
	"time"

	"merval-chat-service/internal/model"
	"merval-chat-service/pkg/openai"
)

// basePersona is the system prompt shared by every conversation. Personalized
// sections are appended when user context is available.
const basePersona = `Eres un asistente financiero especializado en el mercado argentino (MERVAL) y criptomonedas.

Tu propósito es ayudar a inversores, tanto principiantes como experimentados, con:

ESPECIALIDADES:
- Análisis de acciones argentinas (MERVAL, Panel General)
- Interpretación de indicadores financieros y técnicos
- Tendencias del mercado local e internacional
- Análisis de ADRs argentinos
- Criptomonedas y su relación con el mercado argentino
- Bonos soberanos y provinciales
- Situación macroeconómica argentina

METODOLOGÍA:
- Siempre pregunta por el perfil de riesgo antes de dar recomendaciones
- Explica conceptos complejos de manera simple
- Incluye contexto macroeconómico relevante
- Menciona riesgos y oportunidades
- Sugiere diversificación apropiada

ESTILO DE RESPUESTA:
- Responde en español argentino
- Sé preciso, educativo y empático
- Usa ejemplos prácticos del mercado local
- Estructura las respuestas de forma organizada

LIMITACIONES:
- No brindes consejos financieros específicos de compra/venta
- Siempre sugiere consultar con un asesor financiero
- Aclara que la información es educativa
- Menciona que los mercados son volátiles`

// Compose builds the message list for a chat completion: system persona,
// recent history in chronological order, then the new user message.
func Compose(message string, history []model.ChatMessage, uc *model.UserContext, now time.Time) []openai.Message {
	msgs := make([]openai.Message, 0, len(history)+2)
	msgs = append(msgs, openai.Message{Role: "system", Content: SystemPrompt(uc, now)})

	for _, h := range history {
		role := string(h.Role)
		if role != "user" && role != "assistant" {
			continue
		}
		msgs = append(msgs, openai.Message{Role: role, Content: h.Content})
	}

	msgs = append(msgs, openai.Message{Role: "user", Content: message})
	return msgs
}

// SystemPrompt renders the persona, stamped with the current date and
// extended with the user's profile when one is available.
func SystemPrompt(uc *model.UserContext, now time.Time) string {
	var b strings.Builder
	b.WriteString(basePersona)
	fmt.Fprintf(&b, "\n\nDATOS ACTUALES:\n- Fecha actual: %s\n- Considera la situación económica argentina actual", now.Format("02/01/2006"))

	if uc.HasData() {
		b.WriteString("\n\nPERFIL DEL USUARIO:\n")

		if uc.Profile != nil && uc.Profile.Name != "" {
			fmt.Fprintf(&b, "- Nombre: %s\n", uc.Profile.Name)
		}
		if uc.Preferences != nil {
			if uc.Preferences.RiskTolerance != "" {
				fmt.Fprintf(&b, "- Perfil de riesgo: %s\n", uc.Preferences.RiskTolerance)
			}
			if uc.Preferences.InvestmentHorizon != "" {
				fmt.Fprintf(&b, "- Horizonte de inversión: %s\n", uc.Preferences.InvestmentHorizon)
			}
			if len(uc.Preferences.Interests) > 0 {
				fmt.Fprintf(&b, "- Intereses: %s\n", strings.Join(uc.Preferences.Interests, ", "))
			}
		}
		if len(uc.Favorites) > 0 {
			favs := uc.Favorites
			if len(favs) > 5 {
				favs = favs[:5]
			}
			fmt.Fprintf(&b, "- Acciones de interés: %s\n", strings.Join(favs, ", "))
		}
		if uc.Portfolio != nil && uc.Portfolio.TotalValue > 0 {
			fmt.Fprintf(&b, "- Valor aproximado del portfolio: %.2f %s\n", uc.Portfolio.TotalValue, uc.Portfolio.Currency)
		}

		b.WriteString("\nAdapta tus respuestas a este perfil específico.")
	}

	return b.String()
}
