package responder

import (
	"strings"
	"testing"
)

func TestStaticReply(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    string
	}{
		{"Market Keyword", "¿Cómo viene el MERVAL hoy?", "BYMA"},
		{"Ticker Keyword", "contame de ypf", "YPF"},
		{"Currency Keyword", "¿a cuánto está el dólar blue?", "MEP y CCL"},
		{"Currency Without Accent", "precio del dolar", "MEP y CCL"},
		{"Help Keyword", "ayuda", "asistente financiero argentino"},
		{"Unknown Topic", "¿me recomendás una pizzería?", "mercado financiero argentino"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := StaticReply(tc.message)
			if !strings.Contains(got, tc.want) {
				t.Errorf("reply for %q should contain %q, got: %s", tc.message, tc.want, got)
			}
			if !strings.Contains(got, "solo con fines informativos") {
				t.Error("every canned reply must carry the disclaimer")
			}
		})
	}
}
