package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bodega-api/internal/domain/document"
)

// La tabla de reglas por tipo es el único punto de dispatch; este test la fija.
func TestRules_TablaPorTipo(t *testing.T) {
	cases := []struct {
		typ  document.Type
		want document.Rules
	}{
		{document.TypeIncoming, document.Rules{NeedsReceiverZone: true, Basis: document.BasisPurchase}},
		{document.TypeOutgoing, document.Rules{StockConsuming: true, NeedsSenderZone: true, Basis: document.BasisSell}},
		{document.TypeTransfer, document.Rules{NeedsSenderZone: true, NeedsReceiverZone: true, Basis: document.BasisNone}},
		{document.TypeInventory, document.Rules{NeedsActualQuantity: true, Basis: document.BasisSell}},
		{document.TypeWriteOff, document.Rules{NeedsActualQuantity: true, StockConsuming: true, NeedsSenderZone: true, Basis: document.BasisPurchase}},
	}
	for _, c := range cases {
		t.Run(c.typ.String(), func(t *testing.T) {
			assert.True(t, c.typ.Valid())
			assert.Equal(t, c.want, c.typ.Rules())
		})
	}
}

func TestType_Desconocido(t *testing.T) {
	assert.False(t, document.Type(0).Valid())
	assert.False(t, document.Type(6).Valid())
	assert.Equal(t, "unknown", document.Type(6).String())
	assert.Equal(t, document.Rules{}, document.Type(6).Rules())
}
