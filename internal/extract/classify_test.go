package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"invoicer/pkg/models"
)

func TestClassifyInvoice(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		vendor        string
		invoiceNumber string
		amount        float64
		wantType      string
		wantStatus    string
	}{
		{
			name:          "all signals",
			text:          "Invoice from ABC",
			vendor:        "ABC Traders",
			invoiceNumber: "INV-001",
			amount:        5000,
			wantType:      models.TypeInvoice,
			wantStatus:    models.StatusComplete,
		},
		{
			name:          "number and keyword only",
			text:          "invoice attached",
			vendor:        models.NotAvailable,
			invoiceNumber: "INV-002",
			amount:        0,
			wantType:      models.TypeInvoice,
			wantStatus:    models.StatusPartial,
		},
		{
			name:          "amount and keyword only",
			text:          "total payable",
			vendor:        models.NotAvailable,
			invoiceNumber: models.NotAvailable,
			amount:        12.5,
			wantType:      models.TypeInvoice,
			wantStatus:    models.StatusPartial,
		},
		{
			name:          "number and amount reach complete without keyword",
			text:          "nothing resembling the magic words",
			vendor:        models.NotAvailable,
			invoiceNumber: "X-9",
			amount:        3,
			wantType:      models.TypeInvoice,
			wantStatus:    models.StatusComplete,
		},
		{
			name:          "vendor alone is not enough",
			text:          "quarterly newsletter",
			vendor:        "ABC Traders",
			invoiceNumber: models.NotAvailable,
			amount:        0,
			wantType:      models.TypeNotInvoice,
			wantStatus:    models.StatusNA,
		},
		{
			name:          "vendor plus keyword is partial",
			text:          "payment reminder",
			vendor:        "ABC Traders",
			invoiceNumber: models.NotAvailable,
			amount:        0,
			wantType:      models.TypeInvoice,
			wantStatus:    models.StatusPartial,
		},
		{
			name:          "short vendor scores nothing",
			text:          "quarterly newsletter",
			vendor:        "AB",
			invoiceNumber: models.NotAvailable,
			amount:        0,
			wantType:      models.TypeNotInvoice,
			wantStatus:    models.StatusNA,
		},
		{
			name:          "no signals",
			text:          "lorem ipsum",
			vendor:        models.NotAvailable,
			invoiceNumber: models.NotAvailable,
			amount:        0,
			wantType:      models.TypeNotInvoice,
			wantStatus:    models.StatusNA,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotStatus := classifyInvoice(tt.text, tt.vendor, tt.invoiceNumber, tt.amount)
			assert.Equal(t, tt.wantType, gotType)
			assert.Equal(t, tt.wantStatus, gotStatus)
		})
	}
}
