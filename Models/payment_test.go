package Models

import (
	"testing"
)

func TestReconcilePayments(t *testing.T) {
	tests := []struct {
		name        string
		totalSale   float64
		payments    []Payment
		wantPaid    float64
		wantBalance float64
	}{
		{
			name:        "no payments",
			totalSale:   1000,
			payments:    nil,
			wantPaid:    0,
			wantBalance: 1000,
		},
		{
			name:      "pending payments excluded",
			totalSale: 1000,
			payments: []Payment{
				{Amount: 400, Status: PaymentStatusConfirmed},
				{Amount: 300, Status: PaymentStatusPending},
			},
			wantPaid:    400,
			wantBalance: 600,
		},
		{
			name:      "fully paid",
			totalSale: 500,
			payments: []Payment{
				{Amount: 200, Status: PaymentStatusConfirmed},
				{Amount: 300, Status: PaymentStatusConfirmed},
			},
			wantPaid:    500,
			wantBalance: 0,
		},
		{
			name:      "overpaid goes negative",
			totalSale: 100,
			payments: []Payment{
				{Amount: 150, Status: PaymentStatusConfirmed},
			},
			wantPaid:    150,
			wantBalance: -50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := ReconcilePayments(tt.totalSale, tt.payments)
			if summary.TotalPaid != tt.wantPaid {
				t.Errorf("TotalPaid = %v, want %v", summary.TotalPaid, tt.wantPaid)
			}
			if summary.PendingBalance != tt.wantBalance {
				t.Errorf("PendingBalance = %v, want %v", summary.PendingBalance, tt.wantBalance)
			}
		})
	}
}
