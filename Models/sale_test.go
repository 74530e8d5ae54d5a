package Models

import (
	"errors"
	"testing"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"draft to confirmed", SaleStatusDraft, SaleStatusConfirmed, true},
		{"draft to cancelled", SaleStatusDraft, SaleStatusCancelled, true},
		{"draft to completed skips confirmation", SaleStatusDraft, SaleStatusCompleted, false},
		{"confirmed to completed", SaleStatusConfirmed, SaleStatusCompleted, true},
		{"confirmed to cancelled", SaleStatusConfirmed, SaleStatusCancelled, true},
		{"confirmed back to draft", SaleStatusConfirmed, SaleStatusDraft, false},
		{"completed is terminal", SaleStatusCompleted, SaleStatusCancelled, false},
		{"completed cannot reopen", SaleStatusCompleted, SaleStatusConfirmed, false},
		{"cancelled is terminal", SaleStatusCancelled, SaleStatusDraft, false},
		{"cancelled cannot confirm", SaleStatusCancelled, SaleStatusConfirmed, false},
		{"unknown status goes nowhere", "archived", SaleStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestTransition(t *testing.T) {
	sale := Sale{Status: SaleStatusDraft}

	if err := sale.Transition(SaleStatusConfirmed); err != nil {
		t.Fatalf("Transition(confirmed) unexpected error: %v", err)
	}
	if sale.Status != SaleStatusConfirmed {
		t.Fatalf("status = %q, want confirmed", sale.Status)
	}

	err := sale.Transition(SaleStatusDraft)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Transition(draft) error = %v, want ErrInvalidTransition", err)
	}
	if sale.Status != SaleStatusConfirmed {
		t.Fatalf("status changed on rejected transition: %q", sale.Status)
	}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name      string
		items     []SaleItemRequest
		wantCost  float64
		wantPrice float64
	}{
		{
			name:      "no items",
			items:     nil,
			wantCost:  0,
			wantPrice: 0,
		},
		{
			name: "two items sum exactly",
			items: []SaleItemRequest{
				{CostPrice: 100, SalePrice: 200},
				{CostPrice: 150, SalePrice: 250},
			},
			wantCost:  250,
			wantPrice: 450,
		},
		{
			name: "single item",
			items: []SaleItemRequest{
				{CostPrice: 50, SalePrice: 80},
			},
			wantCost:  50,
			wantPrice: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, price := ComputeTotals(tt.items)
			if cost != tt.wantCost || price != tt.wantPrice {
				t.Errorf("ComputeTotals() = (%v, %v), want (%v, %v)", cost, price, tt.wantCost, tt.wantPrice)
			}
		})
	}
}
