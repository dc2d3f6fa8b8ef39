package models

import "testing"

func TestProfitOrLoss(t *testing.T) {
	r := Record{
		Planting:   100,
		Weeding:    50,
		Harvesting: 30,
		Storage:    20,
		Sales:      500,
	}
	if got := r.ProfitOrLoss(); got != 300 {
		t.Errorf("Expected profit 300, got %v", got)
	}
}

func TestProfitOrLossNegative(t *testing.T) {
	r := Record{
		Planting: 400,
		Sales:    100,
	}
	if got := r.ProfitOrLoss(); got != -300 {
		t.Errorf("Expected loss -300, got %v", got)
	}
}

func TestProfitOrLossZeroRecord(t *testing.T) {
	var r Record
	if got := r.ProfitOrLoss(); got != 0 {
		t.Errorf("Expected 0 for zero record, got %v", got)
	}
}
