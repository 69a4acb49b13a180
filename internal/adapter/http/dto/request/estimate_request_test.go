package request

import (
	"errors"
	"testing"
)

func TestEstimateRequest_ResolvePrice(t *testing.T) {
	r := EstimateRequest{
		Services: []ServiceRequest{{Price: 10}, {Price: 5}, {Price: -1}},
		PartsSupplies: []PartsSupplyRequest{
			{Price: 3, Quantity: 2},
			{Price: 4, Quantity: 0},
			{Price: -2, Quantity: 10},
		},
	}
	price, err := r.ResolvePrice()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 21 {
		t.Fatalf("expected 21, got %v", price)
	}

	r2 := EstimateRequest{}
	_, err = r2.ResolvePrice()
	if !errors.Is(err, ErrInvalidEstimateValue) {
		t.Fatalf("expected ErrInvalidEstimateValue, got %v", err)
	}
}

func TestEstimateRequest_ResolvePrice_Explicit(t *testing.T) {
	explicit := 4500.0
	r := EstimateRequest{Price: &explicit, Services: []ServiceRequest{{Price: 10}}}
	price, err := r.ResolvePrice()
	if err != nil || price != 4500 {
		t.Fatalf("expected 4500, got %v %v", price, err)
	}

	zero := 0.0
	_, err = EstimateRequest{Price: &zero, Services: []ServiceRequest{{Price: 10}}}.ResolvePrice()
	if !errors.Is(err, ErrInvalidEstimateValue) {
		t.Fatalf("expected ErrInvalidEstimateValue, got %v", err)
	}
}
