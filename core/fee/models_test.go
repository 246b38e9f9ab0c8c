package fee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Derive(t *testing.T) {
	tests := []struct {
		name        string
		total       float64
		paid        float64
		wantPending float64
		wantStatus  string
	}{
		{"nothing paid", 5000, 0, 5000, StatusPending},
		{"partially paid", 5000, 2500, 2500, StatusPartial},
		{"tiny payment still partial", 5000, 0.01, 4999.99, StatusPartial},
		{"fully paid", 5000, 5000, 0, StatusPaid},
		{"overpaid still paid", 5000, 6000, -1000, StatusPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{TotalAmount: tt.total, PaidAmount: tt.paid}
			r.Derive()
			assert.Equal(t, tt.wantPending, r.PendingAmount)
			assert.Equal(t, tt.wantStatus, r.Status)
		})
	}
}

func TestNewRecord_Validate(t *testing.T) {
	nr := NewRecord{StudentID: "S001", TotalAmount: 5000, PaidAmount: 2500}
	assert.NoError(t, nr.Validate())

	nr = NewRecord{StudentID: "S001", TotalAmount: 5000, PaidAmount: 5001}
	assert.Error(t, nr.Validate(), "paid must not exceed total")

	nr = NewRecord{StudentID: "S001"}
	assert.Error(t, nr.Validate(), "totalAmount is required")
}

func TestPayment_Validate(t *testing.T) {
	p := Payment{Amount: 100}
	assert.NoError(t, p.Validate())

	p = Payment{}
	assert.Error(t, p.Validate())

	p = Payment{Amount: -5}
	assert.Error(t, p.Validate())
}
