package testutil

import "testing"

func TestMaxAbsDiff(t *testing.T) {
	tests := []struct {
		name    string
		a, b    []float64
		want    float64
		wantErr bool
	}{
		{"identical", []float64{1, 2}, []float64{1, 2}, 0, false},
		{"largest wins", []float64{1, 2, 3}, []float64{1.5, 2, 1}, 2, false},
		{"empty", nil, nil, 0, false},
		{"length mismatch", []float64{1}, []float64{1, 2}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MaxAbsDiff(tt.a, tt.b)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}

			if got != tt.want {
				t.Fatalf("MaxAbsDiff() = %v, want %v", got, tt.want)
			}
		})
	}
}
