package calculator

import (
	"math"
	"reflect"
	"testing"
)

func TestComputeCommission(t *testing.T) {
	tests := []struct {
		name           string
		profit         float64
		wantCommission float64
		wantDetail     []string
	}{
		{
			name:           "zero profit has no brackets",
			profit:         0,
			wantCommission: 0,
			wantDetail:     []string{},
		},
		{
			name:           "inside first bracket",
			profit:         5000,
			wantCommission: 250,
			wantDetail:     []string{"0～10000：5.0% = 250.00"},
		},
		{
			name:           "first bracket fully consumed",
			profit:         10000,
			wantCommission: 500,
			wantDetail:     []string{"0～10000：5.0% = 500.00"},
		},
		{
			name:           "just over first bracket",
			profit:         10001,
			wantCommission: 500.073,
			wantDetail: []string{
				"0～10000：5.0% = 500.00",
				"10000～25000：7.3% = 0.07",
			},
		},
		{
			name:           "second bracket fully consumed",
			profit:         25000,
			wantCommission: 1595,
			wantDetail: []string{
				"0～10000：5.0% = 500.00",
				"10000～25000：7.3% = 1095.00",
			},
		},
		{
			name:           "third bracket fully consumed",
			profit:         40000,
			wantCommission: 3665,
			wantDetail: []string{
				"0～10000：5.0% = 500.00",
				"10000～25000：7.3% = 1095.00",
				"25000～40000：13.8% = 2070.00",
			},
		},
		{
			name:           "open top bracket",
			profit:         50000,
			wantCommission: 5765,
			wantDetail: []string{
				"0～10000：5.0% = 500.00",
				"10000～25000：7.3% = 1095.00",
				"25000～40000：13.8% = 2070.00",
				"40000～∞：21.0% = 2100.00",
			},
		},
		{
			name:           "fractional profit",
			profit:         0.5,
			wantCommission: 0.025,
			wantDetail:     []string{"0～10000：5.0% = 0.03"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCommission(tt.profit)
			if math.Abs(got.Commission-tt.wantCommission) > 1e-9 {
				t.Errorf("ComputeCommission(%v).Commission = %v, want %v", tt.profit, got.Commission, tt.wantCommission)
			}
			if !reflect.DeepEqual(got.Detail, tt.wantDetail) {
				t.Errorf("ComputeCommission(%v).Detail = %q, want %q", tt.profit, got.Detail, tt.wantDetail)
			}
		})
	}
}

func TestComputeCommission_NoBracketExceeded(t *testing.T) {
	for _, profit := range []float64{-100, math.NaN(), math.Inf(-1)} {
		got := ComputeCommission(profit)
		if got.Commission != 0 {
			t.Errorf("ComputeCommission(%v).Commission = %v, want 0", profit, got.Commission)
		}
		if len(got.Detail) != 0 {
			t.Errorf("ComputeCommission(%v).Detail = %q, want empty", profit, got.Detail)
		}
	}
}

func TestComputeCommission_SumOfBrackets(t *testing.T) {
	for _, profit := range []float64{1, 9999.99, 12345.67, 30000, 39999, 40000.01, 123456.78} {
		var want float64
		left := profit
		for _, b := range Brackets() {
			if profit <= b.Lower || left <= 0 {
				break
			}
			amount := math.Min(b.Upper-b.Lower, left)
			want += amount * b.Rate
			left -= amount
		}
		got := ComputeCommission(profit).Commission
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("ComputeCommission(%v) = %v, want %v", profit, got, want)
		}
	}
}

func TestComputeCommission_Monotonic(t *testing.T) {
	prev := ComputeCommission(0).Commission
	for profit := 250.0; profit <= 60000; profit += 250 {
		got := ComputeCommission(profit).Commission
		if got < prev {
			t.Fatalf("commission decreased at profit %v: %v < %v", profit, got, prev)
		}
		prev = got
	}
}

func TestComputeAll(t *testing.T) {
	for _, profit := range []float64{0, 10000, 25000, 40000, 50000, 77777.77} {
		got := ComputeAll(profit)
		commission := ComputeCommission(profit).Commission

		if got.BaseSalary != 3500 {
			t.Errorf("profit %v: base salary = %v, want 3500", profit, got.BaseSalary)
		}
		if got.Cost != 1550 {
			t.Errorf("profit %v: cost = %v, want 1550", profit, got.Cost)
		}
		if math.Abs(got.Tax-0.3*commission) > 1e-9 {
			t.Errorf("profit %v: tax = %v, want %v", profit, got.Tax, 0.3*commission)
		}
		wantFinal := 3500 + commission - 0.3*commission - 1550
		if math.Abs(got.Final-wantFinal) > 1e-9 {
			t.Errorf("profit %v: final = %v, want %v", profit, got.Final, wantFinal)
		}
	}

	// 50000 profit: 3500 + 5765 - 1729.5 - 1550
	if got := ComputeAll(50000).Final; math.Abs(got-5985.5) > 0.01 {
		t.Errorf("ComputeAll(50000).Final = %v, want 5985.5", got)
	}
	// Zero profit still pays base salary minus cost.
	if got := ComputeAll(0).Final; got != 1950 {
		t.Errorf("ComputeAll(0).Final = %v, want 1950", got)
	}
}

func TestParseProfit(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12500", 12500},
		{" 42.5 ", 42.5},
		{"", 0},
		{"abc", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"-3", -3},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseProfit(tt.in); got != tt.want {
				t.Errorf("ParseProfit(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBracketsAreContiguous(t *testing.T) {
	bs := Brackets()
	if bs[0].Lower != 0 {
		t.Fatalf("first bracket starts at %v, want 0", bs[0].Lower)
	}
	for i := 1; i < len(bs); i++ {
		if bs[i].Lower != bs[i-1].Upper {
			t.Errorf("bracket %d lower = %v, want %v", i, bs[i].Lower, bs[i-1].Upper)
		}
	}
	if !math.IsInf(bs[len(bs)-1].Upper, 1) {
		t.Errorf("last bracket upper = %v, want +Inf", bs[len(bs)-1].Upper)
	}

	bs[0].Rate = 1
	if Brackets()[0].Rate != 0.05 {
		t.Error("Brackets returned shared backing array")
	}
}
