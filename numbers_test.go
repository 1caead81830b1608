package invoicify

import "testing"

func TestParseQuantity(t *testing.T) {
	testCases := []struct {
		in   string
		want Quantity
	}{
		{"10", Q(10)},
		{" 2.5 ", Q(2.5)},
		{"-3", Q(-3)},
		{"1e3", Q(1000)},
		{".5", Q(0.5)},
		{"0x1Fp0", Q(31)},
		{"0x1F", Q(0)},
		{"", Q(0)},
		{"abc", Q(0)},
		{"12abc", Q(0)},
		{"NaN", Q(0)},
		{"Inf", Q(0)},
	}
	for _, tc := range testCases {
		if got := ParseQuantity(tc.in); !got.Equal(tc.want) {
			t.Errorf("ParseQuantity(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMoneyFormat(t *testing.T) {
	testCases := []struct {
		m        Money
		currency string
		want     string
	}{
		{M(1627.5), "USD", "$1,627.50"},
		{M(127.5), "", "$127.50"},
		{M(0), "USD", "$0.00"},
		{M(0.125), "USD", "$0.13"},
		{M(-5), "USD", "-$5.00"},
		{M(1500), "usd", "$1,500.00"},
		{M(42), "not-a-currency", "$42.00"},
		{ParseMoney("1e20"), "USD", "$100,000,000,000,000,000,000.00"},
		{ParseMoney("-1e20"), "USD", "-$100,000,000,000,000,000,000.00"},
		{ParseMoney("92233720368547758.075"), "USD", "$92,233,720,368,547,758.08"},
	}
	for _, tc := range testCases {
		if got := tc.m.Format(tc.currency); got != tc.want {
			t.Errorf("M(%v).Format(%q) = %q, want %q", tc.m, tc.currency, got, tc.want)
		}
	}
}

func TestMoneyPercentage(t *testing.T) {
	if got := M(1500).Percentage(P(8.5)); !got.Equal(M(127.5)) {
		t.Errorf("8.5%% of 1500 = %v, want 127.5", got)
	}
	if got := M(0.1).Percentage(P(10)); !got.Equal(M(0.01)) {
		t.Errorf("10%% of 0.1 = %v, want 0.01", got)
	}
}

func TestNumbersJSON(t *testing.T) {
	it := LineItem{ID: "a", Description: "x", Quantity: Q(2.5), Price: M(150)}
	data, err := it.Quantity.MarshalJSON()
	if err != nil || string(data) != "2.5" {
		t.Errorf("Quantity.MarshalJSON() = %s, %v", data, err)
	}
	var q Quantity
	if err := q.UnmarshalJSON([]byte(`"7"`)); err != nil || !q.Equal(Q(7)) {
		t.Errorf("Quantity.UnmarshalJSON(quoted) = %v, %v", q, err)
	}
}
