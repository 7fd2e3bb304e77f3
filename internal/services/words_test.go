package services

import "testing"

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "Zero"},
		{5, "Five"},
		{13, "Thirteen"},
		{20, "Twenty"},
		{45, "Forty Five"},
		{100, "One Hundred"},
		{119, "One Hundred and Nineteen"},
		{999, "Nine Hundred and Ninety Nine"},
		{1000, "One Thousand"},
		{1001, "One Thousand One"},
		{99999, "Ninety Nine Thousand Nine Hundred and Ninety Nine"},
		{100000, "One Lakh"},
		{236236, "Two Lakh Thirty Six Thousand Two Hundred and Thirty Six"},
		{1234567, "Twelve Lakh Thirty Four Thousand Five Hundred and Sixty Seven"},
		{10000000, "One Crore"},
		{123456789, "Twelve Crore Thirty Four Lakh Fifty Six Thousand Seven Hundred and Eighty Nine"},
		{10000000000, "One Thousand Crore"},
		{15000000000, "One Thousand Five Hundred Crore"},
		{20000000000, "Two Thousand Crore"},
		{12345678901, "One Thousand Two Hundred and Thirty Four Crore Fifty Six Lakh Seventy Eight Thousand Nine Hundred and One"},
		{-5, "Negative Five"},
		{-1234567, "Negative Twelve Lakh Thirty Four Thousand Five Hundred and Sixty Seven"},
	}

	for _, tc := range cases {
		got := AmountInWords(tc.amount)
		if got != tc.want {
			t.Errorf("AmountInWords(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestAmountInWords_Deterministic(t *testing.T) {
	first := AmountInWords(1234567)
	second := AmountInWords(1234567)
	if first != second {
		t.Fatalf("expected identical output, got %q then %q", first, second)
	}
}
