package controllers

import (
	"math"
	"testing"
)

func TestNormalizeInput(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Quận 1  ", "quan 1"},
		{"Gò Vấp", "go vap"},
		{"BÌNH THẠNH", "binh thanh"},
	}
	for _, tc := range cases {
		if got := normalizeInput(tc.in); got != tc.want {
			t.Errorf("normalizeInput(%q) = %q, muốn %q", tc.in, got, tc.want)
		}
	}
}

func TestCalculateSimilarity(t *testing.T) {
	if got := calculateSimilarity("may lanh", "may lanh"); got != 1.0 {
		t.Fatalf("chuỗi trùng phải ra 1.0, được %f", got)
	}
	if got := calculateSimilarity("", ""); got != 1.0 {
		t.Fatalf("hai chuỗi rỗng phải ra 1.0, được %f", got)
	}

	got := calculateSimilarity("may lanh", "may lanhh")
	want := 1.0 - 1.0/9.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("lệch một ký tự: được %f, muốn %f", got, want)
	}

	if got := calculateSimilarity("abc", "xyz"); got > 0.01 {
		t.Fatalf("chuỗi khác hẳn phải gần 0, được %f", got)
	}
}

func TestExtractPriceFromQuery(t *testing.T) {
	cases := []struct {
		query string
		want  int
	}{
		{"phong tro 2 trieu quan 1", 2000000},
		{"phong 3tr go vap", 3000000},
		{"phong tro gan truong", -1},
	}
	for _, tc := range cases {
		if got := extractPriceFromQuery(tc.query); got != tc.want {
			t.Errorf("extractPriceFromQuery(%q) = %d, muốn %d", tc.query, got, tc.want)
		}
	}
}
