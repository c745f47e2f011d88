package problem

import (
	"reflect"
	"testing"
)

func TestFirstUint(t *testing.T) {
	cases := []struct {
		input  string
		want   int64
		wantOK bool
	}{
		{"", 0, false},
		{"1", 1, true},
		{"123", 123, true},
		{"k", 0, false},
		{"k123k", 123, true},
		{"123 456", 123, true},
		{"99999999999999999999", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := FirstUint(tc.input)
			if got != tc.want || ok != tc.wantOK {
				t.Fatalf("FirstUint(%q) = (%d, %v), want (%d, %v)", tc.input, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestUints(t *testing.T) {
	cases := []struct {
		input string
		want  []int64
	}{
		{"", nil},
		{"1", []int64{1}},
		{"1 2 3", []int64{1, 2, 3}},
		{"1.2.3", []int64{1, 2, 3}},
		{"1k2l3", []int64{1, 2, 3}},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got := Uints(tc.input)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Uints(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestLines_SkipsBlankAndKeepsNumbers(t *testing.T) {
	got := Lines("a\r\n\nb\n  \nc\n")
	want := []Line{{1, "a"}, {3, "b"}, {5, "c"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines() = %v, want %v", got, want)
	}
}
