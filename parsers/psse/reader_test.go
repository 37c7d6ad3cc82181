package psse

import (
	"reflect"
	"testing"
)

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name string
		line string
		sep  byte
		want []string
	}{
		{
			name: "comma delimited",
			line: "1,'BUS1', 135.0, 3",
			sep:  ',',
			want: []string{"1", "'BUS1'", "135.0", "3"},
		},
		{
			name: "comma inside quoted name",
			line: "1,'A,B', 135.0",
			sep:  ',',
			want: []string{"1", "'A,B'", "135.0"},
		},
		{
			name: "trailing empty comma field",
			line: "1,2,",
			sep:  ',',
			want: []string{"1", "2", ""},
		},
		{
			name: "whitespace collapsed",
			line: "  1   'BUS ONE'  135.0\t3",
			sep:  ' ',
			want: []string{"1", "'BUS ONE'", "135.0", "3"},
		},
		{
			name: "whitespace with comment",
			line: "0 / END OF BUS DATA",
			sep:  ' ',
			want: []string{"0", "/", "END", "OF", "BUS", "DATA"},
		},
	}
	for _, tt := range tests {
		got := splitFields(tt.line, tt.sep)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: splitFields(%q, %q) = %#v, want %#v", tt.name, tt.line, tt.sep, got, tt.want)
		}
	}
}

func TestIsTerminator(t *testing.T) {
	tests := []struct {
		row  []string
		want bool
	}{
		{[]string{"0"}, true},
		{[]string{"0 / END OF BUS DATA"}, true},
		{[]string{"0/comment"}, true},
		{[]string{"0", "/", "END"}, true},
		{[]string{"1", "'BUS1'"}, false},
		{[]string{"10"}, false},
		{[]string{""}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := isTerminator(tt.row); got != tt.want {
			t.Errorf("isTerminator(%#v) = %v, want %v", tt.row, got, tt.want)
		}
	}
}
