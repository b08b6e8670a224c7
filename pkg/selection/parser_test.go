package selection

import (
	"reflect"
	"testing"
)

func TestParseIndices(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		max     int
		want    []int
		wantErr bool
	}{
		{
			name: "single index",
			text: "2",
			max:  5,
			want: []int{1},
		},
		{
			name: "comma separated",
			text: "1, 3",
			max:  5,
			want: []int{0, 2},
		},
		{
			name: "space separated",
			text: "1 2 3",
			max:  5,
			want: []int{0, 1, 2},
		},
		{
			name: "duplicates collapse",
			text: "2, 2, 2",
			max:  5,
			want: []int{1},
		},
		{
			name: "upper bound",
			text: "5",
			max:  5,
			want: []int{4},
		},
		{
			name:    "out of range rejects everything",
			text:    "1, 6",
			max:     5,
			wantErr: true,
		},
		{
			name:    "zero index",
			text:    "0",
			max:     5,
			wantErr: true,
		},
		{
			name:    "non numeric token rejects everything",
			text:    "1, two",
			max:     5,
			wantErr: true,
		},
		{
			name:    "empty input",
			text:    "   ",
			max:     5,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIndices(tt.text, tt.max)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseIndices(%q) error = nil, want error", tt.text)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIndices(%q) error = %v", tt.text, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseIndices(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
