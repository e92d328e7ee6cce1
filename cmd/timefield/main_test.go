package main

import (
	"reflect"
	"testing"
)

func TestRewriteBareTimeArg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"timefield"},
			want: []string{"timefield"},
		},
		{
			name: "bare time first token",
			in:   []string{"timefield", "09:30"},
			want: []string{"timefield", "--value", "09:30"},
		},
		{
			name: "bare time with seconds",
			in:   []string{"timefield", "9:30:05"},
			want: []string{"timefield", "--value", "9:30:05"},
		},
		{
			name: "bare time after value flag",
			in:   []string{"timefield", "--locale", "de-DE", "09:30"},
			want: []string{"timefield", "--locale", "de-DE", "--value", "09:30"},
		},
		{
			name: "bare time after equals flag",
			in:   []string{"timefield", "--locale=de-DE", "09:30"},
			want: []string{"timefield", "--locale=de-DE", "--value", "09:30"},
		},
		{
			name: "bare time after bool flag",
			in:   []string{"timefield", "--required", "09:30"},
			want: []string{"timefield", "--required", "--value", "09:30"},
		},
		{
			name: "double dash left alone",
			in:   []string{"timefield", "--", "09:30"},
			want: []string{"timefield", "--", "09:30"},
		},
		{
			name: "subcommand not rewritten",
			in:   []string{"timefield", "locales"},
			want: []string{"timefield", "locales"},
		},
		{
			name: "non-time token not rewritten",
			in:   []string{"timefield", "9:3"},
			want: []string{"timefield", "9:3"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteBareTimeArg(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteBareTimeArg:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
