package commands

import (
	"errors"
	"flag"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line   string
		want   []string
		wantOK bool
	}{
		{"cmd hud -fps", []string{"hud", "-fps"}, true},
		{"cmd   save  ", []string{"save"}, true},
		{"cmd ", nil, true},
		{"hello", nil, false},
		{"CMD hud", nil, false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.line)
		if ok != tt.wantOK || !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Parse(%q) = %q, %v; want %q, %v", tt.line, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("tune", flag.ContinueOnError)
	speed := fs.Float64("speed", 1, "")
	var gotArgs []string
	r.Register("tune", "adjust movement", fs, func(args []string) error {
		gotArgs = args
		return nil
	})
	boom := errors.New("boom")
	r.Register("fail", "always fails", nil, func([]string) error { return boom })

	if err := r.Execute([]string{"tune", "-speed", "2.5", "extra"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if *speed != 2.5 || !reflect.DeepEqual(gotArgs, []string{"extra"}) {
		t.Errorf("speed = %v args = %q", *speed, gotArgs)
	}

	if err := r.Execute([]string{"fail"}); !errors.Is(err, boom) {
		t.Errorf("fail returned %v", err)
	}
	if err := r.Execute(nil); err == nil {
		t.Error("empty args accepted")
	}
	if err := r.Execute([]string{"nope"}); err == nil {
		t.Error("unknown command accepted")
	}
	if err := r.Execute([]string{"tune", "-bogus"}); err == nil {
		t.Error("bad flag accepted")
	}
}

func TestHelp(t *testing.T) {
	r := NewRegistry()
	r.Register("save", "write config", nil, func([]string) error { return nil })
	r.Register("hud", "toggle overlays", nil, func([]string) error { return nil })
	want := []string{"hud - toggle overlays", "save - write config"}
	if got := r.Help(); !reflect.DeepEqual(got, want) {
		t.Errorf("Help = %q, want %q", got, want)
	}
}
