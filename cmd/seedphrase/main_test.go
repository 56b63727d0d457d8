package main

import (
	"strings"
	"testing"
)

func TestReadText(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"args joined", []string{"abandon", "ability"}, "ignored", "abandon ability"},
		{"single quoted arg", []string{"abandon ability"}, "", "abandon ability"},
		{"dash reads stdin", []string{"-"}, "  zoo zoo\n", "zoo zoo"},
		{"no args reads stdin", nil, "best\n", "best"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readText(tt.args, strings.NewReader(tt.stdin))
			if err != nil {
				t.Fatalf("readText() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("readText() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := readText(nil, strings.NewReader(" \n")); err == nil {
		t.Error("readText(empty stdin) should fail")
	}
}

func TestParseInt(t *testing.T) {
	i, err := parseInt(" 12345678901234567890123 ")
	if err != nil {
		t.Fatalf("parseInt() error: %v", err)
	}
	if i.String() != "12345678901234567890123" {
		t.Errorf("parseInt() = %s", i)
	}
	for _, s := range []string{"", "0x10", "1.5", "ten"} {
		if _, err := parseInt(s); err == nil {
			t.Errorf("parseInt(%q) should fail", s)
		}
	}
}
