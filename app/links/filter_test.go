package links

import (
	"slices"
	"testing"
)

func TestMatches_NoKeywords(t *testing.T) {
	urls := []string{"http://foo.com/bar", "", "HTTPS://EXAMPLE.COM"}

	for _, url := range urls {
		if !Matches(url, nil, nil) {
			t.Errorf("Expected %q to match when no keywords are given", url)
		}
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		includes []string
		excludes []string
		expected bool
	}{
		{"include present exclude absent", "http://foo.com/bar", []string{"foo"}, []string{"baz"}, true},
		{"include absent", "http://foo.com/bar", []string{"qux"}, nil, false},
		{"all includes required", "http://foo.com/bar", []string{"foo", "qux"}, nil, false},
		{"all includes present", "http://foo.com/bar", []string{"foo", "bar"}, nil, true},
		{"exclude present", "http://foo.com/bar", nil, []string{"bar"}, false},
		{"any exclude rejects", "http://foo.com/bar", nil, []string{"baz", "foo"}, false},
		{"exclude wins over include", "http://foo.com/bar", []string{"foo"}, []string{"bar"}, false},
		{"case insensitive value", "HTTP://FOO.COM/BAR", []string{"foo"}, nil, true},
		{"case insensitive keyword", "http://foo.com/bar", []string{"FOO"}, []string{"BAZ"}, true},
		{"empty keyword always present", "http://foo.com/bar", []string{""}, nil, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := Matches(test.value, test.includes, test.excludes)
			if result != test.expected {
				t.Errorf("Matches(%q, %v, %v): expected %v, got %v", test.value, test.includes, test.excludes, test.expected, result)
			}
		})
	}
}

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"   ", nil},
		{"foo", []string{"foo"}},
		{"Foo, BAR ,baz", []string{"foo", "bar", "baz"}},
		{"foo,,bar", []string{"foo", "", "bar"}},
	}

	for _, test := range tests {
		result := ParseKeywords(test.input)
		if !slices.Equal(result, test.expected) {
			t.Errorf("ParseKeywords(%q): expected %q, got %q", test.input, test.expected, result)
		}
	}
}

func TestFilter_Matches(t *testing.T) {
	filter := NewFilter("Site, alice", "spam")

	if !filter.Matches("http://site.com/alice") {
		t.Errorf("Expected URL with all includes to match")
	}
	if filter.Matches("http://site.com/bob") {
		t.Errorf("Expected URL missing an include to be rejected")
	}
	if filter.Matches("http://site.com/alice/SPAM") {
		t.Errorf("Expected URL with an exclude to be rejected")
	}

	var empty *Filter
	if !empty.Matches("anything") {
		t.Errorf("Expected nil filter to match everything")
	}
}
