package httpexec

import (
	"errors"
	"testing"
)

func TestBuildTarget_PrefixJoin(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		path   string
		want   string
	}{
		{"no prefix", "", "/hello", "/hello"},
		{"prefix and path", "/api/v1", "/hello", "/api/v1/hello"},
		{"trailing and leading slashes", "/api/", "/hello", "/api/hello"},
		{"prefix only", "/api", "", "/api"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pathname, search, err := buildTarget(tt.prefix, tt.path, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if pathname != tt.want {
				t.Errorf("expected %q, got %q", tt.want, pathname)
			}
			if search != "" {
				t.Errorf("expected empty search, got %q", search)
			}
		})
	}
}

func TestBuildTarget_EscapesDelimiters(t *testing.T) {
	pathname, search, err := buildTarget("", "/we?rd#path", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pathname != "/we%3Frd%23path" {
		t.Errorf("expected delimiters percent-encoded, got %q", pathname)
	}
	if search != "" {
		t.Errorf("expected empty search, got %q", search)
	}
}

func TestBuildTarget_RejectsEscapes(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"absolute url", "http://evil.example.com/x"},
		{"relative path", "hello"},
		{"control character", "/a\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := buildTarget("", tt.path, nil)
			var invalid *InvalidPathnameError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidPathnameError, got %v", err)
			}
			if invalid.Path != tt.path {
				t.Errorf("expected error to carry %q, got %q", tt.path, invalid.Path)
			}
		})
	}
}

func TestEncodeQuery_Order(t *testing.T) {
	_, search, err := buildTarget("", "/q", []Param{
		P("x", 1),
		P("tags", []string{"b", "a", "c"}),
		P("skip", nil),
		P("y", "2"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "?x=1&tags=b&tags=a&tags=c&y=2"
	if search != want {
		t.Errorf("expected %q, got %q", want, search)
	}
}

func TestEncodeQuery_MixedSliceAndEscaping(t *testing.T) {
	_, search, err := buildTarget("", "/q", []Param{
		P("v", []any{1, nil, "a b"}),
		P("k&", "=x"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "?v=1&v=a+b&k%26=%3Dx"
	if search != want {
		t.Errorf("expected %q, got %q", want, search)
	}
}

func TestEncodeQuery_Empty(t *testing.T) {
	_, search, err := buildTarget("", "/q", []Param{P("gone", nil)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if search != "" {
		t.Errorf("expected empty search for all-dropped query, got %q", search)
	}
}
