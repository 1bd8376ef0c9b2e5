// SPDX-License-Identifier: Apache-2.0

package template

import "testing"

func mustCompile(t *testing.T, text string) *Template {
	t.Helper()
	pattern, err := compilePattern(text)
	if err != nil {
		t.Fatalf("compilePattern(%q) returned error: %v", text, err)
	}
	return &Template{text: text, pattern: pattern}
}

func TestCompilePattern(t *testing.T) {
	tests := []struct {
		name     string
		template string
		window   string
		want     bool
	}{
		{
			name:     "plain literal match",
			template: "# Copyright\n",
			window:   "# Copyright\nrest of file",
			want:     true,
		},
		{
			name:     "anchored at start only",
			template: "# Copyright\n",
			window:   "\n# Copyright\n",
			want:     false,
		},
		{
			name:     "year placeholder matches four digits",
			template: "Copyright (c) {year}\n",
			window:   "Copyright (c) 2024\nx",
			want:     true,
		},
		{
			name:     "year placeholder rejects three digits",
			template: "Copyright (c) {year}\n",
			window:   "Copyright (c) 202\nx",
			want:     false,
		},
		{
			name:     "year placeholder rejects words",
			template: "Copyright (c) {year}\n",
			window:   "Copyright (c) year\nx",
			want:     false,
		},
		{
			name:     "author placeholder is a greedy wildcard",
			template: "Copyright (c) {year} {author}\n",
			window:   "Copyright (c) 2024 Some Corp, Inc. and friends\nx",
			want:     true,
		},
		{
			name:     "author placeholder matches empty",
			template: "(c) {author}\n",
			window:   "(c) \nx",
			want:     true,
		},
		{
			name:     "unescaped star is literal",
			template: "/* {year} */\n",
			window:   "/* 2024 */\nx",
			want:     true,
		},
		{
			name:     "unescaped star never acts as wildcard",
			template: "ab* header\n",
			window:   "abbbb header\n",
			want:     false,
		},
		{
			name:     "unescaped dot is literal",
			template: "v1.0\n",
			window:   "v1x0\n",
			want:     false,
		},
		{
			name:     "escaped dot matches any character",
			template: `v1\.0` + "\n",
			window:   "v1x0\n",
			want:     true,
		},
		{
			name:     "escaped char class",
			template: `id: \[0-9\]\+` + "\n",
			window:   "id: 1234\nx",
			want:     true,
		},
		{
			name:     "parens and braces stay literal",
			template: "Copyright (c) {Acme}\n",
			window:   "Copyright (c) {Acme}\nx",
			want:     true,
		},
		{
			name:     "backslash before ordinary char stays literal",
			template: `path \n here` + "\n",
			window:   `path \n here` + "\n",
			want:     true,
		},
		{
			name:     "trailing content is irrelevant",
			template: "# hdr\n",
			window:   "# hdr\ncompletely unrelated **** trailing ][ content",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := mustCompile(t, tt.template)
			if got := tmpl.Matches(tt.window); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.window, got, tt.want)
			}
		})
	}
}

func TestCompilePattern_Deterministic(t *testing.T) {
	const text = `# \.{year} * {author}` + "\n"
	a, err := compilePattern(text)
	if err != nil {
		t.Fatalf("compilePattern() returned error: %v", err)
	}
	b, err := compilePattern(text)
	if err != nil {
		t.Fatalf("compilePattern() returned error: %v", err)
	}
	if a.String() != b.String() {
		t.Errorf("compilation is not deterministic: %q vs %q", a, b)
	}
}

func TestRender(t *testing.T) {
	tmpl := mustCompile(t, "# Copyright (c) {year} {author}\n")

	got := tmpl.Render(2026, "Some Corp")
	want := "# Copyright (c) 2026 Some Corp\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderedHeaderMatchesOwnPattern(t *testing.T) {
	tmpl := mustCompile(t, "// Copyright (c) {year} {author}\n// All rights reserved.\n")

	rendered := tmpl.Render(2026, "Contributors to the Eclipse Foundation")
	if !tmpl.Matches(rendered + "trailing content") {
		t.Error("a rendered header must match the pattern it was rendered from")
	}
}
