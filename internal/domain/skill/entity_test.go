package skill

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  Python ":        "python",
		"MACHINE LEARNING": "machine learning",
		"c++":              "c++",
		"":                 "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTitle(t *testing.T) {
	cases := map[string]string{
		"python":           "Python",
		"machine learning": "Machine Learning",
		"aws":              "Aws",
		"  node.js  ":      "Node.js",
		"":                 "",
	}
	for in, want := range cases {
		if got := Title(in); got != want {
			t.Errorf("Title(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNames(t *testing.T) {
	skills := []Skill{
		{Name: "Python"},
		{Name: "Machine Learning"},
	}
	got := Names(skills)
	want := []string{"python", "machine learning"}
	if len(got) != len(want) {
		t.Fatalf("Names returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
