package programs

import "testing"

func TestReverseSource(t *testing.T) {
	cases := [][2]string{
		{"", ""},
		{"*", "*"},
		{">", "<"},
		{"*>>", "<<*"},
		{"(>*<)", "(>*<)"},
		{"(>>*<<)>>(<(>*<)*<*(>>*<<)>>)<(>*<)", "(>*<)>(<<(>>*<<)*>*(>*<)>)<<(>>*<<)"},
	}
	for _, c := range cases {
		got, err := ReverseSource(c[0])
		if err != nil {
			t.Fatal(err)
		}
		if got != c[1] {
			t.Fatalf("reverse %q: got %q, want %q", c[0], got, c[1])
		}
		back, err := ReverseSource(got)
		if err != nil {
			t.Fatal(err)
		}
		if back != c[0] {
			t.Fatalf("got %q", back)
		}
	}
}

func TestReverseInvalid(t *testing.T) {
	if _, err := ReverseSource("(("); err == nil {
		t.Fatal("should error")
	}
}
