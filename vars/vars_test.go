package vars

import "testing"

func TestStrToBool(t *testing.T) {
	for _, s := range []string{"true", "T", "yes", "Y", "on", "1", " true "} {
		if !StrToBool(s) {
			t.Fatalf("%q", s)
		}
	}
	for _, s := range []string{"false", "f", "no", "0", "off", "", "maybe"} {
		if StrToBool(s) {
			t.Fatalf("%q", s)
		}
	}
}
