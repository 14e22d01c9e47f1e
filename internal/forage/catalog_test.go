package forage

import "testing"

func TestDisplayName(t *testing.T) {
	cases := []struct {
		id   string
		want string
	}{
		{"porcini", "Porcini"},
		{"chicken_of_the_woods", "Chicken of the woods"},
		{"kzn_midlands", "Kzn midlands"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := DisplayName(tc.id); got != tc.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tc.id, got, tc.want)
		}
	}
}

func TestCatalogLookup(t *testing.T) {
	catalog := DefaultCatalog()

	if url := catalog.ImageURL("porcini"); url == "" {
		t.Error("expected a catalog image for porcini")
	}
	if url := catalog.ImageURL("death_cap"); url != "" {
		t.Errorf("expected no image for unknown species, got %q", url)
	}
}

func TestDefaultCatalogIsACopy(t *testing.T) {
	a := DefaultCatalog()
	a["porcini"] = "mutated"

	if DefaultCatalog().ImageURL("porcini") == "mutated" {
		t.Error("mutating a returned catalog must not affect the built-in mapping")
	}
}

func TestSuburbs(t *testing.T) {
	locs := Suburbs()
	if len(locs) != 14 {
		t.Fatalf("expected 14 suburbs, got %d", len(locs))
	}
	if locs[0] != "newlands" || locs[len(locs)-1] != "kzn_midlands" {
		t.Errorf("suburbs out of display order: first %q, last %q", locs[0], locs[len(locs)-1])
	}

	if !IsSupported("tokai") {
		t.Error("tokai should be a supported suburb")
	}
	if IsSupported("atlantis") {
		t.Error("atlantis should not be a supported suburb")
	}

	if got := Suburb("kzn_midlands").Label(); got != "Kzn midlands" {
		t.Errorf("Label() = %q, want %q", got, "Kzn midlands")
	}
}
