package theme

import "testing"

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("tokyo-night"); got.Name != "tokyo-night" {
		t.Fatalf("ByName(tokyo-night) = %s", got.Name)
	}
	if got := ByName("nope"); got.Name != FlexokiDark.Name {
		t.Fatalf("unknown theme should fall back to %s, got %s", FlexokiDark.Name, got.Name)
	}
}

func TestCategoryColorsDistinct(t *testing.T) {
	for _, th := range All {
		seen := map[string]string{}
		for _, c := range []string{"Food", "Transport", "Entertainment", "Utilities", "Others"} {
			col := string(th.CategoryColor(c))
			if prev, dup := seen[col]; dup && th.Name != Terminal.Name {
				t.Errorf("%s: %s and %s share color %s", th.Name, prev, c, col)
			}
			seen[col] = c
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(All) || names[0] != "flexoki-dark" {
		t.Fatalf("Names() = %v", names)
	}
}
