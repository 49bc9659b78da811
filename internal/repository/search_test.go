package repository

import "testing"

func TestTextMatch(t *testing.T) {
	got := textMatch(2, "title", "location")
	want := "(LOWER(title) LIKE $2 OR LOWER(location) LIKE $2)"
	if got != want {
		t.Errorf("textMatch = %q, want %q", got, want)
	}

	single := textMatch(1, "name")
	if single != "(LOWER(name) LIKE $1)" {
		t.Errorf("textMatch single column = %q", single)
	}
}

func TestTextMatchExpression(t *testing.T) {
	got := textMatch(3, "COALESCE(tour, '')")
	want := "(LOWER(COALESCE(tour, '')) LIKE $3)"
	if got != want {
		t.Errorf("textMatch over expression = %q, want %q", got, want)
	}
}

func TestCond(t *testing.T) {
	if got := cond("status = $%d", 4); got != "status = $4" {
		t.Errorf("cond = %q", got)
	}
	if got := cond("category_id = $%d", 1); got != "category_id = $1" {
		t.Errorf("cond = %q", got)
	}
}
