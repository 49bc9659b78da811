package handler

import "testing"

func TestSectionKeyPattern(t *testing.T) {
	valid := []string{"hero", "about_us", "footer-links", "contact2", "a"}
	for _, s := range valid {
		if !sectionKeyRe.MatchString(s) {
			t.Errorf("%q should be a valid section key", s)
		}
	}
	invalid := []string{"", "Hero", "2fast", "_lead", "has space", "semi;colon", "über"}
	for _, s := range invalid {
		if sectionKeyRe.MatchString(s) {
			t.Errorf("%q should be rejected", s)
		}
	}
}

func TestEnvelopeHelpers(t *testing.T) {
	if e := ok([]int{1, 2}); !e.Success || e.Data == nil || e.Message != "" {
		t.Errorf("ok() = %+v", e)
	}
	if e := okMsg("deleted"); !e.Success || e.Message != "deleted" || e.Data != nil {
		t.Errorf("okMsg() = %+v", e)
	}
	if e := fail("nope"); e.Success || e.Message != "nope" {
		t.Errorf("fail() = %+v", e)
	}
}
