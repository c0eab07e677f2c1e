package folio

import (
	"strings"
	"testing"

	"github.com/user-none/folio/sections"
)

func TestBuildContactCard(t *testing.T) {
	sec := sections.Section{
		ID:    "contact",
		Email: "hello@nexus.dev",
		Body:  []string{"Always up for interesting problems."},
	}

	card := BuildContactCard("NEXUS", sec)

	wantLines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:NEXUS",
		"EMAIL;TYPE=INTERNET:hello@nexus.dev",
		"NOTE:Always up for interesting problems.",
		"END:VCARD",
	}
	for _, line := range wantLines {
		if !strings.Contains(card, line+"\r\n") {
			t.Errorf("card missing line %q:\n%s", line, card)
		}
	}

	if !strings.HasPrefix(card, "BEGIN:VCARD\r\n") {
		t.Error("card should open with BEGIN:VCARD")
	}
	if !strings.HasSuffix(card, "END:VCARD\r\n") {
		t.Error("card should close with END:VCARD")
	}
}

func TestBuildContactCardNoBody(t *testing.T) {
	sec := sections.Section{ID: "contact", Email: "hello@nexus.dev"}

	card := BuildContactCard("NEXUS", sec)

	if strings.Contains(card, "NOTE:") {
		t.Error("card without body lines should carry no NOTE")
	}
}
