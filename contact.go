package folio

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/sqweek/dialog"
	"golang.design/x/clipboard"

	"github.com/user-none/folio/sections"
)

// ContactActions implements the contact shortcuts: C copies the email
// address to the system clipboard, X exports a vCard through the native
// save dialog. Results surface as notices either way.
type ContactActions struct {
	name    string
	section sections.Section
	notices *Notification

	clipboardInited bool
	exporting       bool
}

// NewContactActions creates the actions for a contact section. name is
// the display name written into exported cards.
func NewContactActions(name string, section sections.Section, notices *Notification) *ContactActions {
	return &ContactActions{
		name:    name,
		section: section,
		notices: notices,
	}
}

// CopyEmail puts the address on the system clipboard.
func (c *ContactActions) CopyEmail() {
	if c.section.Email == "" {
		return
	}

	// Initialize clipboard on first use
	if !c.clipboardInited {
		if err := clipboard.Init(); err != nil {
			log.Printf("[Contact] clipboard unavailable: %v", err)
			c.notices.ShowShort("Clipboard unavailable")
			return
		}
		c.clipboardInited = true
	}

	clipboard.Write(clipboard.FmtText, []byte(c.section.Email))
	c.notices.ShowShort("Email address copied")
}

// ExportCard asks where to save a vCard and writes it there.
func (c *ContactActions) ExportCard() {
	if c.section.Email == "" || c.exporting {
		return
	}
	c.exporting = true

	// Run dialog in goroutine to avoid blocking Ebiten's main thread
	go func() {
		defer func() { c.exporting = false }()

		path, err := dialog.File().
			Filter("vCard files", "vcf").
			Title("Export Contact Card").
			SetStartFile("contact.vcf").
			Save()
		if err != nil {
			if err != dialog.ErrCancelled {
				log.Printf("[Contact] export dialog failed: %v", err)
				c.notices.ShowShort("Export failed")
			}
			return
		}

		card := BuildContactCard(c.name, c.section)
		if err := os.WriteFile(path, []byte(card), 0644); err != nil {
			log.Printf("[Contact] failed to write contact card: %v", err)
			c.notices.ShowShort("Export failed")
			return
		}
		c.notices.ShowDefault("Contact card saved")
	}()
}

// BuildContactCard renders a minimal version 3.0 vCard. The first body
// line of the contact section travels along as the NOTE.
func BuildContactCard(name string, sec sections.Section) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCARD\r\n")
	b.WriteString("VERSION:3.0\r\n")
	fmt.Fprintf(&b, "FN:%s\r\n", name)
	fmt.Fprintf(&b, "EMAIL;TYPE=INTERNET:%s\r\n", sec.Email)
	if len(sec.Body) > 0 {
		fmt.Fprintf(&b, "NOTE:%s\r\n", sec.Body[0])
	}
	b.WriteString("END:VCARD\r\n")
	return b.String()
}
