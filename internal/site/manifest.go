package site

import (
	"errors"
	"fmt"
	"strings"
)

// PageKind distinguishes the banner, plain content pages and the card page.
type PageKind string

const (
	KindBanner  PageKind = "banner"
	KindContent PageKind = "content"
	KindCards   PageKind = "cards"
)

type Page struct {
	ID    string   `toml:"id" yaml:"id"`
	Kind  PageKind `toml:"kind" yaml:"kind"`
	Title string   `toml:"title" yaml:"title"`
	Body  string   `toml:"body" yaml:"body"`
}

type Card struct {
	Title string `toml:"title" yaml:"title"`
	Body  string `toml:"body" yaml:"body"`
}

// Contact is the floating popup and the modal it opens.
type Contact struct {
	Headline  string   `toml:"headline" yaml:"headline"`
	Lines     []string `toml:"lines" yaml:"lines"`
	Button    string   `toml:"button" yaml:"button"`
	ModalBody string   `toml:"modal_body" yaml:"modal_body"`
}

// Tutorial is the overlay video shown over the card section, one frame per
// entry.
type Tutorial struct {
	Frames  []string `toml:"frames" yaml:"frames"`
	FrameMS int      `toml:"frame_ms" yaml:"frame_ms"`
}

type Manifest struct {
	Title    string    `toml:"title" yaml:"title"`
	Logo     string    `toml:"logo" yaml:"logo"`
	Dots     bool      `toml:"dots" yaml:"dots"`
	Pages    []Page    `toml:"pages" yaml:"pages"`
	Cards    []Card    `toml:"cards" yaml:"cards"`
	Contact  *Contact  `toml:"contact,omitempty" yaml:"contact,omitempty"`
	Tutorial *Tutorial `toml:"tutorial,omitempty" yaml:"tutorial,omitempty"`

	// Source is the file the manifest came from, empty for the built-in site.
	Source string `toml:"-" yaml:"-"`
}

var (
	ErrNoPages       = errors.New("site has no pages")
	ErrDuplicatePage = errors.New("duplicate page id")
	ErrBannerNotHead = errors.New("banner must be the first page")
)

// Validate normalises page kinds and checks the structural rules.
func (m *Manifest) Validate() error {
	if len(m.Pages) == 0 {
		return ErrNoPages
	}
	seen := make(map[string]bool, len(m.Pages))
	for i := range m.Pages {
		p := &m.Pages[i]
		p.ID = strings.TrimSpace(p.ID)
		if p.ID == "" {
			p.ID = fmt.Sprintf("page-%d", i+1)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicatePage, p.ID)
		}
		seen[p.ID] = true

		switch PageKind(strings.ToLower(string(p.Kind))) {
		case KindBanner:
			p.Kind = KindBanner
			if i != 0 {
				return fmt.Errorf("%w: %s is page %d", ErrBannerNotHead, p.ID, i+1)
			}
		case KindCards:
			p.Kind = KindCards
		default:
			p.Kind = KindContent
		}
	}
	if m.Tutorial != nil && m.Tutorial.FrameMS <= 0 {
		m.Tutorial.FrameMS = 400
	}
	return nil
}

func (m *Manifest) HasBanner() bool {
	return len(m.Pages) > 0 && m.Pages[0].Kind == KindBanner
}

// CardsPage returns the index of the first cards page, or -1.
func (m *Manifest) CardsPage() int {
	for i, p := range m.Pages {
		if p.Kind == KindCards {
			return i
		}
	}
	return -1
}

func (m *Manifest) HasVideo() bool {
	return m.Tutorial != nil && len(m.Tutorial.Frames) > 0
}

func (m *Manifest) HasPopup() bool { return m.Contact != nil }

func (m *Manifest) HasLogo() bool { return strings.TrimSpace(m.Logo) != "" }
