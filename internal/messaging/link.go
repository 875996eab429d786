package messaging

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidPhone = errors.New("phone number must contain at least 10 digits")
	ErrEmptyMessage = errors.New("message is required")
)

const minPhoneDigits = 10

// Link is a deep link to be opened on the client. Delay is how long to wait
// after the previous link before opening this one.
type Link struct {
	URL   string
	Delay time.Duration
}

// Linker builds WhatsApp deep links.
type Linker struct {
	orderBase string
	shareBase string
}

// NewLinker takes the base of per-recipient links (https://wa.me) and the
// base of the recipient-less send endpoint (https://api.whatsapp.com).
func NewLinker(orderBase, shareBase string) Linker {
	return Linker{
		orderBase: strings.TrimRight(orderBase, "/"),
		shareBase: strings.TrimRight(shareBase, "/"),
	}
}

// Send returns <share base>/send?text=<text>.
func (l Linker) Send(text string) string {
	return l.shareBase + "/send?text=" + EncodeURIComponent(text)
}

// To returns <order base>/<number>?text=<text>. An empty number falls back
// to Send.
func (l Linker) To(number, text string) string {
	if number == "" {
		return l.Send(text)
	}
	return l.orderBase + "/" + number + "?text=" + EncodeURIComponent(text)
}

// Direct builds the admin's ad-hoc message link. Non-digits are stripped from
// phone before the length check.
func (l Linker) Direct(phone, text string) (Link, error) {
	if strings.TrimSpace(phone) == "" || text == "" {
		return Link{}, ErrEmptyMessage
	}

	digits := Digits(phone)
	if len(digits) < minPhoneDigits {
		return Link{}, ErrInvalidPhone
	}

	return Link{URL: l.To(digits, text)}, nil
}

// Digits drops every byte of s that is not an ASCII digit.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// EncodeURIComponent escapes s the way JavaScript's encodeURIComponent does:
// everything but A-Z a-z 0-9 - _ . ! ~ * ' ( ) becomes %XX over its UTF-8
// bytes. url.QueryEscape differs on space and on ! ' ( ) *.
func EncodeURIComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, '%', upperhex[c>>4], upperhex[c&15])
	}
	return string(buf)
}
