package device

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DeviceSuite struct {
	suite.Suite
}

func TestDeviceSuite(t *testing.T) {
	suite.Run(t, new(DeviceSuite))
}

func (s *DeviceSuite) TestDisplayName() {
	s.Run("empty user agent is unknown", func() {
		s.Equal("Unknown Device", DisplayName(""))
		s.Nil(Parse("   "))
	})

	s.Run("chrome on mac", func() {
		ua := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
		name := DisplayName(ua)
		s.Contains(name, "Chrome")
		s.Contains(name, " on ")
		s.NotContains(name, "  ")
	})

	s.Run("safari on iphone is mobile", func() {
		ua := "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
		c := Parse(ua)
		s.Require().NotNil(c)
		s.True(c.Mobile)
		s.Contains(c.Display, "iPhone")
	})

	s.Run("firefox on linux", func() {
		c := Parse("Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0")
		s.Require().NotNil(c)
		s.Equal("Firefox", c.Browser)
		s.False(c.Mobile)
	})

	s.Run("crawler is a bot", func() {
		c := Parse("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")
		s.Require().NotNil(c)
		s.True(c.Bot)
	})

	s.Run("display is trimmed", func() {
		name := DisplayName("Unknown/1.0")
		s.Equal(strings.TrimSpace(name), name)
		s.NotEmpty(name)
	})
}

func (s *DeviceSuite) TestFingerprint() {
	s.Run("empty user agent has no fingerprint", func() {
		s.Empty(Fingerprint(""))
	})

	s.Run("deterministic", func() {
		ua := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
		s.Equal(Fingerprint(ua), Fingerprint(ua))
		s.Len(Fingerprint(ua), 64)
	})

	s.Run("patch releases share a fingerprint", func() {
		a := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.6099.109 Safari/537.36"
		b := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.6099.224 Safari/537.36"
		s.Equal(Fingerprint(a), Fingerprint(b))
	})

	s.Run("major releases differ", func() {
		a := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
		b := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36"
		s.NotEqual(Fingerprint(a), Fingerprint(b))
	})
}
