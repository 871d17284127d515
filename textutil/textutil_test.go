package textutil_test

import (
	"testing"

	"github.com/mgnsk/commons/textutil"
	. "github.com/onsi/gomega"
)

func TestTruncate(t *testing.T) {
	g := NewWithT(t)

	g.Expect(textutil.Truncate("hello world", 8)).To(Equal("hello w…"))
	g.Expect(textutil.Truncate("hello", 8)).To(Equal("hello"))
	g.Expect(textutil.TruncateMiddle("hello world", 7)).To(Equal("hel…rld"))
}

func TestPlural(t *testing.T) {
	g := NewWithT(t)

	g.Expect(textutil.Plural("entry")).To(Equal("entries"))
	g.Expect(textutil.Plural("bus")).To(Equal("buses"))
	g.Expect(textutil.Singular("entries")).To(Equal("entry"))
	g.Expect(textutil.Singular("children")).To(Equal("child"))
}

func TestPluralize(t *testing.T) {
	g := NewWithT(t)

	g.Expect(textutil.Pluralize(1, "entry")).To(Equal("1 entry"))
	g.Expect(textutil.Pluralize(3, "entry")).To(Equal("3 entries"))
	g.Expect(textutil.Pluralize(0, "file")).To(Equal("0 files"))
}

func TestTitle(t *testing.T) {
	g := NewWithT(t)

	g.Expect(textutil.Title("hello world")).To(Equal("Hello World"))
	g.Expect(textutil.Title("SHOUTED TEXT")).To(Equal("Shouted Text"))
}

func TestPad(t *testing.T) {
	g := NewWithT(t)

	g.Expect(textutil.PadLeft("7", 3, '0')).To(Equal("007"))
	g.Expect(textutil.PadLeft("1234", 3, '0')).To(Equal("1234"))
	g.Expect(textutil.PadRight("ab", 4, '.')).To(Equal("ab.."))
	g.Expect(textutil.PadRight("ab", 2, '.')).To(Equal("ab"))
}

func TestCenter(t *testing.T) {
	g := NewWithT(t)

	g.Expect(textutil.Center("ab", 6)).To(Equal("  ab  "))
	g.Expect(textutil.Center("ab", 5)).To(Equal(" ab  "), "the extra space goes right")
	g.Expect(textutil.Center("abc", 3)).To(Equal("abc"))
	g.Expect(textutil.Center("abcd", 2)).To(Equal("abcd"))
}

func TestHumanBytes(t *testing.T) {
	g := NewWithT(t)

	g.Expect(textutil.HumanBytes(0)).To(Equal("0 B"))
	g.Expect(textutil.HumanBytes(1536)).To(Equal("1.5 KiB"))
	g.Expect(textutil.HumanBytes(1572864)).To(Equal("1.5 MiB"))
}

func TestComma(t *testing.T) {
	g := NewWithT(t)

	g.Expect(textutil.Comma(1234567)).To(Equal("1,234,567"))
	g.Expect(textutil.Comma(-9876)).To(Equal("-9,876"))
	g.Expect(textutil.Comma(42)).To(Equal("42"))
}
