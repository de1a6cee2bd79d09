package header_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chframe/extman/header"
)

var _ = Describe("Serialize", Label("header", "serialize"), func() {
	It("emits the bare name for empty params", func() {
		Expect(header.Serialize("deflate", header.NewParams())).To(Equal("deflate"))
	})

	It("emits a flag with no value", func() {
		p := header.NewParams()
		p.Set("flag", header.Flag())
		Expect(header.Serialize("deflate", p)).To(Equal("deflate; flag"))
	})

	It("quotes values that aren't plain tokens", func() {
		p := header.NewParams()
		p.Set("greeting", header.Text(`hi, "there`))
		Expect(header.Serialize("a", p)).To(Equal(`a; greeting="hi, \"there"`))
	})

	It("interleaves a promoted-to-list value with its other keys", func() {
		p := header.NewParams()
		p.Set("b", header.Flag())
		p.Set("b", header.Text("hi"))
		p.Set("c", header.Int(1))
		Expect(header.Serialize("a", p)).To(Equal("a; b; b=hi; c=1"))
	})

	It("round-trips through Parse", func() {
		p := header.NewParams()
		p.Set("mode", header.Text("compress"))
		p.Set("level", header.Int(9))
		p.Set("flag", header.Flag())
		s := header.Serialize("deflate", p)
		got, err := header.Parse(&s)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Len()).To(Equal(1))
		Expect(got.Entries()[0].Params.Equal(p)).To(BeTrue())
	})

	It("joins multiple offers with comma-space", func() {
		frags := []string{
			header.Serialize("deflate", header.NewParams()),
			header.Serialize("reverse", header.NewParams()),
		}
		Expect(header.JoinOffers(frags)).To(Equal("deflate, reverse"))
	})
})
