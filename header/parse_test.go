package header_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chframe/extman/header"
)

func paramsOf(pairs ...any) *header.Params {
	p := header.NewParams()
	for i := 0; i+1 < len(pairs); i += 2 {
		p.Set(pairs[i].(string), pairs[i+1].(header.Value))
	}
	return p
}

var _ = Describe("Parse", Label("header", "parse"), func() {
	DescribeTable("valid headers",
		func(s string, wantName string, wantParams *header.Params) {
			got, err := header.Parse(&s)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Len()).To(Equal(1))
			entry := got.Entries()[0]
			Expect(entry.Name).To(Equal(wantName))
			Expect(entry.Params.Equal(wantParams)).To(BeTrue())
		},
		Entry("bare name", "deflate", "deflate", header.NewParams()),
		Entry("single flag", "deflate; flag", "deflate", paramsOf("flag", header.Flag())),
		Entry("int value", "deflate; level=9", "deflate", paramsOf("level", header.Int(9))),
		Entry("unquoted text", "deflate; mode=compress", "deflate", paramsOf("mode", header.Text("compress"))),
		Entry("quoted text with escapes and embedded comma",
			`a; b="hi, \"there"`, "a", paramsOf("b", header.Text(`hi, "there`))),
		Entry("duplicate key collapses to multi",
			`a; b; c=1; b="hi"`, "a", paramsOf("b", header.Multi(header.Flag(), header.Text("hi")), "c", header.Int(1))),
	)

	It("treats nil as empty", func() {
		got, err := header.Parse(nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Len()).To(Equal(0))
	})

	It("treats empty string as empty", func() {
		s := ""
		got, err := header.Parse(&s)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Len()).To(Equal(0))
	})

	It("treats whitespace-only string as empty", func() {
		s := "   "
		got, err := header.Parse(&s)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Len()).To(Equal(0))
	})

	It("preserves duplicate offer names as separate entries", func() {
		s := "deflate; a, deflate; b"
		got, err := header.Parse(&s)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Len()).To(Equal(2))
		Expect(got.ByName("deflate")).To(HaveLen(2))
	})

	It("rejects a trailing comma", func() {
		s := "a,"
		_, err := header.Parse(&s)
		Expect(err).To(MatchError(header.ErrTrailingComma))
	})

	It("rejects an empty offer", func() {
		s := "a,,b"
		_, err := header.Parse(&s)
		Expect(err).To(MatchError(header.ErrEmptyOffer))
	})

	It("rejects an unterminated quoted string", func() {
		s := `foo; bar="...`
		_, err := header.Parse(&s)
		Expect(err).To(MatchError(header.ErrUnterminatedQuot))
	})
})
