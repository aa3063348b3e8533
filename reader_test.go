package pack_test

import (
	"github.com/bsm/pack"
	"github.com/bsm/pack/internal/packtest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reader", func() {
	var subject *pack.Reader

	BeforeEach(func() {
		subject = seedReader()
	})

	It("should init", func() {
		Expect(subject.NumRecords()).To(Equal(9))
		Expect(subject.Size()).To(Equal(len(seedContainer())))
	})

	It("should decode a minimal container", func() {
		buf := []byte{
			0x00, 0x00, 0x00, 0x01, // record count
			0x00, 0x00, 0x00, 0x02, 'I', // name
			0x00, 0x00, 0x00, 0x00, // type
			0x00, 0x00, 0x00, 0x01, // value count
			0x00, 0x00, 0x00, 0x2A, // value
		}
		r, err := pack.NewReader(buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Keys()).To(Equal([]pack.Key{{Name: "I", Type: pack.Int, Len: 1}}))

		v, err := r.GetFirst("I", pack.Int)
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Int()).To(Equal(uint32(42)))
	})

	It("should exclude the terminator from text values", func() {
		buf := packtest.NewBuilder().
			Header("T", uint32(pack.String), 1).
			Uint32(5).Raw([]byte("hello")...).
			Bytes()
		r, err := pack.NewReader(buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Strings("T", pack.String)).To(Equal([]string{"hell"}))
	})

	It("should decode zero-length text", func() {
		buf := packtest.NewBuilder().
			Header("T", uint32(pack.WString), 2).
			Uint32(0).
			Uint32(1).Raw(0).
			Int("after", 7).
			Bytes()
		r, err := pack.NewReader(buf)
		Expect(err).NotTo(HaveOccurred())

		rec, err := r.Seek("T")
		Expect(err).NotTo(HaveOccurred())

		values := rec.Values()
		Expect(values.Next()).To(BeTrue())
		Expect(values.Offset()).To(Equal(-1))
		Expect(values.Value().WText()).To(Equal(""))
		Expect(values.Next()).To(BeTrue())
		Expect(values.Offset()).To(Equal(rec.Offset() + 8))
		Expect(values.Value().WText()).To(Equal(""))
		Expect(values.Next()).To(BeFalse())
		Expect(values.Err()).NotTo(HaveOccurred())

		v, err := r.GetFirst("after", pack.Int)
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Int()).To(Equal(uint32(7)))
	})

	It("should iterate records", func() {
		var names []string
		var types []pack.Type
		var lens []int

		iter := subject.Records()
		for iter.Next() {
			rec := iter.Record()
			names = append(names, rec.Name())
			types = append(types, rec.Type())
			lens = append(lens, rec.Len())
		}
		Expect(iter.Err()).NotTo(HaveOccurred())
		Expect(iter.Next()).To(BeFalse())

		Expect(names).To(Equal([]string{"ID", "Name", "Owner", "Blob", "Score", "Score", "Empty", "Score", "Score"}))
		Expect(types).To(Equal([]pack.Type{pack.Int64, pack.String, pack.WString, pack.Data, pack.Int, pack.Int, pack.Int, pack.String, pack.Int}))
		Expect(lens).To(Equal([]int{3, 3, 3, 2, 1, 1, 0, 1, 1}))
	})

	It("should restart iterations", func() {
		first := subject.Records()
		Expect(first.Next()).To(BeTrue())
		Expect(first.Next()).To(BeTrue())
		Expect(first.Record().Name()).To(Equal("Name"))

		second := subject.Records()
		Expect(second.Next()).To(BeTrue())
		Expect(second.Record().Name()).To(Equal("ID"))
		Expect(second.Record().Offset()).To(Equal(18))

		Expect(first.Next()).To(BeTrue())
		Expect(first.Record().Name()).To(Equal("Owner"))
	})

	It("should iterate values", func() {
		rec, err := subject.Seek("Name")
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.NameBytes()).To(Equal([]byte("Name")))

		var texts []string
		var offsets []int
		iter := rec.Values()
		for iter.Next() {
			texts = append(texts, iter.Value().String())
			offsets = append(offsets, iter.Offset())
		}
		Expect(iter.Err()).NotTo(HaveOccurred())
		Expect(texts).To(Equal([]string{"alpha", "beta", ""}))

		start := rec.Offset()
		Expect(offsets).To(Equal([]int{start + 4, start + 14, start + 23}))
	})

	It("should seek", func() {
		rec, err := subject.Seek("Score")
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Type()).To(Equal(pack.Int))
		Expect(rec.Len()).To(Equal(1))

		_, err = subject.Seek("missing")
		Expect(err).To(MatchError(pack.ErrNotFound))

		_, err = subject.Seek("")
		Expect(err).To(MatchError(pack.ErrInvalidArgument))
	})

	It("should not decode values when seeking", func() {
		buf := packtest.NewBuilder().
			Header("broken", uint32(pack.Data), 1).
			Uint32(1000).Raw(1, 2, 3).
			Bytes()
		r, err := pack.NewReader(buf)
		Expect(err).NotTo(HaveOccurred())

		rec, err := r.Seek("broken")
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Len()).To(Equal(1))

		_, err = r.GetAll("broken", pack.Data)
		Expect(err).To(MatchError(pack.ErrOutOfBounds))
	})

	It("should accept empty containers", func() {
		r, err := pack.NewReader([]byte{0, 0, 0, 0})
		Expect(err).NotTo(HaveOccurred())
		Expect(r.NumRecords()).To(Equal(0))
		Expect(r.Keys()).To(BeEmpty())

		_, err = r.Seek("ID")
		Expect(err).To(MatchError(pack.ErrNotFound))
	})

	Describe("malformed input", func() {
		It("should reject short buffers", func() {
			for _, buf := range [][]byte{nil, {}, {0, 0, 1}} {
				_, err := pack.NewReader(buf)
				Expect(err).To(MatchError(pack.ErrMalformed))
			}
		})

		It("should reject record counts exceeding the buffer", func() {
			buf := packtest.NewBuilder().Int("I", 1).BytesWithCount(2)
			_, err := pack.NewReader(buf)
			Expect(err).To(MatchError(pack.ErrMalformed))

			buf = packtest.NewBuilder().BytesWithCount(0xFFFFFFFF)
			_, err = pack.NewReader(buf)
			Expect(err).To(MatchError(pack.ErrMalformed))
		})

		It("should reject unknown type tags", func() {
			buf := packtest.NewBuilder().
				Header("X", 5, 1).Uint32(0).
				Bytes()
			Expect(walkAll(buf)).To(MatchError(pack.ErrMalformed))
		})

		It("should reject zero name lengths", func() {
			buf := packtest.NewBuilder().
				Uint32(0).Uint32(0).Uint32(1).Uint32(7).
				BytesWithCount(1)
			Expect(walkAll(buf)).To(MatchError(pack.ErrMalformed))
		})

		It("should reject value counts exceeding the buffer", func() {
			buf := packtest.NewBuilder().
				Header("X", uint32(pack.Int), 0x40000000).Uint32(1).
				Bytes()
			Expect(walkAll(buf)).To(MatchError(pack.ErrMalformed))

			r, err := pack.NewReader(buf)
			Expect(err).NotTo(HaveOccurred())
			_, err = r.Len("X")
			Expect(err).To(MatchError(pack.ErrMalformed))
		})

		It("should reject values exceeding the buffer", func() {
			buf := packtest.NewBuilder().
				Header("X", uint32(pack.String), 1).Uint32(0xFFFFFFFF).Raw([]byte("abc")...).
				Bytes()
			err := walkAll(buf)
			Expect(err).To(MatchError(pack.ErrOutOfBounds))
			Expect(pack.IsCorrupt(err)).To(BeTrue())
		})

		It("should reject containers truncated at any point", func() {
			buf := seedContainer()
			Expect(walkAll(buf)).To(Succeed())

			for n := 0; n < len(buf); n++ {
				truncated := buf[:n:n]
				var err error
				Expect(func() { err = walkAll(truncated) }).NotTo(Panic())
				Expect(pack.IsCorrupt(err)).To(BeTrue(), "for truncation at %d: %v", n, err)
			}
		})

		It("should stop iterating after an error", func() {
			buf := seedContainer()
			r, err := pack.NewReader(buf[:len(buf)-1])
			Expect(err).NotTo(HaveOccurred())

			iter := r.Records()
			n := 0
			for iter.Next() {
				n++
			}
			Expect(n).To(Equal(8))
			Expect(iter.Err()).To(MatchError(pack.ErrMalformed))
			Expect(iter.Next()).To(BeFalse())
		})
	})
})
