package dat_test

import (
	"bytes"

	"github.com/bsm/pack/dat"
	"github.com/bsm/pack/internal/packtest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Crypt", func() {
	key := packtest.Key()
	plain := []byte("the quick brown fox jumps over the lazy dog")

	It("should be symmetric", func() {
		enc, err := dat.Crypt(key, plain)
		Expect(err).NotTo(HaveOccurred())
		Expect(enc).To(HaveLen(len(plain)))
		Expect(enc).NotTo(Equal(plain))

		dec, err := dat.Crypt(key, enc)
		Expect(err).NotTo(HaveOccurred())
		Expect(dec).To(Equal(plain))
	})

	It("should be deterministic", func() {
		a, err := dat.Crypt(key, plain)
		Expect(err).NotTo(HaveOccurred())
		b, err := dat.Crypt(key, plain)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("should only use the key region", func() {
		long := append(append([]byte{}, key...), 0xff, 0xff)
		a, err := dat.Crypt(key, plain)
		Expect(err).NotTo(HaveOccurred())
		b, err := dat.Crypt(long, plain)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("should not modify its input", func() {
		src := bytes.Repeat([]byte{1}, 64)
		_, err := dat.Crypt(key, src)
		Expect(err).NotTo(HaveOccurred())
		Expect(src).To(Equal(bytes.Repeat([]byte{1}, 64)))
	})

	It("should reject short keys", func() {
		_, err := dat.Crypt(key[:10], plain)
		Expect(err).To(MatchError(dat.ErrInvalidKey))
	})
})
