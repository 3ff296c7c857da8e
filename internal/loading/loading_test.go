package loading_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/seisrate/internal/loading"
)

var _ = Describe("Sources", func() {
	w := loading.Window{TStart: 0, TEnd: 72000, DeltaT: 18000}

	DescribeTable("return exactly the requested number of samples",
		func(spec loading.Spec) {
			src, err := spec.Build(w)
			Expect(err).NotTo(HaveOccurred())
			for _, n := range []int{1, 5, 17} {
				cf, err := src.Values(n)
				Expect(err).NotTo(HaveOccurred())
				Expect(cf).To(HaveLen(n))
			}
		},
		Entry("background", loading.Spec{Kind: "background", Trend: 1e-8}),
		Entry("step", loading.Spec{Kind: "step", Trend: 1e-8, Step: 0.3, TStep: 36000}),
		Entry("trendchange", loading.Spec{Kind: "trendchange", Trend: 1e-8, Trend2: 2e-8, TChange: 36000}),
		Entry("cyclic", loading.Spec{Kind: "cyclic", Trend: 1e-8, Amplitude: 0.2, Period: 43200}),
		Entry("ramp", loading.Spec{Kind: "ramp", Trend: 1e-8, Step: 0.3, TStep: 18000, Duration: 36000}),
		Entry("fourpoint", loading.Spec{Kind: "fourpoint", Points: []loading.Point{
			{T: 0, S: 0}, {T: 20000, S: 0.1}, {T: 50000, S: 0.1}, {T: 72000, S: 0.4},
		}}),
	)

	It("rejects a non-positive sample count", func() {
		src := &loading.Background{Window: w, Trend: 1e-8}
		_, err := src.Values(0)
		Expect(err).To(MatchError(loading.ErrInvalidLength))
	})

	It("produces a linear background", func() {
		src := &loading.Background{Window: w, Trend: 1e-8}
		cf, _ := src.Values(5)
		for i, v := range cf {
			Expect(v).To(BeNumerically("~", float64(i)*18000*1e-8, 1e-15))
		}
		Expect(src.StressRate()).To(Equal(1e-8))
	})

	It("applies a step at the first sample at or after the step time", func() {
		src := &loading.Step{Window: w, Trend: 0, Step: 0.5, TStep: 36000}
		cf, _ := src.Values(5)
		Expect(cf).To(Equal([]float64{0, 0, 0.5, 0.5, 0.5}))
	})

	It("switches trend at the change time", func() {
		src := &loading.TrendChange{Window: w, Trend: 1, Trend2: 2, TChange: 36000}
		cf, _ := src.Values(5)
		Expect(cf).To(Equal([]float64{0, 18000, 36000, 72000, 108000}))
	})

	It("spreads a ramp over its duration", func() {
		src := &loading.Ramp{Window: w, Step: 1, TStep: 18000, Duration: 36000}
		cf, _ := src.Values(5)
		Expect(cf).To(Equal([]float64{0, 0, 0.5, 1, 1}))
	})

	It("adds a one-minus-cosine oscillation", func() {
		src := &loading.Cyclic{Window: w, Amplitude: 1, Period: 36000}
		cf, _ := src.Values(5)
		Expect(cf[0]).To(BeNumerically("~", 0, 1e-12))
		Expect(cf[1]).To(BeNumerically("~", 2, 1e-12))
		Expect(cf[2]).To(BeNumerically("~", 0, 1e-12))
	})

	It("interpolates four points", func() {
		src := &loading.FourPoint{Window: w, Points: [4]loading.Point{
			{T: 0, S: 0}, {T: 36000, S: 1}, {T: 54000, S: 1}, {T: 72000, S: 0},
		}}
		cf, _ := src.Values(5)
		Expect(cf).To(Equal([]float64{0, 0.5, 1, 1, 0}))
		Expect(src.StressRate()).To(BeNumerically("==", 0))
	})

	It("fails on an unknown kind", func() {
		_, err := loading.Spec{Kind: "earthtide"}.Build(w)
		Expect(err).To(MatchError(loading.ErrUnknownKind))
	})
})

var _ = Describe("File", func() {
	w := loading.Window{TStart: 0, TEnd: 4, DeltaT: 1}

	It("resamples a csv series onto the window", func() {
		path := filepath.Join(GinkgoT().TempDir(), "stress.csv")
		data := "# injection test\ntime,stress\n0,0\n2,1\n4,3\n"
		Expect(os.WriteFile(path, []byte(data), 0644)).To(Succeed())

		src, err := loading.Spec{Kind: "file", Path: path}.Build(w)
		Expect(err).NotTo(HaveOccurred())

		cf, err := src.Values(5)
		Expect(err).NotTo(HaveOccurred())
		Expect(cf).To(Equal([]float64{0, 0.5, 1, 2, 3}))
		Expect(src.StressRate()).To(BeNumerically("~", 0.75, 1e-12))
	})

	It("reports a missing file", func() {
		src := &loading.File{Window: w, Path: filepath.Join(GinkgoT().TempDir(), "missing.csv")}
		_, err := src.Values(3)
		Expect(err).To(MatchError(loading.ErrBadFile))
	})

	It("rejects non-numeric rows after the header", func() {
		_, _, err := loading.ReadSeries(strings.NewReader("0,0\n1,abc\n"))
		Expect(err).To(HaveOccurred())
	})

	DescribeTable("accepts comma and whitespace separators",
		func(data string) {
			ts, ss, err := loading.ReadSeries(strings.NewReader(data))
			Expect(err).NotTo(HaveOccurred())
			Expect(ts).To(Equal([]float64{0, 100}))
			Expect(ss).To(Equal([]float64{0, 1}))
		},
		Entry("comma", "0,0.0\n100,1.0\n"),
		Entry("space", "0 0.0\n100 1.0\n"),
		Entry("tab", "0\t0.0\n100\t1.0\n"),
		Entry("padded with header", "# comment\ntime  stress\n  0   0.0\n\n100 , 1.0\n"),
	)

	It("reports the line of a single-column row", func() {
		_, _, err := loading.ReadSeries(strings.NewReader("# header\n0 0\n5\n"))
		Expect(err).To(MatchError(ContainSubstring("line 3")))
	})

	It("sorts rows by time", func() {
		ts, ss, err := loading.ReadSeries(strings.NewReader("2,20\n0,0\n1,10\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(ts).To(Equal([]float64{0, 1, 2}))
		Expect(ss).To(Equal([]float64{0, 10, 20}))
		Expect(math.IsNaN(ss[0])).To(BeFalse())
	})
})
